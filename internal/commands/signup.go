package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/output"
	"taskboard/internal/password"
	"taskboard/internal/service"
)

func init() {
	Register(&SignupCmd{})
}

// SignupCmd implements the signup command.
type SignupCmd struct {
	username string
	email    string
	password string
}

// SetFields sets the signup fields (for testing).
func (c *SignupCmd) SetFields(username, email, pw string) {
	c.username = username
	c.email = email
	c.password = pw
}

func (c *SignupCmd) Name() string      { return "signup" }
func (c *SignupCmd) Aliases() []string { return nil }
func (c *SignupCmd) Synopsis() string  { return "Create an account" }
func (c *SignupCmd) Usage() string {
	return "taskboard signup --username <name> --email <email> [--password <password>]"
}
func (c *SignupCmd) NeedsBackend() bool { return true }

func (c *SignupCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.username, "username", "", "")
	fs.StringVar(&c.username, "u", "", "")
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.email, "e", "", "")
	fs.StringVar(&c.password, "password", "", "")
	fs.StringVar(&c.password, "p", "", "")
}

func (c *SignupCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if c.username == "" {
		fmt.Fprintln(errOut, "error: username required")
		return exitcode.UserError
	}
	if c.email == "" {
		fmt.Fprintln(errOut, "error: email required")
		return exitcode.UserError
	}
	pw := c.password
	if pw == "" {
		pw = os.Getenv("TASKBOARD_PASSWORD")
	}
	if pw == "" {
		fmt.Fprintln(errOut, "error: password required (use --password or TASKBOARD_PASSWORD)")
		return exitcode.UserError
	}

	// Weak passwords are rejected locally; the backend is never called.
	res := password.Evaluate(pw)
	if !res.Strong {
		fmt.Fprintln(errOut, "error: password does not meet all strength requirements")
		output.FormatStrength(errOut, res)
		return exitcode.UserError
	}

	user, err := svc.Signup(ctx, service.SignupRequest{
		Username: c.username,
		Email:    c.email,
		Password: pw,
	})
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "account created, logged in as %s\n", user.Username)
	}
	return exitcode.Success
}
