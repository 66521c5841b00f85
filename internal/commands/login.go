package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/service"
)

func init() {
	Register(&LoginCmd{})
}

// LoginCmd implements the login command.
type LoginCmd struct {
	username string
	password string
}

// SetCredentials sets the credentials (for testing).
func (c *LoginCmd) SetCredentials(username, password string) {
	c.username = username
	c.password = password
}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Authenticate and store a session" }
func (c *LoginCmd) Usage() string {
	return "taskboard login --username <name> [--password <password>]"
}
func (c *LoginCmd) NeedsBackend() bool { return true }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.username, "username", "", "")
	fs.StringVar(&c.username, "u", "", "")
	fs.StringVar(&c.password, "password", "", "")
	fs.StringVar(&c.password, "p", "", "")
}

func (c *LoginCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if c.username == "" {
		fmt.Fprintln(errOut, "error: username required")
		return exitcode.UserError
	}
	password := c.password
	if password == "" {
		password = os.Getenv("TASKBOARD_PASSWORD")
	}
	if password == "" {
		fmt.Fprintln(errOut, "error: password required (use --password or TASKBOARD_PASSWORD)")
		return exitcode.UserError
	}

	user, err := svc.Login(ctx, service.Credentials{Username: c.username, Password: password})
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "logged in as %s\n", user.Username)
	}
	return exitcode.Success
}
