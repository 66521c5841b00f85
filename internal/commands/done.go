package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskboard/internal/backend/todoapi"
	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/service"
)

func init() {
	Register(&DoneCmd{})
	Register(&ReopenCmd{})
}

// DoneCmd marks a task done by exact title.
type DoneCmd struct{}

func (c *DoneCmd) Name() string       { return "done" }
func (c *DoneCmd) Aliases() []string  { return nil }
func (c *DoneCmd) Synopsis() string   { return "Mark a task done" }
func (c *DoneCmd) Usage() string      { return "taskboard done <title...>" }
func (c *DoneCmd) NeedsBackend() bool { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return setStatusByTitle(ctx, cfg, svc, args, true, out, errOut)
}

// ReopenCmd marks a task open again by exact title.
type ReopenCmd struct{}

func (c *ReopenCmd) Name() string       { return "reopen" }
func (c *ReopenCmd) Aliases() []string  { return nil }
func (c *ReopenCmd) Synopsis() string   { return "Mark a task open again" }
func (c *ReopenCmd) Usage() string      { return "taskboard reopen <title...>" }
func (c *ReopenCmd) NeedsBackend() bool { return true }

func (c *ReopenCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ReopenCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return setStatusByTitle(ctx, cfg, svc, args, false, out, errOut)
}

// setStatusByTitle is the shared implementation for done and reopen.
// Title-based update is unambiguous because the backend enforces unique
// titles per user.
func setStatusByTitle(ctx context.Context, cfg *config.Config, svc service.Service, args []string, done bool, out, errOut io.Writer) int {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	if _, err := svc.UpdateTaskByTitle(ctx, title, title, done); err != nil {
		if todoapi.IsNotFound(err) {
			fmt.Fprintf(errOut, "error: task not found: %s\n", title)
			return exitcode.UserError
		}
		return failure(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
