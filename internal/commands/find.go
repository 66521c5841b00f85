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
	Register(&FindCmd{})
}

// FindCmd looks up one task by exact title or, with --id, by ID.
type FindCmd struct {
	id int64
}

// SetID sets the task ID (for testing).
func (c *FindCmd) SetID(id int64) {
	c.id = id
}

func (c *FindCmd) Name() string       { return "find" }
func (c *FindCmd) Aliases() []string  { return nil }
func (c *FindCmd) Synopsis() string   { return "Look up a task by exact title" }
func (c *FindCmd) Usage() string      { return "taskboard find [--id <n>] <title...>" }
func (c *FindCmd) NeedsBackend() bool { return true }

func (c *FindCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.Int64Var(&c.id, "id", 0, "")
}

func (c *FindCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	title := strings.TrimSpace(strings.Join(args, " "))
	if c.id == 0 && title == "" {
		fmt.Fprintln(errOut, "error: title or --id required")
		return exitcode.UserError
	}

	var task service.Task
	var err error
	if c.id != 0 {
		task, err = svc.TaskByID(ctx, c.id)
	} else {
		task, err = svc.TaskByTitle(ctx, title)
	}
	if err != nil {
		// A miss is an expected outcome, not an error.
		if todoapi.IsNotFound(err) {
			if !cfg.Quiet {
				fmt.Fprintln(out, "no matching task")
			}
			return exitcode.Success
		}
		return failure(errOut, err)
	}

	fmt.Fprintf(out, "Found: %s (%s)\n", task.Title, service.StatusLabel(task.Status))
	return exitcode.Success
}
