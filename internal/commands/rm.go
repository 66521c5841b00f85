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
	Register(&RmCmd{})
}

// RmCmd deletes a task by exact title or, with --id, by ID.
type RmCmd struct {
	id int64
}

// SetID sets the task ID (for testing).
func (c *RmCmd) SetID(id int64) {
	c.id = id
}

func (c *RmCmd) Name() string       { return "rm" }
func (c *RmCmd) Aliases() []string  { return []string{"delete"} }
func (c *RmCmd) Synopsis() string   { return "Delete a task" }
func (c *RmCmd) Usage() string      { return "taskboard rm [--id <n>] <title...>" }
func (c *RmCmd) NeedsBackend() bool { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.Int64Var(&c.id, "id", 0, "")
}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	title := strings.TrimSpace(strings.Join(args, " "))
	if c.id == 0 && title == "" {
		fmt.Fprintln(errOut, "error: title or --id required")
		return exitcode.UserError
	}
	if c.id != 0 && title != "" {
		fmt.Fprintln(errOut, "error: cannot use both --id and a title")
		return exitcode.UserError
	}

	var err error
	if c.id != 0 {
		err = svc.DeleteTask(ctx, c.id)
	} else {
		err = svc.DeleteTaskByTitle(ctx, title)
	}
	if err != nil {
		if todoapi.IsNotFound(err) {
			fmt.Fprintln(errOut, "error: task not found")
			return exitcode.UserError
		}
		return failure(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
