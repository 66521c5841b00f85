package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/service"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "taskboard help" }
func (c *HelpCmd) NeedsBackend() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskboard                                          Open the interactive board
  taskboard board [common flags]                     Open the interactive board
  taskboard list [common flags] [--filter all|open|done]
  taskboard add [common flags] <title...>
  taskboard done [common flags] <title...>
  taskboard reopen [common flags] <title...>
  taskboard rm [common flags] [--id <n>] <title...>
  taskboard find [common flags] [--id <n>] <title...>
  taskboard dashboard [common flags]
  taskboard whoami [common flags]
  taskboard login [common flags] --username <name> [--password <password>]
  taskboard signup [common flags] --username <name> --email <email> [--password <password>]
  taskboard logout [common flags]
  taskboard help
  taskboard version

Common flags:
  --config <dir>   Override config directory
  --server <url>   Override backend server URL
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

Environment:
  TASKBOARD_SERVER     Backend server URL (default http://localhost:8080)
  TASKBOARD_PASSWORD   Password for login/signup when --password is omitted
`
