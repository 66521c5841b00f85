package commands

import (
	"context"
	"flag"
	"io"

	"taskboard/internal/config"
	"taskboard/internal/exitcode"
	"taskboard/internal/output"
	"taskboard/internal/service"
)

func init() {
	Register(&DashboardCmd{})
}

// DashboardCmd implements the dashboard command.
type DashboardCmd struct{}

func (c *DashboardCmd) Name() string       { return "dashboard" }
func (c *DashboardCmd) Aliases() []string  { return []string{"stats"} }
func (c *DashboardCmd) Synopsis() string   { return "Print the task summary" }
func (c *DashboardCmd) Usage() string      { return "taskboard dashboard [common flags]" }
func (c *DashboardCmd) NeedsBackend() bool { return true }

func (c *DashboardCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DashboardCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	d, err := svc.Dashboard(ctx)
	if err != nil {
		return failure(errOut, err)
	}
	output.FormatDashboard(out, d)
	return exitcode.Success
}
