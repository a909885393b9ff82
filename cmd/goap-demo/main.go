// Command goap-demo plans against the scenarios in internal/scenarios,
// demonstrating the goap library's four goal-selection policies.
package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lixitrixi/planning/internal/commands"
)

var CLI struct {
	Run           commands.RunCommand           `cmd:"" help:"Plan a scenario and print the selected plan(s)" default:"withargs"`
	ListScenarios commands.ListScenariosCommand `cmd:"" name:"list-scenarios" help:"List the registered scenarios"`
	Config        commands.ConfigCommand        `cmd:"" help:"Manage configuration"`
}

func main() {
	log.SetLevel(log.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("goap-demo"),
		kong.Description("goap-demo - demonstrates the goap planning library against a handful of scenarios."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: false,
			Summary: true,
		}),
	)

	if err := ctx.Run(); err != nil {
		log.Error("command failed", "error", err)
		os.Exit(1)
	}
}
