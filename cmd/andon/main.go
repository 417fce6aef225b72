package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andon-systems/andon/internal/commands"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "andon",
		Short: "Shop-floor KPI and status timeline service",
		Long: `Andon ingests the plant's CSV event logs (production counts, scrap,
workcenter status changes) and derives shift KPIs and a gapless machine
status timeline, served over an HTTP API for the display boards.`,
		Version: version,
	}

	root.AddCommand(
		commands.NewServeCmd(),
		commands.NewComputeCmd(),
		commands.NewValidateCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
