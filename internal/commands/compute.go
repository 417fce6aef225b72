package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/andon-systems/andon/internal/engine"
	"github.com/andon-systems/andon/pkg/types"
)

// NewComputeCmd creates the compute command: a one-shot load and KPI
// computation for ops checks and debugging.
func NewComputeCmd() *cobra.Command {
	var (
		configPath  string
		dateStr     string
		shiftCode   string
		workcenters []string
		rate        float64
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Load the current data and print shift KPIs once",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(configPath, dateStr, shiftCode, workcenters, rate, asJSON)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "andon.yaml", "path to the configuration file")
	cmd.Flags().StringVar(&dateStr, "date", "", "shift date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&shiftCode, "shift", "", "shift code (default: current shift)")
	cmd.Flags().StringSliceVar(&workcenters, "wc", nil, "workcenters to include (default all)")
	cmd.Flags().Float64Var(&rate, "rate", 0, "hourly rate target override")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full dashboard as JSON")
	return cmd
}

func runCompute(configPath, dateStr, shiftCode string, workcenters []string, rate float64, asJSON bool) error {
	st, err := buildStack(configPath)
	if err != nil {
		return err
	}

	now := st.engine.Now()

	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, st.loc)
	if dateStr != "" {
		date, err = time.ParseInLocation("2006-01-02", dateStr, st.loc)
		if err != nil {
			return fmt.Errorf("invalid date %q: want YYYY-MM-DD", dateStr)
		}
	}

	if shiftCode == "" {
		shiftCode = st.engine.Shifts().ShiftForTimestamp(now)
		if shiftCode == "" {
			return fmt.Errorf("no shift is scheduled right now, pass --shift")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	snap, err := st.store.Current(ctx)
	if err != nil {
		return fmt.Errorf("loading data: %w", err)
	}

	dash, err := st.engine.Compute(snap, engine.Query{
		Date:        date,
		ShiftCode:   shiftCode,
		Workcenters: workcenters,
		Rate:        rate,
	}, now)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(dash)
	}

	printDashboard(dash)
	return nil
}

func printDashboard(dash *types.Dashboard) {
	bold := color.New(color.Bold)

	_, _ = bold.Printf("Shift %s  %s → %s  [%s]\n",
		dash.Window.Code,
		dash.Window.Start.Format("2006-01-02 15:04"),
		dash.Window.End.Format("2006-01-02 15:04"),
		stateString(dash.State))
	fmt.Printf("Workcenters: %s\n", strings.Join(dash.Workcenters, ", "))
	fmt.Printf("Snapshot:    %s\n\n", dash.SnapshotID)

	k := dash.KPIs
	fmt.Printf("Output:      %.0f / %.0f (%s)\n", k.ActualOutput, k.AccumulatedTarget, performanceString(k.PerformancePct))
	fmt.Printf("Difference:  %+.0f pieces\n", k.Difference)
	fmt.Printf("Value:       $%.2f produced, $%.2f scrapped (%.2f%%)\n", k.ProductionValue, k.ScrapValue, k.ScrapPct)
	fmt.Printf("Scrap qty:   %.0f pieces\n", k.ScrapQuantity)
	fmt.Printf("Downtime:    %.0f min over %.1f elapsed hours\n", k.DowntimeMinutes, k.ElapsedHours)

	if len(dash.TopScrap) > 0 {
		fmt.Println()
		_, _ = bold.Println("Top scrap reasons:")
		for _, reason := range dash.TopScrap {
			fmt.Printf("  %-30s $%.2f\n", reason.Reason, reason.Cost)
		}
	}
}

func stateString(state types.WindowState) string {
	switch state {
	case types.WindowActive:
		return color.GreenString("LIVE")
	case types.WindowEnded:
		return color.RedString("ENDED")
	default:
		return color.YellowString("NOT STARTED")
	}
}

func performanceString(pct float64) string {
	if pct >= 100 {
		return color.GreenString("%.1f%%", pct)
	}
	return color.RedString("%.1f%%", pct)
}
