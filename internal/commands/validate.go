package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/andon-systems/andon/internal/config"
	"github.com/andon-systems/andon/internal/taxonomy"
)

// NewValidateCmd creates the validate command.
func NewValidateCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file and status taxonomy",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(configPath)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "andon.yaml", "path to the configuration file")
	return cmd
}

func runValidate(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Exercise the classifier over the explicit taxonomy so a bad entry
	// surfaces here instead of at serve time.
	classifier := taxonomy.New(cfg.Taxonomy, cfg.ProgrammedKeywords, cfg.RunningKeywords)
	for _, entry := range cfg.Taxonomy {
		cat := classifier.Classify(entry.Status)
		if string(cat.Class) != entry.Class {
			return fmt.Errorf("taxonomy entry %q does not resolve to its own class (%s != %s)",
				entry.Status, cat.Class, entry.Class)
		}
	}

	color.Green("%s is valid: %d shifts, %d taxonomy entries, %d sources configured",
		configPath, len(cfg.Shifts), len(cfg.Taxonomy), 4)
	fmt.Printf("Timezone %s, rate %.0f/h, refresh %s, programmed-stop cap %d min\n",
		cfg.Timezone, cfg.DefaultRate, cfg.RefreshInterval, cfg.ProgrammedStopCap)
	return nil
}
