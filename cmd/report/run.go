package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
	"github.com/vfg2006/ads-dashboard-api/pkg/utils"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

var (
	since  string
	until  string
	output string
)

var runCmd = &cobra.Command{
	Use:     "run",
	Short:   "Build one report for the configured ad account",
	Example: "  report run\n  report run --since 01-03-2024 --until 31-03-2024 --output yaml",
	RunE:    runReport,
}

func init() {
	runCmd.Flags().StringVar(&since, "since", "", "First day of the range (DD-MM-YYYY)")
	runCmd.Flags().StringVar(&until, "until", "", "Last day of the range (DD-MM-YYYY)")
	runCmd.Flags().StringVarP(&output, "output", "o", outputJSON, "Output format: json or yaml")
}

func runReport(cmd *cobra.Command, args []string) error {
	format := strings.ToLower(output)
	if format != outputJSON && format != outputYAML {
		return fmt.Errorf("unsupported output %q, use json or yaml", output)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	// logs vão para stderr para não misturar com o relatório
	log.Setup(cfg.App.LogLevel, os.Stderr)

	integrator := meta.New(cfg, metaclient.NewClient(cfg))
	service := reporting.NewService(cfg, integrator, integrator, integrator)

	report, err := service.GetReport(cmd.Context(), since, until)
	if err != nil {
		return err
	}

	return writeReport(cmd.OutOrStdout(), report, format)
}

func writeReport(out io.Writer, report *domain.Report, format string) error {
	var (
		rendered string
		err      error
	)

	switch format {
	case outputYAML:
		rendered, err = utils.PrettyYAML(report)
	default:
		rendered, err = utils.PrettyJSON(report)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, rendered)
	return err
}
