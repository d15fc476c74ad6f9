package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	appacademy "github.com/campusctl/campus/internal/application/academy"
	"github.com/campusctl/campus/internal/config"
	"github.com/campusctl/campus/internal/report"
)

var catalogSave bool

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the courses of every department",
	Long: `Print the course table of every department in the configured catalog.

With --save the catalog is written into the config file, which turns the
built-in catalog into an editable one.

Examples:
  campus catalog
  campus catalog --plain > catalog.txt
  campus catalog --save`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().BoolVar(&catalogSave, "save", false, "write the catalog into the config file")
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cleanupLog, err := initLogging(false)
	if err != nil {
		return err
	}
	defer cleanupLog()

	svc, cleanupSvc, err := newService(cfg)
	if err != nil {
		return err
	}
	defer cleanupSvc()

	if err := printCatalog(cmd.Context(), cmd.OutOrStdout(), svc, cfg.UI.Plain); err != nil {
		return err
	}

	if !catalogSave {
		return nil
	}
	path := viper.ConfigFileUsed()
	if path == "" {
		path = defaultConfigPath
	}
	catalog := cfg.Catalog
	if len(catalog.Departments) == 0 {
		catalog = config.DefaultCatalogConfig()
	}
	if err := config.SaveCatalog(path, catalog); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Catalog saved to %s\n", path)
	return err
}

// printCatalog writes one course table per department.
func printCatalog(ctx context.Context, out io.Writer, svc *appacademy.Service, plain bool) error {
	printer := report.NewPrinter(out, plain)
	for _, dept := range svc.Departments(ctx) {
		rows, err := svc.ListCourses(ctx, dept.Value)
		if err != nil {
			return err
		}
		if err := printer.Table(report.Courses(dept.Label, rows)); err != nil {
			return err
		}
	}
	return nil
}
