package cli

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"FormationImporter/internal/app"
	"FormationImporter/internal/config"
	"FormationImporter/internal/domain"
	"FormationImporter/internal/logging"
)

var (
	importProfile   string
	importFormat    string
	importDelimiter string
	importDryRun    bool
	importKeepFirst bool
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Run one import job against the training database",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importProfile, "profile", "p", "projects", "import profile: projects or evaluations")
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "input format (csv, xlsx); default derives from the file extension")
	importCmd.Flags().StringVarP(&importDelimiter, "delimiter", "d", "", "force the CSV delimiter (',', ';' or 'tab'); default auto-detects")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "run against an in-memory store, persisting nothing")
	importCmd.Flags().BoolVar(&importKeepFirst, "keep-first", false, "resolve duplicate groups by keeping the first occurrence")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx := cmd.Context()

	cfg := config.Load(cfgFile)
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)

	delimiter, err := parseDelimiterFlag(importDelimiter)
	if err != nil {
		return err
	}

	application, err := app.New(cfg, logger, app.Options{DryRun: importDryRun, Delimiter: delimiter})
	if err != nil {
		return err
	}
	defer application.Close()

	format := importFormat
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
		if format == "" {
			format = "csv"
		}
	}

	src, err := application.Sources().Resolve(format)
	if err != nil {
		return err
	}

	sheet, err := src.Load(ctx, path)
	if err != nil {
		return err
	}

	progress := func(p domain.ImportProgress) {
		logger.Debug("progress", "current", p.Current, "total", p.Total,
			"created", p.Created, "updated", p.Updated, "message", p.Message)
	}

	job, err := application.NewJob(importProfile, progress)
	if err != nil {
		return err
	}

	outcome, err := job.Start(ctx, sheet)
	if err != nil {
		return err
	}

	summary := outcome.Summary
	if summary == nil {
		selections, err := resolveDuplicates(cmd, outcome.Duplicates)
		if err != nil {
			return err
		}
		summary, err = job.Resume(ctx, selections)
		if err != nil {
			return err
		}
	}

	printSummary(cmd, summary)
	return nil
}

// resolveDuplicates asks the operator to pick one row per duplicate group,
// or keeps the first occurrence everywhere under --keep-first.
func resolveDuplicates(cmd *cobra.Command, groups []domain.DuplicateGroup) (map[string]int, error) {
	selections := make(map[string]int, len(groups))

	if importKeepFirst {
		for _, group := range groups {
			selections[group.Key] = 0
		}
		return selections, nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d duplicate group(s) need resolution\n", len(groups))
	for _, group := range groups {
		fmt.Fprintf(out, "\nDuplicate rows (key %q):\n", group.Key)
		for i, rec := range group.Rows {
			fmt.Fprintf(out, "  [%d] line %d: %s\n", i, rec.Line, strings.Join(rec.Values(), " | "))
		}
		fmt.Fprintf(out, "Keep which row [0-%d]? ", len(group.Rows)-1)

		var choice int
		if _, err := fmt.Fscanln(cmd.InOrStdin(), &choice); err != nil {
			return nil, fmt.Errorf("read selection: %w", err)
		}
		selections[group.Key] = choice
	}

	return selections, nil
}

func printSummary(cmd *cobra.Command, summary *domain.Summary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nImport finished: %d created, %d updated\n", summary.Created, summary.Updated)

	if len(summary.NewRelated) > 0 {
		fmt.Fprintln(out, "New related entities:")
		categories := make([]string, 0, len(summary.NewRelated))
		for category := range summary.NewRelated {
			categories = append(categories, category)
		}
		sort.Strings(categories)
		for _, category := range categories {
			fmt.Fprintf(out, "  %s: %s\n", category, strings.Join(summary.NewRelated[category], ", "))
		}
	}

	for _, warning := range summary.Warnings {
		fmt.Fprintf(out, "warning line %d: %s\n", warning.Line, warning.Message)
	}
	for _, rowErr := range summary.Errors {
		if rowErr.BusinessID != "" {
			fmt.Fprintf(out, "error line %d (%s): %s\n", rowErr.Line, rowErr.BusinessID, rowErr.Message)
		} else {
			fmt.Fprintf(out, "error line %d: %s\n", rowErr.Line, rowErr.Message)
		}
	}
}

func parseDelimiterFlag(value string) (rune, error) {
	switch value {
	case "":
		return 0, nil
	case ",", ";":
		return rune(value[0]), nil
	case "\t", "tab", "TAB":
		return '\t', nil
	default:
		return 0, fmt.Errorf("unsupported delimiter %q", value)
	}
}
