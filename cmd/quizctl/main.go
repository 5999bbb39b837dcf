// cmd/quizctl/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Ar-Dante/Quiz-platform/internal/app"
	"github.com/Ar-Dante/Quiz-platform/internal/config"
	"github.com/Ar-Dante/Quiz-platform/internal/service"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	verbose bool

	dryRun    bool
	batchSize int
	timeout   time.Duration

	actAs     string
	format    string
	exportDir string
	quizID    string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	sweepCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log due reminders without writing them")
	sweepCmd.Flags().IntVar(&batchSize, "batch-size", 0, "Companies read per query (defaults to REMINDER_BATCH_SIZE)")
	sweepCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Minute, "Maximum time for one sweep")

	exportCmd.Flags().StringVar(&actAs, "as", "", "User id the export is authorized as")
	exportCmd.Flags().StringVar(&format, "format", "csv", "Output format: csv or json")
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "Output directory (defaults to EXPORT_DIR)")
	exportCmd.Flags().StringVar(&quizID, "quiz", "", "Limit the export to one quiz")
	exportCmd.MarkFlagRequired("as")

	importCmd.Flags().StringVar(&actAs, "as", "", "User id the import is authorized as")
	importCmd.MarkFlagRequired("as")

	rootCmd.AddCommand(migrateCmd, sweepCmd, exportCmd, importCmd)
}

var rootCmd = &cobra.Command{
	Use:   "quizctl",
	Short: "quizctl manages the quiz platform outside the API",
	Long:  `quizctl migrates the schema, runs the reminder sweep and moves quizzes and results in and out of the platform.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
	SilenceUsage: true,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := app.OpenDatabase(config.Load())
		if err != nil {
			return err
		}
		if err := app.Migrate(db); err != nil {
			return err
		}
		slog.Info("schema is up to date")
		return nil
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run the quiz reminder sweep once",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New(config.Load(), slog.Default())
		if err != nil {
			return err
		}
		defer a.Close()

		a.Reminders.SetBatchSize(batchSize)
		a.Reminders.SetDryRun(dryRun)

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		report, err := a.Reminders.Sweep(ctx)
		if report != nil {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.Encode(report)
		}
		return err
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <company-id>",
	Short: "Write the staged results of a company to a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		a, err := app.New(cfg, slog.Default())
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		company, member, caller, err := loadScope(ctx, a, args[0])
		if err != nil {
			return err
		}

		var export *service.Export
		if quizID != "" {
			id, err := uuid.Parse(quizID)
			if err != nil {
				return fmt.Errorf("parsing quiz id: %w", err)
			}
			export, err = a.Exports.QuizResults(ctx, id, company, member, caller, format)
			if err != nil {
				return err
			}
		} else {
			export, err = a.Exports.CompanyResults(ctx, company, member, caller, format)
			if err != nil {
				return err
			}
		}

		dir := exportDir
		if dir == "" {
			dir = cfg.ExportDir
		}
		path, err := export.Save(dir)
		if err != nil {
			return err
		}
		slog.Info("results exported", "path", path, "records", export.Records)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <company-id> <file.xlsx>",
	Short: "Create a quiz from an Excel workbook",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New(config.Load(), slog.Default())
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := cmd.Context()
		company, member, caller, err := loadScope(ctx, a, args[0])
		if err != nil {
			return err
		}

		f, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("opening workbook: %w", err)
		}
		defer f.Close()

		quiz, questions, err := a.Imports.ImportQuiz(ctx, filepath.Base(args[1]), f, company, member, caller)
		if err != nil {
			return err
		}
		slog.Info("quiz imported", "quiz_id", quiz.ID, "name", quiz.Name, "questions", len(questions))
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
