package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	uuid "github.com/satori/go.uuid"
	"github.com/spf13/cobra"

	"github.com/pivolan/loan_rates/config"
	"github.com/pivolan/loan_rates/domain/models"
	"github.com/pivolan/loan_rates/rates"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var (
		topN     int
		format   string
		debug    bool
		envFiles []string
	)

	cmd := &cobra.Command{
		Use:          "loanrates [file]",
		Short:        "Report the most common loan interest rates in a CSV file",
		Long:         "Reads a CSV (optionally .gz, .lz4, .zip) or .xlsx file of loans, normalizes the interest rate column and prints the most frequent rates.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFiles...)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("top") {
				cfg.TopN = topN
			}
			if cmd.Flags().Changed("format") {
				cfg.Format = format
			}
			if debug {
				cfg.LogLevel = "debug"
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := newLogger(errOut, cfg.LogLevel, debug).
				With(slog.String("run_id", uuid.NewV4().String()))

			var filename string
			if len(args) == 1 {
				filename = strings.TrimSpace(args[0])
			} else {
				filename = promptFilename(in, out)
			}

			err = analyze(cmd.Context(), out, logger, cfg, filename)
			if err == nil {
				return nil
			}
			var opErr *models.OpError
			if !errors.As(err, &opErr) {
				return err
			}
			logger.Warn("Analysis stopped",
				slog.String("path", filename),
				slog.String("kind", string(opErr.Kind)),
				slog.String("error", err.Error()))
			fmt.Fprintln(out, diagnostic(opErr))
			return nil
		},
	}

	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.Flags().IntVarP(&topN, "top", "n", rates.DefaultTopN, "number of most common rates to report")
	cmd.Flags().StringVarP(&format, "format", "f", string(rates.FormatText), "report format: text, table, markdown or csv")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable verbose logging to stderr")
	cmd.Flags().StringSliceVar(&envFiles, "env-file", nil, "env files to load instead of .env")
	return cmd
}

// promptFilename asks for the file to analyze and returns the trimmed answer.
// End of input counts as an empty answer.
func promptFilename(in io.Reader, out io.Writer) string {
	fmt.Fprint(out, "Enter CSV filename: ")
	line, _ := bufio.NewReader(in).ReadString('\n')
	return strings.TrimSpace(line)
}

// analyze runs load and report for one file. Pipeline failures come back as
// *models.OpError; anything else is an output failure.
func analyze(ctx context.Context, out io.Writer, logger *slog.Logger, cfg *config.Config, filename string) error {
	loaded, err := rates.NewLoader(logger, cfg.DelimiterRune()).Load(ctx, filename)
	if err != nil {
		return err
	}
	if len(loaded) == 0 {
		return &models.OpError{Op: "analyze", Kind: models.KindEmptyResult, Path: filename, Err: models.ErrEmptyResult}
	}

	_, err = rates.NewReporter(out, rates.Format(cfg.Format), logger).Report(loaded, cfg.TopN)
	return err
}

// diagnostic is the single line printed for a failed analysis.
func diagnostic(err *models.OpError) string {
	switch err.Kind {
	case models.KindNotFound:
		return fmt.Sprintf("Error: File '%s' does not exist.", err.Path)
	case models.KindColumnNotFound:
		msg := "Error: Interest rate column not found."
		var missing *rates.MissingColumnError
		if errors.As(err, &missing) && len(missing.Suggestions) > 0 {
			msg += fmt.Sprintf(" Did you mean: %s?", strings.Join(missing.Suggestions, ", "))
		}
		return msg
	case models.KindEmptyResult:
		return "No valid interest rate data found."
	default:
		return fmt.Sprintf("Error reading CSV file: %v", err.Err)
	}
}
