// Package main implements the main entry point for a Game Genie code encoder
// and decoder for the NES, SNES, Genesis and Game Boy / Game Gear.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrogenie/internal/cli"
	"github.com/retroenv/retrogenie/internal/config"
	"github.com/retroenv/retrogenie/internal/converter"
	"github.com/retroenv/retrogenie/internal/fileprocessor"
	"github.com/retroenv/retrogenie/internal/options"
	"github.com/retroenv/retrogenie/internal/script"
	"github.com/retroenv/retrogenie/internal/session"
	"github.com/retroenv/retrogenie/internal/writer"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			printBanner(logger, opts)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	if !opts.Interactive {
		printBanner(logger, opts)
	}

	if err := run(ctx, logger, opts); err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled")
			return
		}
		logger.Error("Conversion failed", log.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) (err error) {
	format, err := config.CreateOutputFormat(opts.Format)
	if err != nil {
		return err
	}
	conv := converter.New(logger, opts)

	if opts.Interactive {
		return runInteractive(ctx, logger, conv, format)
	}

	output, closeOutput, err := createOutput(opts)
	if err != nil {
		return err
	}
	defer func() {
		err = closeWithError(err, closeOutput, opts.Output)
	}()
	w := writer.New(output, format)

	switch {
	case opts.Script != "":
		engine := script.New(ctx, logger, output)
		defer engine.Close()
		if err := engine.RunFile(opts.Script); err != nil {
			return err
		}

	case opts.Input != "" || opts.Batch != "":
		if err := processFiles(ctx, logger, opts, conv, w); err != nil {
			return err
		}

	default:
		if err := convertEntries(opts.Entries, conv, w); err != nil {
			return err
		}
	}

	if opts.Clipboard {
		if w.Written() == 0 {
			logger.Warn("No result to copy to clipboard")
			return nil
		}
		if err := writer.CopyToClipboard(w.Last()); err != nil {
			return fmt.Errorf("copying result: %w", err)
		}
		logger.Info("Copied result to clipboard", log.String("result", w.Last()))
	}
	return nil
}

func convertEntries(entries []string, conv *converter.Converter, w *writer.Writer) error {
	var errs []error
	for _, entry := range entries {
		result, err := conv.Convert(entry)
		if err != nil {
			errs = append(errs, fmt.Errorf("converting '%s': %w", entry, err))
			continue
		}
		if err := w.WriteResult(result); err != nil {
			return err
		}
	}
	return errors.Join(errs...)
}

func processFiles(ctx context.Context, logger *log.Logger, opts options.Program,
	conv *converter.Converter, w *writer.Writer) error {

	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files match '%s'", opts.Batch)
	}

	processor := fileprocessor.New(logger, conv, w)
	stats, err := processor.ProcessFiles(ctx, files)
	if err != nil {
		return err
	}

	logger.Info("Processing finished",
		log.Int("files", len(files)),
		log.Int("converted", stats.Converted),
		log.Int("failed", stats.Failed))
	if stats.Failed > 0 {
		return fmt.Errorf("%d of %d entries failed", stats.Failed, stats.Entries)
	}
	return nil
}

func runInteractive(ctx context.Context, logger *log.Logger, conv *converter.Converter, format writer.Format) error {
	terminal, err := session.OpenTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer func() { _ = terminal.Close() }()

	w := writer.New(terminal, format)
	if err := w.WriteLine("retrogenie %s - enter :help for a list of commands", buildinfo.Version(version, commit, date)); err != nil {
		return err
	}

	s := session.New(logger, conv, terminal, w)
	return s.Run(ctx)
}

// createOutput returns the output writer and a function that closes it.
func createOutput(opts options.Program) (io.Writer, func() error, error) {
	if opts.Output == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, file.Close, nil
}

// closeWithError closes the output and returns the close error if no
// previous error occurred.
func closeWithError(err error, closer func() error, name string) error {
	if closeErr := closer(); closeErr != nil && err == nil {
		return fmt.Errorf("closing output file %s: %w", name, closeErr)
	}
	return err
}

func printBanner(logger *log.Logger, opts options.Program) {
	if opts.Quiet {
		return
	}
	logger.Info("retrogenie", log.String("version", buildinfo.Version(version, commit, date)))
}
