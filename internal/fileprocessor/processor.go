// Package fileprocessor handles reading entry list files and batch processing.
package fileprocessor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogenie/internal/converter"
	"github.com/retroenv/retrogenie/internal/options"
	"github.com/retroenv/retrogenie/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// commentMarker starts a comment that runs until the end of the line.
const commentMarker = "#"

// Stats counts the processed entries of one or more files.
type Stats struct {
	Entries   int
	Converted int
	Failed    int
}

// Add adds the counters of other to the stats.
func (s *Stats) Add(other Stats) {
	s.Entries += other.Entries
	s.Converted += other.Converted
	s.Failed += other.Failed
}

// Processor converts all entries of list files.
type Processor struct {
	logger    *log.Logger
	converter *converter.Converter
	writer    *writer.Writer
}

// New creates a new file processor.
func New(logger *log.Logger, conv *converter.Converter, w *writer.Writer) *Processor {
	return &Processor{
		logger:    logger,
		converter: conv,
		writer:    w,
	}
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

// ProcessFiles converts the entries of all given files.
func (p *Processor) ProcessFiles(ctx context.Context, files []string) (Stats, error) {
	var total Stats
	for _, file := range files {
		stats, err := p.ProcessFile(ctx, file)
		total.Add(stats)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// ProcessFile converts every entry of the file.
func (p *Processor) ProcessFile(ctx context.Context, path string) (Stats, error) {
	file, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	p.logger.Debug("Processing file", log.String("file", path))
	return p.Process(ctx, path, file)
}

// Process converts every entry read from the reader, one entry per line.
// Empty lines and comments are skipped, failing entries are logged and
// counted without stopping the processing.
func (p *Processor) Process(ctx context.Context, name string, reader io.Reader) (Stats, error) {
	var stats Stats
	scanner := bufio.NewScanner(reader)

	for line := 1; scanner.Scan(); line++ {
		if err := ctx.Err(); err != nil {
			return stats, fmt.Errorf("processing %s: %w", name, err)
		}

		entry := scanner.Text()
		if i := strings.Index(entry, commentMarker); i >= 0 {
			entry = entry[:i]
		}
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		stats.Entries++

		result, err := p.converter.Convert(entry)
		if err != nil {
			stats.Failed++
			p.logger.Warn("Conversion failed",
				log.String("file", name),
				log.Int("line", line),
				log.String("entry", entry),
				log.Err(err))
			continue
		}

		if err := p.writer.WriteResult(result); err != nil {
			return stats, err
		}
		stats.Converted++
	}

	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("reading %s: %w", name, err)
	}
	return stats, nil
}
