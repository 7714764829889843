// Package main provides the complymap CLI: it loads findings and a
// framework definition, flattens them into compliance rows, and writes
// the report in the requested formats.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/complymap/complymap/pkg/compliance"
	"github.com/complymap/complymap/pkg/finding"
	"github.com/complymap/complymap/pkg/output/writers"
	"github.com/complymap/complymap/pkg/report"
	"github.com/complymap/complymap/pkg/ui"
)

var version = "dev"

// Config holds all CLI configuration options
type Config struct {
	// Input settings
	FindingsFile  string // JSONL findings produced by a scanner
	FrameworkFile string // YAML framework definition
	FrameworkName string // Framework key inside the findings' compliance map

	// Output settings
	OutputFile string // Report path (empty = stdout)
	Format     string // csv or json
	JSONExport string // Extra JSON export path alongside the main report
	Excel      bool   // UTF-8 BOM for Excel
	NoSanitize bool   // Disable formula sanitization
	Pretty     bool   // Indent JSON output

	// Display settings
	Silent  bool
	NoColor bool
	Verbose bool
}

func parseFlags() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.FindingsFile, "findings", "", "Findings file (JSONL, one finding per line)")
	flag.StringVar(&cfg.FrameworkFile, "framework", "", "Framework definition file (YAML)")
	flag.StringVar(&cfg.FrameworkName, "name", "", "Framework name as referenced by findings (default: name from the definition)")
	flag.StringVar(&cfg.OutputFile, "o", "", "Report output path (default: stdout)")
	flag.StringVar(&cfg.Format, "format", "csv", "Report format: csv, json")
	flag.StringVar(&cfg.JSONExport, "json-export", "", "Also export the rows as JSON to this path")
	flag.BoolVar(&cfg.Excel, "excel", false, "Write a UTF-8 BOM for Excel compatibility")
	flag.BoolVar(&cfg.NoSanitize, "no-sanitize", false, "Disable spreadsheet formula sanitization")
	flag.BoolVar(&cfg.Pretty, "pretty", false, "Indent JSON output")
	flag.BoolVar(&cfg.Silent, "silent", false, "Suppress the run summary")
	flag.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&cfg.Verbose, "v", false, "Verbose logging")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("complymap %s\n", version)
		os.Exit(0)
	}

	return cfg
}

func main() {
	cfg := parseFlags()

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *Config, logger *slog.Logger) error {
	if cfg.FindingsFile == "" || cfg.FrameworkFile == "" {
		flag.Usage()
		return fmt.Errorf("both -findings and -framework are required")
	}

	fw, err := compliance.Load(cfg.FrameworkFile)
	if err != nil {
		return err
	}
	name := cfg.FrameworkName
	if name == "" {
		name = fw.Framework
	}

	findings, err := finding.LoadFile(cfg.FindingsFile)
	if err != nil {
		return err
	}

	reportID := uuid.NewString()
	logger.Debug("transforming findings",
		slog.String("report_id", reportID),
		slog.String("framework", name),
		slog.Int("findings", len(findings)))

	rows := report.Transform(findings, fw, name, report.Options{
		AssessmentDate: time.Now().UTC(),
	})

	if err := writeReport(cfg, rows, logger); err != nil {
		logger.Error("report write failed", slog.String("error", err.Error()))
		return err
	}

	if cfg.JSONExport != "" && cfg.Format != "json" {
		if err := exportJSON(cfg.JSONExport, rows, cfg, logger); err != nil {
			logger.Error("json export failed", slog.String("error", err.Error()))
			return err
		}
	}

	if !cfg.Silent {
		summary := ui.Summarize(name, reportID, rows)
		fmt.Fprintln(os.Stderr, summary.Render(cfg.NoColor))
	}
	return nil
}

// writeReport writes the main report to -o (or stdout) in -format.
func writeReport(cfg *Config, rows []report.Row, logger *slog.Logger) error {
	dest, owned, err := openDest(cfg.OutputFile)
	if err != nil {
		return err
	}

	switch cfg.Format {
	case "csv":
		if !owned {
			// Stdout stays open; wrap writes only.
			w := writers.NewCSVWriter(dest, csvOptions(cfg, logger))
			if err := w.WriteRows(rows); err != nil {
				return err
			}
			return w.Flush()
		}
		return writers.WriteReport(dest, rows, csvOptions(cfg, logger))
	case "json":
		w := writers.NewJSONWriter(dest, writers.JSONOptions{Pretty: cfg.Pretty, Logger: logger})
		if err := w.WriteRows(rows); err != nil {
			if owned {
				w.Close()
			}
			return err
		}
		if owned {
			return w.Close()
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", cfg.Format)
	}
}

func exportJSON(path string, rows []report.Row, cfg *Config, logger *slog.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating json export: %w", err)
	}
	w := writers.NewJSONWriter(f, writers.JSONOptions{Pretty: cfg.Pretty, Logger: logger})
	if err := w.WriteRows(rows); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func csvOptions(cfg *Config, logger *slog.Logger) writers.CSVOptions {
	return writers.CSVOptions{
		ExcelCompatible:  cfg.Excel,
		SanitizeFormulas: !cfg.NoSanitize,
		Logger:           logger,
	}
}

// openDest opens the report destination. The bool reports whether the
// caller owns the handle and must close it (false for stdout).
func openDest(path string) (*os.File, bool, error) {
	if path == "" {
		return os.Stdout, false, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, false, fmt.Errorf("creating report file: %w", err)
	}
	return f, true, nil
}
