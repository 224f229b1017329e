// Command tokenize scans C-like source files and reports the classified
// tokens grouped by category, alongside a cleaned copy of the input with
// comments stripped.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"

	slogmulti "github.com/samber/slog-multi"

	"github.com/Oreo-PopTart/CPSC-323-Project-1/internal/lexical"
	"github.com/Oreo-PopTart/CPSC-323-Project-1/internal/lexical/config"
	"github.com/Oreo-PopTart/CPSC-323-Project-1/internal/lexical/report"
)

// version is set by goreleaser at build time.
var version = "dev"

const toolName = "tokenize"

func main() {
	versionFlag := flag.Bool("version", false, "print the tool version")
	configPath := flag.String("config", "tokenize.cue", "path to the cue config file")
	format := flag.String("format", "", "output format: table or json (overrides the config file)")
	project := flag.Bool("project", false, "treat the argument as a project directory")
	verbose := flag.Bool("verbose", false, "also list every token in sequence order")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("%s -- version %s\n", toolName, version)
		os.Exit(0)
	}

	conf, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if *format != "" {
		conf.Format = *format
	}

	configureLogging(conf.LogFile)

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <file|directory>\n", toolName)
		os.Exit(2)
	}

	target := flag.Arg(0)

	slog.Info("starting scan",
		slog.String("target", target),
		slog.String("tool_version", version),
	)

	if *project {
		runProject(target, conf, *verbose)
		return
	}

	runFile(target, conf, *verbose)
}

// runFile scans a single source file and renders its report.
func runFile(path string, conf config.Config, verbose bool) {
	result, err := lexical.ScanFile(path)
	if err != nil {
		slog.Error("scan aborted", slog.String("path", path), slog.Any("error", err))
		fmt.Fprintln(os.Stderr, "Error: File could not be opened.")
		os.Exit(1)
	}

	render(os.Stdout, result, conf, verbose)

	slog.Info("scan finished",
		slog.String("path", path),
		slog.Int("token_count", len(result.Tokens)),
	)
}

// runProject scans every matching file under a directory tree, rendering
// one report per file in path order.
func runProject(rootDir string, conf config.Config, verbose bool) {
	results, err := lexical.ScanProject(rootDir, conf.Extensions)
	if err != nil {
		slog.Error("scan aborted", slog.String("root", rootDir), slog.Any("error", err))
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	for _, name := range slices.Sorted(maps.Keys(results)) {
		fmt.Printf("== %s\n\n", name)
		render(os.Stdout, results[name], conf, verbose)
		fmt.Println()
	}

	slog.Info("scan finished",
		slog.String("root", rootDir),
		slog.Int("file_count", len(results)),
	)
}

// render writes one scan result in the configured format.
func render(w io.Writer, result lexical.Result, conf config.Config, verbose bool) {
	groups := report.GroupTokens(result.Tokens)

	if conf.Format == "json" {
		if err := report.WriteJSON(w, result.Cleaned, groups); err != nil {
			slog.Error("rendering failed", slog.Any("error", err))
		}
		return
	}

	if conf.ShowCleaned {
		fmt.Fprintf(w, "Cleaned-up Input:\n%s\n\n", result.Cleaned)
	}

	if verbose {
		if err := report.WriteList(w, result.Tokens); err != nil {
			slog.Error("rendering failed", slog.Any("error", err))
			return
		}
		fmt.Fprintln(w)
	}

	if err := report.WriteTable(w, groups); err != nil {
		slog.Error("rendering failed", slog.Any("error", err))
	}
}

// configureLogging sets up structured logging: warnings and errors as text
// on stderr, plus the full JSON stream into the configured log file when
// one is set.
func configureLogging(logFile string) {
	var handlers []slog.Handler

	handlers = append(handlers, slog.NewTextHandler(
		os.Stderr,
		&slog.HandlerOptions{Level: slog.LevelWarn},
	))

	if logFile != "" {
		//nolint:gosec // logFile comes from the user's own config
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "unable to open log file,", err.Error())
		} else {
			handlers = append(handlers, slog.NewJSONHandler(file, nil))
		}
	}

	logger := slog.New(slogmulti.Fanout(handlers...))
	slog.SetDefault(logger)
}
