// Package main provides the CLI entrypoint for jobmatch.
//
// jobmatch compares resumes with job descriptions against a controlled
// skill vocabulary and de-duplicates company names:
//   - score: one resume against one job description
//   - batch: one resume against many job descriptions, best first
//   - company: find the known company a typed name refers to
//   - import: bulk-import company names into the registry without duplicates
//   - tables: validate or print the matching tables
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"

	"jobmatch/internal/config"
	"jobmatch/internal/match"
	"jobmatch/internal/tables"
)

const usage = `usage: jobmatch [-config FILE] [-debug] <command> [flags]

commands:
  score   -resume FILE -jd FILE [-json]
  batch   -resume FILE [-json] JD_FILE...
  company -name NAME [-candidates FILE] [-suggest N] [-json]
  import  [-db FILE] [-dry-run] [-json] NAMES_FILE
  tables  [-validate FILE] [-dump]
`

// errUsage marks errors caused by bad command lines (exit code 2).
var errUsage = errors.New("usage error")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// app carries what every command needs.
type app struct {
	cfg    config.Config
	log    *slog.Logger
	stdout io.Writer
	stderr io.Writer
	debug  bool
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("jobmatch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }

	configPath := fs.String("config", "", "YAML config file")
	debug := fs.Bool("debug", false, "dump intermediate structures to stderr")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "jobmatch: %v\n", err)
		return 1
	}

	a := &app{
		cfg:    cfg,
		log:    cfg.Log.NewLogger(stderr),
		stdout: stdout,
		stderr: stderr,
		debug:  *debug,
	}

	commands := map[string]func([]string) error{
		"score":   a.score,
		"batch":   a.batch,
		"company": a.company,
		"import":  a.importNames,
		"tables":  a.tables,
	}

	name := fs.Arg(0)

	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "jobmatch: unknown command %q\n", name)
		fs.Usage()

		return 2
	}

	if err := cmd(fs.Args()[1:]); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stderr, "jobmatch %s: %v\n", name, err)
			return 2
		}

		a.log.Error("command failed", slog.String("command", name), slog.Any("error", err))

		return 1
	}

	return 0
}

// loadTables loads and compiles the configured tables, logging
// non-fatal diagnostics.
func (a *app) loadTables() (*tables.Tables, error) {
	f, err := tables.Load(a.cfg.Tables)
	if err != nil {
		return nil, err
	}

	diags := tables.Validate(f)
	for _, w := range diags.Warnings {
		a.log.Warn("tables", slog.String("diagnostic", w.String()))
	}

	t, err := tables.Build(f)
	if err != nil {
		return nil, err
	}

	a.log.Debug("tables loaded",
		slog.String("path", a.cfg.Tables),
		slog.Int("skills", t.Vocabulary.Len()),
		slog.Int("company_aliases", t.CompanyAliases.Len()),
	)

	return t, nil
}

func (a *app) nameMatcher() (*match.NameMatcher, error) {
	t, err := a.loadTables()
	if err != nil {
		return nil, err
	}

	return t.NameMatcher(a.cfg.NameMatcher), nil
}

// dump writes v to stderr when -debug is set.
func (a *app) dump(label string, v any) {
	if !a.debug {
		return
	}

	fmt.Fprintf(a.stderr, "--- %s ---\n", label)
	spew.Fdump(a.stderr, v)
}

func newFlagSet(name string, a *app) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)

	return fs
}
