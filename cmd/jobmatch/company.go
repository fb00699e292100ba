package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"jobmatch/internal/importer"
	"jobmatch/internal/match"
	"jobmatch/internal/registry"
)

func (a *app) company(args []string) error {
	fs := newFlagSet("company", a)
	name := fs.String("name", "", "company name as typed")
	candidatesPath := fs.String("candidates", "", "YAML list of known companies (default: the registry)")
	suggest := fs.Int("suggest", 3, "suggestions to show when nothing matches")
	asJSON := fs.Bool("json", false, "print JSON")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(*name) == "" {
		return fmt.Errorf("%w: -name is required", errUsage)
	}

	m, err := a.nameMatcher()
	if err != nil {
		return err
	}

	candidates, err := a.candidates(*candidatesPath)
	if err != nil {
		return err
	}

	res := m.FindMatch(*name, candidates)
	a.dump("name match", res)

	var suggestions match.CandidateList
	if !res.Found() {
		suggestions = m.Suggest(*name, candidates, *suggest).AboveThreshold(match.DefaultSuggestScore)
	}

	if *asJSON {
		return writeJSON(a.stdout, struct {
			Match       match.NameMatch `json:"match"`
			Suggestions []string        `json:"suggestions,omitempty"`
		}{res, candidateNames(suggestions)})
	}

	if res.Found() {
		fmt.Fprintf(a.stdout, "%s -> %s (rule: %s", *name, res.Entity.Name, strings.ToLower(res.Rule.String()))
		if res.Rule == match.RuleEditDistance {
			fmt.Fprintf(a.stdout, ", distance: %d", res.Distance)
		}

		fmt.Fprintln(a.stdout, ")")

		return nil
	}

	fmt.Fprintf(a.stdout, "%s: no match\n", *name)

	for _, c := range suggestions {
		fmt.Fprintf(a.stdout, "  did you mean %s? (%.2f)\n", c.Entity.Name, c.Score)
	}

	return nil
}

func candidateNames(list match.CandidateList) []string {
	names := make([]string, 0, len(list))
	for _, c := range list {
		names = append(names, c.Entity.Name)
	}

	return names
}

// candidates loads known companies from a YAML file, or from the registry
// when path is empty.
func (a *app) candidates(path string) ([]match.Entity, error) {
	if path == "" {
		reg, err := a.openRegistry(a.cfg.Database)
		if err != nil {
			return nil, err
		}
		defer reg.Close()

		return reg.List(context.Background())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var entities []match.Entity
	if err := yaml.Unmarshal(data, &entities); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return entities, nil
}

func (a *app) openRegistry(path string) (*registry.Registry, error) {
	reg, err := registry.Open(path, a.log)
	if err != nil {
		return nil, err
	}

	if err := reg.Migrate(context.Background()); err != nil {
		_ = reg.Close()
		return nil, err
	}

	return reg, nil
}

func (a *app) importNames(args []string) error {
	fs := newFlagSet("import", a)
	dbPath := fs.String("db", a.cfg.Database, "registry database file")
	dryRun := fs.Bool("dry-run", false, "report what would be created without writing")
	asJSON := fs.Bool("json", false, "print JSON")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("%w: exactly one names file is required", errUsage)
	}

	names, err := readLines(fs.Arg(0))
	if err != nil {
		return err
	}

	m, err := a.nameMatcher()
	if err != nil {
		return err
	}

	reg, err := a.openRegistry(*dbPath)
	if err != nil {
		return err
	}
	defer reg.Close()

	im := &importer.Importer{
		Registry: reg,
		Matcher:  m,
		Logger:   a.log,
		DryRun:   *dryRun,
	}

	resolutions, err := im.Resolve(context.Background(), names)
	if err != nil {
		return err
	}

	summary := importer.Summarize(resolutions)
	a.dump("resolutions", resolutions)

	if *asJSON {
		return writeJSON(a.stdout, struct {
			Resolutions []importer.Resolution `json:"resolutions"`
			Summary     importer.Summary      `json:"summary"`
		}{resolutions, summary})
	}

	for _, r := range resolutions {
		switch r.Action {
		case importer.ActionMatched:
			fmt.Fprintf(a.stdout, "matched  %s -> %s (%s)\n", r.Input, r.Entity.Name, strings.ToLower(r.Rule.String()))
		case importer.ActionCreated, importer.ActionStaged:
			fmt.Fprintf(a.stdout, "%-8s %s\n", strings.ToLower(r.Action.String()), r.Entity.Name)
		case importer.ActionSkipped:
			fmt.Fprintf(a.stdout, "skipped  %q\n", r.Input)
		}
	}

	fmt.Fprintf(a.stdout, "%d matched, %d created, %d staged, %d skipped\n",
		summary.Matched, summary.Created, summary.Staged, summary.Skipped)

	return nil
}

// readLines returns the non-empty lines of a file ("-" reads stdin).
func readLines(path string) ([]string, error) {
	f := os.Stdin

	if path != "-" {
		var err error

		f, err = os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
	}

	var lines []string

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return lines, nil
}
