package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"jobmatch/internal/jdtext"
	"jobmatch/internal/skills"
)

func (a *app) score(args []string) error {
	fs := newFlagSet("score", a)
	resumePath := fs.String("resume", "", "resume text file")
	jdPath := fs.String("jd", "", "job description file (text, markdown or HTML)")
	asJSON := fs.Bool("json", false, "print JSON")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *resumePath == "" || *jdPath == "" {
		return fmt.Errorf("%w: -resume and -jd are required", errUsage)
	}

	t, err := a.loadTables()
	if err != nil {
		return err
	}

	resume, err := readDocument(*resumePath)
	if err != nil {
		return err
	}

	jd, err := readDocument(*jdPath)
	if err != nil {
		return err
	}

	m := t.SkillMatcher()
	a.dump("job description skills", m.Extract(jd).Keywords())

	res := m.Compute(resume, jd)
	a.dump("match result", res)

	if *asJSON {
		return writeJSON(a.stdout, res)
	}

	printResult(a.stdout, res)

	return nil
}

func (a *app) batch(args []string) error {
	fs := newFlagSet("batch", a)
	resumePath := fs.String("resume", "", "resume text file")
	asJSON := fs.Bool("json", false, "print JSON")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *resumePath == "" || fs.NArg() == 0 {
		return fmt.Errorf("%w: -resume and at least one job description file are required", errUsage)
	}

	t, err := a.loadTables()
	if err != nil {
		return err
	}

	resume, err := readDocument(*resumePath)
	if err != nil {
		return err
	}

	docs := make([]skills.Document, 0, fs.NArg())

	for _, path := range fs.Args() {
		doc, err := readJob(path)
		if err != nil {
			return err
		}

		docs = append(docs, doc)
	}

	results, err := t.SkillMatcher().ScoreBatch(context.Background(), resume, docs, a.cfg.Workers)
	if err != nil {
		return err
	}

	ranked := skills.RankBatch(results)
	a.dump("ranked results", ranked)

	if *asJSON {
		return writeJSON(a.stdout, ranked)
	}

	w := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCORE\tJOB\tTITLE\tMISSING")

	for _, r := range ranked {
		fmt.Fprintf(w, "%.1f\t%s\t%s\t%s\n",
			r.Result.MatchScore, r.ID, r.Title, strings.Join(skills.Names(r.Result.PriorityMissingSkills), ", "))
	}

	return w.Flush()
}

func printResult(w io.Writer, res skills.MatchResult) {
	fmt.Fprintf(w, "Match score: %.1f%%\n", res.MatchScore)
	printKeywords(w, "Existing", res.ExistingSkills)
	printKeywords(w, "Missing", res.MissingSkills)
	printKeywords(w, "Extra", res.ExtraSkills)
	printKeywords(w, "Priority", res.PriorityMissingSkills)
}

func printKeywords(w io.Writer, label string, kws []skills.Keyword) {
	fmt.Fprintf(w, "%s (%d): %s\n", label, len(kws), strings.Join(skills.Names(kws), ", "))
}

// readDocument returns the plain text of a resume or job description file.
func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	text, err := jdtext.Extract(string(data))
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	return text, nil
}

// readJob reads a job description file; HTML pages contribute their title.
func readJob(path string) (skills.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return skills.Document{}, fmt.Errorf("read %s: %w", path, err)
	}

	doc := skills.Document{ID: filepath.Base(path)}

	if !jdtext.LooksLikeHTML(string(data)) {
		doc.Text = jdtext.FromMarkdown(string(data))
		return doc, nil
	}

	page, err := jdtext.ParseHTML(strings.NewReader(string(data)))
	if err != nil {
		return skills.Document{}, fmt.Errorf("%s: %w", path, err)
	}

	doc.Title = page.Title
	doc.Text = page.Text

	return doc, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
