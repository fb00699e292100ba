package main

import (
	"fmt"

	"jobmatch/internal/tables"
)

func (a *app) tables(args []string) error {
	fs := newFlagSet("tables", a)
	validatePath := fs.String("validate", "", "tables file to validate (default: configured tables)")
	dump := fs.Bool("dump", false, "print the tables as YAML")

	if err := fs.Parse(args); err != nil {
		return err
	}

	path := *validatePath
	if path == "" {
		path = a.cfg.Tables
	}

	f, err := tables.Load(path)
	if err != nil {
		return err
	}

	if *dump {
		data, err := tables.Marshal(f)
		if err != nil {
			return err
		}

		_, err = a.stdout.Write(data)

		return err
	}

	diags := tables.Validate(f)
	a.dump("diagnostics", diags)

	for _, d := range diags.All() {
		fmt.Fprintf(a.stdout, "%-7s %s\n", d.Severity, d)
	}

	if diags.HasErrors() {
		return fmt.Errorf("%d error(s) in tables", len(diags.Errors))
	}

	fmt.Fprintf(a.stdout, "ok: %d skills, %d categories, %d company aliases\n",
		len(f.Skills), len(f.Categories), len(f.Companies.Aliases))

	return nil
}
