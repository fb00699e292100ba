package importer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"jobmatch/internal/match"
)

// Store is the part of the registry the importer needs.
type Store interface {
	List(ctx context.Context) ([]match.Entity, error)
	Create(ctx context.Context, name string, aliases []string) (*match.Entity, error)
}

// Resolution is the outcome for one input name.
type Resolution struct {
	Input  string        `json:"input"`
	Action Action        `json:"action"`
	Entity *match.Entity `json:"entity,omitempty"`
	// Rule is the name rule that matched (ActionMatched only).
	Rule     match.Rule `json:"rule"`
	Distance int        `json:"distance,omitempty"`
}

// Summary counts resolutions per action.
type Summary struct {
	Matched int `json:"matched"`
	Created int `json:"created"`
	Staged  int `json:"staged"`
	Skipped int `json:"skipped"`
}

// Importer resolves typed names against the registry.
type Importer struct {
	Registry Store
	Matcher  *match.NameMatcher
	Logger   *slog.Logger
	// DryRun stages new companies instead of creating them.
	DryRun bool
}

// Resolve processes names in order. Each name is matched against the
// registry contents plus the companies created (or staged) earlier in the
// same call, so a batch never creates the same company twice.
func (im *Importer) Resolve(ctx context.Context, names []string) ([]Resolution, error) {
	log := im.Logger
	if log == nil {
		log = slog.Default()
	}

	matcher := im.Matcher
	if matcher == nil {
		matcher = match.NewNameMatcher(match.AliasTable{}, match.DefaultNameMatcherConfig())
	}

	candidates, err := im.Registry.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}

	out := make([]Resolution, 0, len(names))

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		res := Resolution{Input: name}

		if match.Normalize(name) == "" {
			res.Action = ActionSkipped
			out = append(out, res)

			log.Debug("import: blank name skipped", slog.String("input", name))

			continue
		}

		if m := matcher.FindMatch(name, candidates); m.Found() {
			res.Action = ActionMatched
			res.Entity = m.Entity
			res.Rule = m.Rule
			res.Distance = m.Distance
			out = append(out, res)

			log.Info("import: matched existing company",
				slog.String("input", name),
				slog.String("company", m.Entity.Name),
				slog.String("rule", m.Rule.String()),
			)

			continue
		}

		entity, err := im.add(ctx, name)
		if err != nil {
			return out, fmt.Errorf("import %q: %w", name, err)
		}

		candidates = append(candidates, *entity)

		res.Entity = entity
		res.Action = ActionCreated

		if im.DryRun {
			res.Action = ActionStaged
		}

		out = append(out, res)

		log.Info("import: new company",
			slog.String("input", name),
			slog.String("action", res.Action.String()),
		)
	}

	return out, nil
}

func (im *Importer) add(ctx context.Context, name string) (*match.Entity, error) {
	if im.DryRun {
		return &match.Entity{Name: strings.TrimSpace(name)}, nil
	}

	return im.Registry.Create(ctx, name, nil)
}

// Summarize counts resolutions per action.
func Summarize(resolutions []Resolution) Summary {
	var s Summary

	for _, r := range resolutions {
		switch r.Action {
		case ActionMatched:
			s.Matched++
		case ActionCreated:
			s.Created++
		case ActionStaged:
			s.Staged++
		case ActionSkipped:
			s.Skipped++
		}
	}

	return s
}
