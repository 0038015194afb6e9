package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/creative-copilot/backend/internal/lexicon"
	"github.com/creative-copilot/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Generator selects templates for a brief and composes all of them in parallel.
type Generator struct {
	catalog      []models.Template
	byID         map[string]int
	maxTemplates int
	log          *zap.Logger
}

func NewGenerator(catalog []models.Template, maxTemplates int, log *zap.Logger) *Generator {
	if maxTemplates <= 0 {
		maxTemplates = DefaultMaxTemplates
	}
	byID := make(map[string]int, len(catalog))
	for i, t := range catalog {
		if _, dup := byID[t.ID]; !dup {
			byID[t.ID] = i
		}
	}
	return &Generator{catalog: catalog, byID: byID, maxTemplates: maxTemplates, log: log}
}

type Options struct {
	// Seed pins the random streams. Nil draws a fresh seed.
	Seed *uint64
	// MaxTemplates overrides the generator default when > 0.
	MaxTemplates int
	// TemplateIDs bypasses goal-based selection when non-empty.
	TemplateIDs []string
}

type Result struct {
	Seed      uint64                     `json:"seed"`
	Artifacts []models.GeneratedArtifact `json:"artifacts"`
}

func (g *Generator) Catalog() []models.Template {
	return g.catalog
}

// Templates resolves which templates a request will populate.
func (g *Generator) Templates(goal models.Goal, opts Options) ([]models.Template, error) {
	if len(opts.TemplateIDs) == 0 {
		limit := g.maxTemplates
		if opts.MaxTemplates > 0 {
			limit = min(opts.MaxTemplates, len(g.catalog))
		}
		return SelectTemplates(goal, g.catalog, limit), nil
	}

	out := make([]models.Template, 0, len(opts.TemplateIDs))
	for _, id := range opts.TemplateIDs {
		t, ok := g.find(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
		}
		out = append(out, t)
	}
	return out, nil
}

func (g *Generator) find(id string) (models.Template, bool) {
	i, ok := g.byID[id]
	if !ok {
		return models.Template{}, false
	}
	return g.catalog[i], true
}

// Generate composes one artifact per selected template. Artifacts keep
// selection order. A cancelled context discards the whole batch.
func (g *Generator) Generate(ctx context.Context, brief models.CampaignBrief, opts Options) (*Result, error) {
	start := time.Now()

	if err := ValidateBrief(brief); err != nil {
		return nil, err
	}
	templates, err := g.Templates(brief.Goal, opts)
	if err != nil {
		return nil, err
	}

	seed := NewSeed()
	if opts.Seed != nil {
		seed = *opts.Seed
	}

	artifacts := make([]models.GeneratedArtifact, len(templates))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, tpl := range templates {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			a, err := Compose(brief, &tpl, NewSeededSource(seed, uint64(i)))
			if err != nil {
				return err
			}
			artifacts[i] = a
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, ok := lexicon.Headline(brief.Goal, brief.Tone, brief.ProductName); !ok {
		g.log.Debug("headline table miss, using default",
			zap.String("goal", string(brief.Goal)),
			zap.String("tone", string(brief.Tone)),
		)
	}
	g.log.Info("artifacts generated",
		zap.Int("templates", len(templates)),
		zap.Uint64("seed", seed),
		zap.Duration("latency", time.Since(start)),
	)

	return &Result{Seed: seed, Artifacts: artifacts}, nil
}
