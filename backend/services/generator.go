// ABOUTME: Build generation pipeline from profile resolution to aggregation
// ABOUTME: GenerateSet runs the three preference passes concurrently

package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"golang.org/x/sync/errgroup"
)

// ClearancePolicy decides what happens when the final case still violates clearance
type ClearancePolicy string

const (
	// ClearanceWarn keeps the selector picks and relies on warnings
	ClearanceWarn ClearancePolicy = "warn"
	// ClearanceResearch looks for any case and cooler pair that fits
	ClearanceResearch ClearancePolicy = "research"
)

// ParseClearancePolicy converts a string to a ClearancePolicy
func ParseClearancePolicy(s string) (ClearancePolicy, error) {
	switch p := ClearancePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case ClearanceWarn, ClearanceResearch:
		return p, nil
	case "":
		return ClearanceWarn, nil
	default:
		return "", fmt.Errorf("unknown clearance policy %q (expected warn or research)", s)
	}
}

// Observer receives the result of every generation pass
type Observer interface {
	ObserveBuild(build *models.Build, elapsed time.Duration)
	ObserveFailure(preference models.Preference, err error)
}

// Options tune a Generator
type Options struct {
	ClearancePolicy ClearancePolicy
	DDR5Sockets     []string
	Logger          *slog.Logger
	Observer        Observer
}

// Generator runs the selection pipeline against a catalog passed per call
type Generator struct {
	policy      ClearancePolicy
	ddr5Sockets []string
	logger      *slog.Logger
	observer    Observer
}

// NewGenerator creates a generator, filling unset options with defaults
func NewGenerator(opts Options) *Generator {
	g := &Generator{
		policy:      opts.ClearancePolicy,
		ddr5Sockets: opts.DDR5Sockets,
		logger:      opts.Logger,
		observer:    opts.Observer,
	}
	if g.policy == "" {
		g.policy = ClearanceWarn
	}
	if len(g.ddr5Sockets) == 0 {
		g.ddr5Sockets = DefaultDDR5Sockets
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g
}

// Policy returns the clearance policy in effect
func (g *Generator) Policy() ClearancePolicy {
	return g.policy
}

// Generate runs one pipeline pass for a single preference
func (g *Generator) Generate(catalog *models.Catalog, req models.BuildRequest) (*models.Build, error) {
	start := time.Now()
	build, err := g.generate(catalog, req)
	if g.observer != nil {
		if err != nil {
			g.observer.ObserveFailure(req.Preference, err)
		} else {
			g.observer.ObserveBuild(build, time.Since(start))
		}
	}
	return build, err
}

func (g *Generator) generate(catalog *models.Catalog, req models.BuildRequest) (*models.Build, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	profile, err := ResolveProfile(req.Preference)
	if err != nil {
		return nil, err
	}

	var (
		parts      models.Parts
		selections = make([]models.Selection, 0, len(models.AllCategories))
		sel        models.Selection
	)
	record := func(s models.Selection) {
		selections = append(selections, s)
		if s.Outcome != models.OutcomeIdeal {
			g.logger.Debug("Selection fallback",
				"preference", req.Preference,
				"category", s.Category,
				"outcome", s.Outcome,
				"rule", s.Rule)
		}
	}

	if parts.GPU, sel, err = SelectGPU(catalog.GPUs, req, profile); err != nil {
		return nil, err
	}
	record(sel)
	if parts.CPU, sel, err = SelectCPU(catalog.CPUs, req, profile); err != nil {
		return nil, err
	}
	record(sel)

	memoryType := RequiredMemoryType(parts.CPU, g.ddr5Sockets)
	if parts.Motherboard, sel, err = SelectMotherboard(catalog.Motherboards, parts.CPU, memoryType, req.Budget); err != nil {
		return nil, err
	}
	record(sel)
	if parts.Memory, sel, err = SelectMemory(catalog.Memory, memoryType, req.UseCase); err != nil {
		return nil, err
	}
	record(sel)
	if parts.Storage, sel, err = SelectStorage(catalog.Storage, req.Budget); err != nil {
		return nil, err
	}
	record(sel)

	caseSel, coolerSel := models.Selection{}, models.Selection{}
	if parts.Case, caseSel, err = SelectCase(catalog.Cases, parts.Motherboard, parts.GPU, req.Budget); err != nil {
		return nil, err
	}
	if parts.Cooler, coolerSel, err = SelectCooler(catalog.Coolers, parts.CPU, parts.Case); err != nil {
		return nil, err
	}
	if g.policy == ClearanceResearch && ClearanceViolated(parts.Case, parts.Motherboard, parts.GPU, parts.Cooler) {
		if c, k, ok := ResearchEnclosure(catalog.Cases, catalog.Coolers, parts.Motherboard, parts.GPU, parts.CPU); ok {
			parts.Case, parts.Cooler = c, k
			caseSel = models.Selection{Category: models.CategoryCase, Outcome: models.OutcomeRelaxed, Rule: "cheapest case and cooler pair clearing every limit"}
			coolerSel = models.Selection{Category: models.CategoryCooler, Outcome: models.OutcomeRelaxed, Rule: "cheapest case and cooler pair clearing every limit"}
		} else {
			g.logger.Debug("No clearance-safe enclosure in catalog", "preference", req.Preference)
		}
	}
	record(caseSel)
	record(coolerSel)

	loadW := EstimateLoad(parts.CPU, parts.GPU)
	if parts.PSU, sel, err = SelectPSU(catalog.PSUs, loadW); err != nil {
		return nil, err
	}
	record(sel)

	total := parts.Total()
	return &models.Build{
		Preference:       req.Preference,
		Budget:           req.Budget,
		UseCase:          req.UseCase,
		Resolution:       req.Resolution,
		Parts:            parts,
		TotalPrice:       total,
		EstimatedWattage: loadW,
		Warnings:         EvaluateWarnings(parts, total, req.Budget, loadW),
		Reasons:          GenerateReasons(parts, req, profile, selections, loadW),
		Selections:       orderSelections(selections),
	}, nil
}

// orderSelections reports selections in category display order
func orderSelections(selections []models.Selection) []models.Selection {
	ordered := make([]models.Selection, 0, len(selections))
	for _, c := range models.AllCategories {
		for _, s := range selections {
			if s.Category == c {
				ordered = append(ordered, s)
			}
		}
	}
	return ordered
}

// GenerateSet runs the value, balanced, and max passes concurrently.
// Passes share only the read-only catalog, so the result matches sequential runs.
func (g *Generator) GenerateSet(ctx context.Context, catalog *models.Catalog, req models.BuildSetRequest) (*models.BuildSet, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	builds := make([]models.Build, len(models.Preferences))
	eg, ctx := errgroup.WithContext(ctx)
	for i, p := range models.Preferences {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := g.Generate(catalog, req.WithPreference(p))
			if err != nil {
				return fmt.Errorf("%s build: %w", p, err)
			}
			builds[i] = *b
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	g.logger.Debug("Generated build set",
		"budget", req.Budget.String(),
		"use_case", req.UseCase,
		"resolution", req.Resolution.String())
	return &models.BuildSet{Request: req, Builds: builds}, nil
}
