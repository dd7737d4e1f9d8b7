// ABOUTME: Build sources for CLI commands
// ABOUTME: Generates builds through the backend API or against a local catalog file

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/catalog"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/models"
	"github.com/howardresourcegroup-cmd/hrg-configurator/backend/services"
	"github.com/howardresourcegroup-cmd/hrg-configurator/cli/internal/client"
	"github.com/shopspring/decimal"
)

// BuildSource generates builds for a request
type BuildSource interface {
	GenerateBuilds(ctx context.Context, req models.BuildSetRequest) (*models.BuildSet, error)
	GenerateBuild(ctx context.Context, req models.BuildRequest) (*models.Build, error)
}

// localSource runs the selection pipeline in-process
type localSource struct {
	catalog   *models.Catalog
	version   string
	generator *services.Generator
}

// newLocalSource loads a catalog file and prepares a generator for it
func newLocalSource(path, policy string) (*localSource, error) {
	p, err := services.ParseClearancePolicy(policy)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	version, err := catalog.Version(cat)
	if err != nil {
		return nil, err
	}
	return &localSource{
		catalog:   cat,
		version:   version,
		generator: services.NewGenerator(services.Options{ClearancePolicy: p}),
	}, nil
}

func (s *localSource) GenerateBuilds(ctx context.Context, req models.BuildSetRequest) (*models.BuildSet, error) {
	set, err := s.generator.GenerateSet(ctx, s.catalog, req)
	if err != nil {
		return nil, err
	}
	set.CatalogVersion = s.version
	return set, nil
}

func (s *localSource) GenerateBuild(_ context.Context, req models.BuildRequest) (*models.Build, error) {
	return s.generator.Generate(s.catalog, req)
}

// newBuildSource returns a local source when a catalog path is given, else the API client
func newBuildSource(catalogPath, policy string) (BuildSource, error) {
	if catalogPath != "" {
		return newLocalSource(catalogPath, policy)
	}
	return apiClient(), nil
}

// parseBuildSetRequest converts flag values into a validated request
func parseBuildSetRequest(budget, useCase, resolution string) (models.BuildSetRequest, error) {
	amount, err := decimal.NewFromString(strings.TrimPrefix(strings.TrimSpace(budget), "$"))
	if err != nil {
		return models.BuildSetRequest{}, fmt.Errorf("%w: budget %q is not a number", models.ErrInvalidRequest, budget)
	}
	uc, err := models.ParseUseCase(useCase)
	if err != nil {
		return models.BuildSetRequest{}, err
	}
	res, err := models.ParseResolution(resolution)
	if err != nil {
		return models.BuildSetRequest{}, err
	}
	req := models.BuildSetRequest{Budget: amount, UseCase: uc, Resolution: res}
	if err := req.Validate(); err != nil {
		return models.BuildSetRequest{}, err
	}
	return req, nil
}

// noCompatibleBuild reports whether err means the catalog could not satisfy a request
func noCompatibleBuild(err error) bool {
	return errors.Is(err, models.ErrExhausted) || client.IsStatus(err, http.StatusUnprocessableEntity)
}
