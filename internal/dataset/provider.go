package dataset

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/datagen"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/logger"
	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/models"
)

// Well-known data file names, matching the published source files.
const (
	HappinessFileName  = "2022.csv"
	UniversityFileName = "university_data.csv"
)

// happinessRawColumns are the canonical names assigned positionally to the
// raw happiness report columns.
var happinessRawColumns = []string{
	"RANK", "Country", "Happiness_score", "Whisker_high", "Whisker_low",
	"Dystopia_residual", "GDP_per_capita", "Social_support",
	"Healthy_life_expectancy", "Freedom", "Generosity", "Corruption",
}

// Provider resolves datasets from real sources where available and falls
// back to seeded synthetic generation otherwise. Every result is tagged
// with its origin so callers can tell real data from generated data.
type Provider struct {
	DataDir string
	BaseURL string

	fetcher *Fetcher
}

// NewProvider creates a provider reading from dataDir. When baseURL is
// non-empty, remote copies under that URL are preferred over local files.
func NewProvider(dataDir, baseURL string) *Provider {
	return &Provider{
		DataDir: dataDir,
		BaseURL: baseURL,
		fetcher: NewFetcher(),
	}
}

// Happiness loads the world happiness report, normalizing raw columns to
// canonical names, dropping placeholder countries and coercing
// decimal-comma numerics. Failures fall back to synthetic data.
func (p *Provider) Happiness(ctx context.Context) *models.Dataset {
	table, source, err := p.acquire(ctx, HappinessFileName)
	if err == nil {
		var normalized *models.Table
		normalized, err = normalizeHappinessTable(table)
		if err == nil {
			logger.Infof("Loaded happiness data: %d records", normalized.NumRows())
			return &models.Dataset{
				Kind:       models.KindHappiness,
				Origin:     models.OriginReal,
				Table:      normalized,
				SourcePath: source,
				LoadedAt:   time.Now(),
			}
		}
	}

	logger.Warnf("Happiness data unavailable (%v), generating synthetic data", err)
	return p.synthesize(datagen.HappinessGenerator{})
}

// University loads the enrollment history file as-is, falling back to
// synthetic data when it cannot be read.
func (p *Provider) University(ctx context.Context) *models.Dataset {
	table, source, err := p.acquire(ctx, UniversityFileName)
	if err == nil {
		logger.Infof("Loaded university data: %d records", table.NumRows())
		return &models.Dataset{
			Kind:       models.KindEnrollment,
			Origin:     models.OriginReal,
			Table:      table,
			SourcePath: source,
			LoadedAt:   time.Now(),
		}
	}

	logger.Warnf("University data unavailable (%v), generating synthetic data", err)
	return p.synthesize(datagen.EnrollmentGenerator{})
}

// Flights produces route data for a hub airport. There is no real flight
// feed, so the result is always synthetic; unknown hubs yield an empty
// table.
func (p *Provider) Flights(hub string) *models.Dataset {
	return p.synthesize(datagen.FlightGenerator{Hub: hub})
}

// acquire resolves a data file, remote first when a base URL is
// configured, then from the local data directory.
func (p *Provider) acquire(ctx context.Context, filename string) (*models.Table, string, error) {
	if p.BaseURL != "" {
		url := strings.TrimRight(p.BaseURL, "/") + "/" + filename
		table, err := p.fetcher.FetchCSV(ctx, url)
		if err == nil {
			return table, url, nil
		}
		logger.Warnf("Remote fetch of %s failed: %v", filename, err)
	}

	path := filepath.Join(p.DataDir, filename)
	table, err := ReadCSVFile(path)
	if err != nil {
		return nil, "", err
	}
	return table, path, nil
}

func (p *Provider) synthesize(gen datagen.DataGenerator) *models.Dataset {
	table, err := gen.Generate(datagen.NewRand(gen.Seed()))
	if err != nil {
		logger.Errorf("Synthetic generation failed for %s: %v", gen.Kind(), err)
		table = models.NewTable(nil)
	}
	return &models.Dataset{
		Kind:     gen.Kind(),
		Origin:   models.OriginSynthetic,
		Table:    table,
		LoadedAt: time.Now(),
	}
}

// normalizeHappinessTable renames the raw report columns to canonical
// names, removes "xx" placeholder rows and normalizes numeric cells that
// use decimal commas.
func normalizeHappinessTable(t *models.Table) (*models.Table, error) {
	if t.NumCols() != len(happinessRawColumns) {
		return nil, fmt.Errorf("unexpected happiness column count: got %d, want %d",
			t.NumCols(), len(happinessRawColumns))
	}

	const countryIdx = 1
	out := models.NewTable(append([]string(nil), happinessRawColumns...))
	for _, row := range t.Rows {
		if row[countryIdx] == "xx" {
			continue
		}
		record := make([]string, len(row))
		for i, cell := range row {
			if i == countryIdx {
				record[i] = cell
				continue
			}
			record[i] = normalizeDecimal(cell, i == 0)
		}
		out.AppendRow(record)
	}
	return out, nil
}

// normalizeDecimal converts decimal-comma numerics to canonical float
// text. Unparseable cells stay untouched unless coerce is set, in which
// case they become empty.
func normalizeDecimal(cell string, coerce bool) string {
	s := strings.TrimSpace(strings.ReplaceAll(cell, ",", "."))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if coerce {
			return ""
		}
		return cell
	}
	return models.FormatFloat(f)
}
