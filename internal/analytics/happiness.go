package analytics

import (
	"fmt"
	"sort"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/models"
)

// happinessNumericColumns feed the correlation matrix.
var happinessNumericColumns = []string{
	"Happiness_score", "GDP_per_capita", "Social_support",
	"Healthy_life_expectancy", "Freedom", "Generosity", "Corruption",
}

// CountryScore pairs a country with its happiness score.
type CountryScore struct {
	Country string  `json:"country"`
	Score   float64 `json:"score"`
}

// RegionSummary averages one region's countries.
type RegionSummary struct {
	Region    string  `json:"region"`
	Countries int     `json:"countries"`
	MeanScore float64 `json:"mean_score"`
	MeanGDP   float64 `json:"mean_gdp"`
}

// HappinessAnalysis aggregates the world happiness data for the dashboard.
type HappinessAnalysis struct {
	Countries     int                `json:"countries"`
	MeanScore     float64            `json:"mean_score"`
	Top           []CountryScore     `json:"top_countries"`
	Bottom        []CountryScore     `json:"bottom_countries"`
	Regions       []RegionSummary    `json:"regions,omitempty"`
	Correlations  *CorrelationMatrix `json:"correlations"`
	GDPRegression Regression         `json:"gdp_regression"`
}

// AnalyzeHappiness computes global and regional summaries, the pairwise
// correlation matrix of the numeric wellbeing factors and the GDP-to-score
// regression. Real report files carry no region labels; the regional
// summary is empty for them.
func AnalyzeHappiness(records []models.HappinessRecord) (*HappinessAnalysis, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no happiness records to analyze")
	}

	ranked := append([]models.HappinessRecord(nil), records...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].HappinessScore > ranked[j].HappinessScore
	})

	analysis := &HappinessAnalysis{
		Countries:    len(ranked),
		Correlations: Correlations(models.HappinessTable(records), happinessNumericColumns),
	}

	var scores, gdp []float64
	for _, rec := range ranked {
		scores = append(scores, rec.HappinessScore)
		gdp = append(gdp, rec.GDPPerCapita)
	}
	analysis.MeanScore = Mean(scores)

	for i := 0; i < len(ranked) && i < 5; i++ {
		analysis.Top = append(analysis.Top, CountryScore{
			Country: ranked[i].Country,
			Score:   ranked[i].HappinessScore,
		})
	}
	for i := len(ranked) - 1; i >= 0 && len(analysis.Bottom) < 5; i-- {
		analysis.Bottom = append(analysis.Bottom, CountryScore{
			Country: ranked[i].Country,
			Score:   ranked[i].HappinessScore,
		})
	}

	type regionAgg struct {
		count    int
		scoreSum float64
		gdpSum   float64
	}
	regions := map[string]*regionAgg{}
	for _, rec := range ranked {
		if rec.Region == "" {
			continue
		}
		agg := regions[rec.Region]
		if agg == nil {
			agg = &regionAgg{}
			regions[rec.Region] = agg
		}
		agg.count++
		agg.scoreSum += rec.HappinessScore
		agg.gdpSum += rec.GDPPerCapita
	}
	for region, agg := range regions {
		analysis.Regions = append(analysis.Regions, RegionSummary{
			Region:    region,
			Countries: agg.count,
			MeanScore: agg.scoreSum / float64(agg.count),
			MeanGDP:   agg.gdpSum / float64(agg.count),
		})
	}
	sort.SliceStable(analysis.Regions, func(i, j int) bool {
		if analysis.Regions[i].MeanScore != analysis.Regions[j].MeanScore {
			return analysis.Regions[i].MeanScore > analysis.Regions[j].MeanScore
		}
		return analysis.Regions[i].Region < analysis.Regions[j].Region
	})

	reg, err := Linregress(gdp, scores)
	if err == nil {
		analysis.GDPRegression = reg
	}

	return analysis, nil
}
