package reports

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/analytics"
)

// ExplorerBuilder renders standalone interactive pages, one per data
// domain, that accompany the dashboard report.
type ExplorerBuilder struct{}

// NewExplorerBuilder creates a new explorer builder
func NewExplorerBuilder() *ExplorerBuilder {
	return &ExplorerBuilder{}
}

// BuildFlightsExplorer renders the flight network explorer page
func (e *ExplorerBuilder) BuildFlightsExplorer(data *analytics.DashboardData) ([]byte, error) {
	if data == nil || data.Routes == nil {
		return nil, fmt.Errorf("no route analysis for flights explorer")
	}
	routes := data.Routes

	volumeBar := charts.NewBar()
	volumeBar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "900px",
			Height: "420px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Destination Traffic from %s", routes.Hub),
			Subtitle: "Departures per destination airport",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Destination",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Flights",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: true,
		}),
	)

	airports := make([]string, 0, len(routes.Destinations))
	volumes := make([]opts.BarData, 0, len(routes.Destinations))
	for _, dest := range routes.Destinations {
		airports = append(airports, dest.Airport)
		volumes = append(volumes, opts.BarData{Value: dest.Flights})
	}
	volumeBar.SetXAxis(airports).AddSeries("Flights", volumes)

	sharePie := charts.NewPie()
	sharePie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "900px",
			Height: "420px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Airline Market Share",
			Subtitle: fmt.Sprintf("Leading carriers at %s", routes.Hub),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      true,
			Formatter: "{b}: {c} ({d}%)",
		}),
	)

	shares := make([]opts.PieData, 0, len(routes.AirlineShares))
	for _, share := range routes.AirlineShares {
		shares = append(shares, opts.PieData{Name: share.Airline, Value: share.Flights})
	}
	sharePie.AddSeries("Airlines", shares).
		SetSeriesOptions(charts.WithPieChartOpts(opts.PieChart{Radius: "62%"}))

	periodBar := charts.NewBar()
	periodBar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "900px",
			Height: "420px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Departures by Time of Day",
			Subtitle: "Flight volume per departure period",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Period",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Flights",
		}),
	)

	periods := make([]string, 0, len(routes.TimeDistribution))
	periodCounts := make([]opts.BarData, 0, len(routes.TimeDistribution))
	for _, bin := range routes.TimeDistribution {
		periods = append(periods, bin.Period)
		periodCounts = append(periodCounts, opts.BarData{Value: bin.Flights})
	}
	periodBar.SetXAxis(periods).AddSeries("Flights", periodCounts)

	return e.renderPage(fmt.Sprintf("Flight Explorer - %s", routes.Hub), volumeBar, sharePie, periodBar)
}

// BuildEnrollmentExplorer renders the enrollment explorer page
func (e *ExplorerBuilder) BuildEnrollmentExplorer(data *analytics.DashboardData) ([]byte, error) {
	if data == nil || data.EnrollmentStats == nil {
		return nil, fmt.Errorf("no enrollment analysis for enrollment explorer")
	}
	stats := data.EnrollmentStats

	trendLine := charts.NewLine()
	trendLine.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "900px",
			Height: "420px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Enrollment Trends",
			Subtitle: "Applications, admissions and enrollment per year",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Year",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Students",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: true,
		}),
	)

	years := make([]string, 0, len(stats.Years))
	applications := make([]opts.LineData, 0, len(stats.Years))
	admitted := make([]opts.LineData, 0, len(stats.Years))
	enrolled := make([]opts.LineData, 0, len(stats.Years))
	for _, year := range stats.Years {
		years = append(years, strconv.Itoa(year.Year))
		applications = append(applications, opts.LineData{Value: year.Applications})
		admitted = append(admitted, opts.LineData{Value: year.Admitted})
		enrolled = append(enrolled, opts.LineData{Value: year.Enrolled})
	}

	trendLine.SetXAxis(years).
		AddSeries("Applications", applications).
		AddSeries("Admitted", admitted).
		AddSeries("Enrolled", enrolled).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: true}))

	departmentBar := charts.NewBar()
	departmentBar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "900px",
			Height: "420px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Enrollment by Department",
			Subtitle: "Cumulative enrolled students",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Department",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Students",
		}),
	)

	departments := make([]string, 0, len(stats.Departments))
	departmentCounts := make([]opts.BarData, 0, len(stats.Departments))
	for _, dept := range stats.Departments {
		departments = append(departments, dept.Department)
		departmentCounts = append(departmentCounts, opts.BarData{Value: dept.Enrolled})
	}
	departmentBar.SetXAxis(departments).AddSeries("Enrolled", departmentCounts)

	return e.renderPage("Enrollment Explorer", trendLine, departmentBar)
}

// BuildHappinessExplorer renders the happiness explorer page
func (e *ExplorerBuilder) BuildHappinessExplorer(data *analytics.DashboardData) ([]byte, error) {
	if data == nil || data.HappinessStats == nil {
		return nil, fmt.Errorf("no happiness analysis for happiness explorer")
	}
	stats := data.HappinessStats

	gdpScatter := charts.NewScatter()
	gdpScatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "900px",
			Height: "420px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "GDP vs Happiness",
			Subtitle: fmt.Sprintf("%d countries", stats.Countries),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "GDP per capita",
			Type: "value",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Happiness score",
			Type: "value",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: true,
		}),
	)

	points := make([]opts.ScatterData, 0, len(data.HappinessRecords))
	for _, record := range data.HappinessRecords {
		points = append(points, opts.ScatterData{
			Name:       record.Country,
			Value:      [2]interface{}{record.GDPPerCapita, record.HappinessScore},
			Symbol:     "circle",
			SymbolSize: 8,
		})
	}
	gdpScatter.AddSeries("Countries", points)

	pageCharts := []components.Charter{gdpScatter}

	if stats.Correlations != nil && len(stats.Correlations.Columns) > 0 {
		corrHeatmap := charts.NewHeatMap()
		corrHeatmap.SetGlobalOptions(
			charts.WithInitializationOpts(opts.Initialization{
				Theme:  types.ThemeWesteros,
				Width:  "900px",
				Height: "480px",
			}),
			charts.WithTitleOpts(opts.Title{
				Title:    "Factor Correlations",
				Subtitle: "Pearson correlation between wellbeing factors",
			}),
			charts.WithXAxisOpts(opts.XAxis{
				Type: "category",
				Data: stats.Correlations.Columns,
			}),
			charts.WithYAxisOpts(opts.YAxis{
				Type: "category",
				Data: stats.Correlations.Columns,
			}),
			charts.WithVisualMapOpts(opts.VisualMap{
				Calculable: true,
				Min:        -1,
				Max:        1,
				InRange: &opts.VisualMapInRange{
					Color: []string{"#d73027", "#ffffbf", "#1a9850"},
				},
			}),
		)

		var cells []opts.HeatMapData
		for i, row := range stats.Correlations.Values {
			for j, value := range row {
				cells = append(cells, opts.HeatMapData{
					Value: [3]interface{}{j, i, roundCorrelation(value)},
				})
			}
		}
		corrHeatmap.AddSeries("Correlation", cells)
		pageCharts = append(pageCharts, corrHeatmap)
	}

	if len(stats.Regions) > 0 {
		regionBar := charts.NewBar()
		regionBar.SetGlobalOptions(
			charts.WithInitializationOpts(opts.Initialization{
				Theme:  types.ThemeWesteros,
				Width:  "900px",
				Height: "420px",
			}),
			charts.WithTitleOpts(opts.Title{
				Title:    "Happiness by Region",
				Subtitle: "Mean happiness score per region",
			}),
			charts.WithXAxisOpts(opts.XAxis{
				Name: "Region",
			}),
			charts.WithYAxisOpts(opts.YAxis{
				Name: "Mean score",
			}),
		)

		regions := make([]string, 0, len(stats.Regions))
		means := make([]opts.BarData, 0, len(stats.Regions))
		for _, region := range stats.Regions {
			regions = append(regions, region.Region)
			means = append(means, opts.BarData{Value: roundCorrelation(region.MeanScore)})
		}
		regionBar.SetXAxis(regions).AddSeries("Mean score", means)
		pageCharts = append(pageCharts, regionBar)
	}

	return e.renderPage("Happiness Explorer", pageCharts...)
}

// renderPage assembles charts into a single flex-layout page
func (e *ExplorerBuilder) renderPage(title string, pageCharts ...components.Charter) ([]byte, error) {
	page := components.NewPage()
	page.PageTitle = title
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(pageCharts...)

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render explorer page %q: %w", title, err)
	}
	return buf.Bytes(), nil
}

// roundCorrelation trims floats to two decimals for chart labels
func roundCorrelation(v float64) float64 {
	return math.Round(v*100) / 100
}
