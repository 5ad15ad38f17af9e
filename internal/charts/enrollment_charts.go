package charts

import (
	"fmt"
	"strconv"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/analytics"
)

// generateEnrollmentTrendSnippet builds a dual-axis ECharts line chart of
// yearly admission volumes with the admission rate on the secondary axis.
func (cg *ChartGenerator) generateEnrollmentTrendSnippet(data *analytics.DashboardData) (ChartSnippet, error) {
	if data == nil || data.EnrollmentStats == nil || len(data.EnrollmentStats.Years) == 0 {
		return ChartSnippet{}, fmt.Errorf("no enrollment analysis for trend chart")
	}
	id := "chart-enrollment-trend"

	stats := data.EnrollmentStats
	years := make([]string, 0, len(stats.Years))
	applications := make([]int, 0, len(stats.Years))
	admitted := make([]int, 0, len(stats.Years))
	enrolled := make([]int, 0, len(stats.Years))
	admissionRates := make([]float64, 0, len(stats.Years))
	for _, year := range stats.Years {
		years = append(years, strconv.Itoa(year.Year))
		applications = append(applications, year.Applications)
		admitted = append(admitted, year.Admitted)
		enrolled = append(enrolled, year.Enrolled)
		rate := 0.0
		if year.Applications > 0 {
			rate = round1(float64(year.Admitted) / float64(year.Applications) * 100)
		}
		admissionRates = append(admissionRates, rate)
	}

	option := map[string]interface{}{
		"tooltip": map[string]interface{}{"trigger": "axis"},
		"legend":  map[string]interface{}{"data": []string{"Applications", "Admitted", "Enrolled", "Admission Rate %"}, "top": "0%"},
		"grid":    map[string]interface{}{"left": "8%", "right": "8%", "bottom": "8%", "containLabel": true},
		"xAxis":   map[string]interface{}{"type": "category", "data": years},
		"yAxis": []interface{}{
			map[string]interface{}{"type": "value", "name": "Students"},
			map[string]interface{}{"type": "value", "name": "Rate %", "min": 0, "max": 100},
		},
		"series": []interface{}{
			map[string]interface{}{"name": "Applications", "type": "line", "smooth": true, "data": applications},
			map[string]interface{}{"name": "Admitted", "type": "line", "smooth": true, "data": admitted},
			map[string]interface{}{"name": "Enrolled", "type": "line", "smooth": true, "data": enrolled},
			map[string]interface{}{"name": "Admission Rate %", "type": "line", "yAxisIndex": 1, "data": admissionRates, "lineStyle": map[string]interface{}{"type": "dashed"}},
		},
	}

	return renderSnippet(id, "Enrollment Trends", 400, option)
}

// generateEnrollmentFunnelSnippet builds an ECharts bar chart of the latest
// term's admission funnel.
func (cg *ChartGenerator) generateEnrollmentFunnelSnippet(data *analytics.DashboardData) (ChartSnippet, error) {
	if data == nil || data.EnrollmentStats == nil || len(data.EnrollmentStats.Years) == 0 {
		return ChartSnippet{}, fmt.Errorf("no enrollment analysis for funnel chart")
	}
	id := "chart-enrollment-funnel"

	stats := data.EnrollmentStats
	latest := stats.Years[len(stats.Years)-1]
	stages := []string{"Applications", "Admitted", "Enrolled"}
	values := []int{latest.Applications, latest.Admitted, latest.Enrolled}
	colors := []string{"#5470c6", "#91cc75", "#fac858"}

	seriesData := make([]map[string]interface{}, 0, len(values))
	for i, v := range values {
		seriesData = append(seriesData, map[string]interface{}{
			"value":     v,
			"itemStyle": map[string]interface{}{"color": colors[i]},
		})
	}

	option := map[string]interface{}{
		"tooltip": map[string]interface{}{"trigger": "axis", "axisPointer": map[string]interface{}{"type": "shadow"}},
		"grid":    map[string]interface{}{"left": "8%", "right": "4%", "bottom": "8%", "containLabel": true},
		"xAxis":   map[string]interface{}{"type": "category", "data": stages},
		"yAxis":   map[string]interface{}{"type": "value", "name": "Students"},
		"series":  []interface{}{map[string]interface{}{"name": "Students", "type": "bar", "data": seriesData, "barWidth": "45%"}},
	}

	title := fmt.Sprintf("Admission Funnel %d %s", stats.LatestYear, stats.LatestTerm)
	return renderSnippet(id, title, 360, option)
}

// generateDepartmentSnippet builds an ECharts bar chart of cumulative
// enrollment by department.
func (cg *ChartGenerator) generateDepartmentSnippet(data *analytics.DashboardData) (ChartSnippet, error) {
	if data == nil || data.EnrollmentStats == nil || len(data.EnrollmentStats.Departments) == 0 {
		return ChartSnippet{}, fmt.Errorf("no department totals for enrollment chart")
	}
	id := "chart-department-enrollment"

	labels := make([]string, 0, len(data.EnrollmentStats.Departments))
	seriesData := make([]map[string]interface{}, 0, len(data.EnrollmentStats.Departments))
	for _, dept := range data.EnrollmentStats.Departments {
		labels = append(labels, dept.Department)
		seriesData = append(seriesData, map[string]interface{}{"value": dept.Enrolled})
	}

	option := map[string]interface{}{
		"tooltip": map[string]interface{}{"trigger": "axis", "axisPointer": map[string]interface{}{"type": "shadow"}},
		"grid":    map[string]interface{}{"left": "8%", "right": "4%", "bottom": "8%", "containLabel": true},
		"xAxis":   map[string]interface{}{"type": "category", "data": labels},
		"yAxis":   map[string]interface{}{"type": "value", "name": "Enrolled"},
		"series":  []interface{}{map[string]interface{}{"name": "Enrolled", "type": "bar", "data": seriesData, "barWidth": "40%"}},
	}

	return renderSnippet(id, "Enrollment by Department", 360, option)
}
