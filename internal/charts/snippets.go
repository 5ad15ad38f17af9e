package charts

import (
	"encoding/json"
	"fmt"
	"math"
)

// echartsCDN is the script source embedded in standalone snippet HTML.
const echartsCDN = "https://cdn.jsdelivr.net/npm/echarts@5.4.3/dist/echarts.min.js"

// ChartSnippet represents an embeddable ECharts chart fragment.
// Div contains a single root <div id="..." style="..."></div>,
// Script the <script>...</script> block that initializes the chart in that div,
// and HTML the complete snippet with CDN loader, container, div and script
// combined for template substitution.
type ChartSnippet struct {
	ID     string
	Title  string
	Div    string
	Script string
	HTML   string
	Width  string
	Height string
}

// renderSnippet marshals an ECharts option map and wraps it in the div,
// init script and standalone HTML fragments used by report templates.
func renderSnippet(id, title string, heightPx int, option map[string]interface{}) (ChartSnippet, error) {
	optJSON, err := json.Marshal(option)
	if err != nil {
		return ChartSnippet{}, fmt.Errorf("failed to marshal chart option for %s: %w", id, err)
	}

	width := "100%"
	height := fmt.Sprintf("%dpx", heightPx)
	div := fmt.Sprintf("<div id=\"%s\" style=\"width:%s;height:%s;\"></div>", id, width, height)
	script := fmt.Sprintf(`<script>(function(){var el=document.getElementById('%s');if(!el)return;var c=echarts.init(el);var option=%s;c.setOption(option);window.addEventListener('resize',function(){c.resize();});})();</script>`, id, string(optJSON))

	completeHTML := fmt.Sprintf(`<script src="%s"></script>
<div class="chart-container">
	<h3>%s</h3>
	%s
</div>
%s`, echartsCDN, title, div, script)

	return ChartSnippet{
		ID:     id,
		Title:  title,
		Div:    div,
		Script: script,
		HTML:   completeHTML,
		Width:  width,
		Height: height,
	}, nil
}

// round1 rounds to one decimal place for percentage labels.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// round2 rounds to two decimal places for correlation cells.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
