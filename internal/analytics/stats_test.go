package analytics

import (
	"math"
	"testing"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/models"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestDescribe(t *testing.T) {
	stats := Describe([]float64{4, 1, 3, 2})

	if stats.Count != 4 {
		t.Errorf("Expected count 4, got %d", stats.Count)
	}
	if stats.Mean != 2.5 {
		t.Errorf("Expected mean 2.5, got %f", stats.Mean)
	}
	if stats.Min != 1 || stats.Max != 4 {
		t.Errorf("Expected range [1,4], got [%f,%f]", stats.Min, stats.Max)
	}
	if stats.P25 != 1.75 || stats.Median != 2.5 || stats.P75 != 3.25 {
		t.Errorf("Expected quartiles 1.75/2.5/3.25, got %f/%f/%f", stats.P25, stats.Median, stats.P75)
	}
	wantStd := math.Sqrt(5.0 / 3.0)
	if !almostEqual(stats.Std, wantStd, 1e-12) {
		t.Errorf("Expected std %f, got %f", wantStd, stats.Std)
	}
}

func TestDescribeEdgeCases(t *testing.T) {
	empty := Describe(nil)
	if empty.Count != 0 || empty.Mean != 0 {
		t.Errorf("Expected zero stats for empty sample, got %+v", empty)
	}

	single := Describe([]float64{7})
	if single.Count != 1 || single.Mean != 7 || single.Std != 0 {
		t.Errorf("Expected degenerate stats for single value, got %+v", single)
	}
	if single.P25 != 7 || single.Median != 7 || single.P75 != 7 {
		t.Errorf("Expected all quartiles 7, got %+v", single)
	}
}

func TestPercentile(t *testing.T) {
	sorted := []float64{10, 20, 30, 40, 50}
	tests := []struct {
		q    float64
		want float64
	}{
		{0, 10},
		{0.25, 20},
		{0.5, 30},
		{0.75, 40},
		{1, 50},
		{0.1, 14},
	}
	for _, tt := range tests {
		if got := Percentile(sorted, tt.q); !almostEqual(got, tt.want, 1e-12) {
			t.Errorf("Percentile(%g) = %f, want %f", tt.q, got, tt.want)
		}
	}
}

func TestPearson(t *testing.T) {
	r, err := Pearson([]float64{1, 2, 3, 4, 5}, []float64{2, 4, 5, 4, 5})
	if err != nil {
		t.Fatalf("Pearson returned error: %v", err)
	}
	if !almostEqual(r, 0.7745966692414834, 1e-12) {
		t.Errorf("Expected r 0.774597, got %.15f", r)
	}

	perfect, _ := Pearson([]float64{1, 2, 3}, []float64{2, 4, 6})
	if perfect != 1 {
		t.Errorf("Expected perfect correlation 1, got %f", perfect)
	}

	inverse, _ := Pearson([]float64{1, 2, 3}, []float64{6, 4, 2})
	if inverse != -1 {
		t.Errorf("Expected perfect inverse correlation -1, got %f", inverse)
	}

	constant, _ := Pearson([]float64{1, 2, 3}, []float64{5, 5, 5})
	if constant != 0 {
		t.Errorf("Expected zero correlation against constant, got %f", constant)
	}

	if _, err := Pearson([]float64{1}, []float64{1, 2}); err == nil {
		t.Error("Expected error for mismatched lengths")
	}
	if _, err := Pearson([]float64{1}, []float64{1}); err == nil {
		t.Error("Expected error for single observation")
	}
}

func TestLinregress(t *testing.T) {
	reg, err := Linregress([]float64{1, 2, 3, 4, 5}, []float64{2, 4, 5, 4, 5})
	if err != nil {
		t.Fatalf("Linregress returned error: %v", err)
	}

	if !almostEqual(reg.Slope, 0.6, 1e-12) {
		t.Errorf("Expected slope 0.6, got %.15f", reg.Slope)
	}
	if !almostEqual(reg.Intercept, 2.2, 1e-12) {
		t.Errorf("Expected intercept 2.2, got %.15f", reg.Intercept)
	}
	if !almostEqual(reg.RValue, 0.7745966692414834, 1e-12) {
		t.Errorf("Expected r 0.774597, got %.15f", reg.RValue)
	}
	if !almostEqual(reg.PValue, 0.12402706265755416, 1e-9) {
		t.Errorf("Expected p 0.124027, got %.15f", reg.PValue)
	}
	if !almostEqual(reg.StdErr, 0.28284271247461895, 1e-12) {
		t.Errorf("Expected stderr 0.282843, got %.15f", reg.StdErr)
	}

	if got := reg.Predict(10); !almostEqual(got, 8.2, 1e-12) {
		t.Errorf("Expected prediction 8.2 at x=10, got %f", got)
	}
}

func TestLinregressPerfectFit(t *testing.T) {
	reg, err := Linregress([]float64{1, 2, 3, 4}, []float64{3, 5, 7, 9})
	if err != nil {
		t.Fatalf("Linregress returned error: %v", err)
	}
	if reg.Slope != 2 || reg.Intercept != 1 {
		t.Errorf("Expected y=2x+1, got slope %f intercept %f", reg.Slope, reg.Intercept)
	}
	if reg.RValue != 1 {
		t.Errorf("Expected r 1, got %f", reg.RValue)
	}
	if reg.PValue != 0 {
		t.Errorf("Expected p 0 for perfect fit, got %f", reg.PValue)
	}
}

func TestLinregressDegenerate(t *testing.T) {
	if _, err := Linregress([]float64{2, 2, 2}, []float64{1, 2, 3}); err == nil {
		t.Error("Expected error for constant x")
	}
	if _, err := Linregress([]float64{1, 2}, []float64{1}); err == nil {
		t.Error("Expected error for mismatched lengths")
	}
	if _, err := Linregress(nil, nil); err == nil {
		t.Error("Expected error for empty samples")
	}

	two, err := Linregress([]float64{1, 2}, []float64{3, 8})
	if err != nil {
		t.Fatalf("Linregress returned error: %v", err)
	}
	if two.PValue != 1 {
		t.Errorf("Expected p 1 for two observations, got %f", two.PValue)
	}
}

func TestRegularizedIncompleteBeta(t *testing.T) {
	// The arcsine distribution is symmetric around one half.
	if got := regularizedIncompleteBeta(0.5, 0.5, 0.5); !almostEqual(got, 0.5, 1e-12) {
		t.Errorf("Expected I_0.5(0.5,0.5) = 0.5, got %.15f", got)
	}
	// I_x(1,1) is the uniform CDF.
	if got := regularizedIncompleteBeta(1, 1, 0.3); !almostEqual(got, 0.3, 1e-12) {
		t.Errorf("Expected I_0.3(1,1) = 0.3, got %.15f", got)
	}
	if got := regularizedIncompleteBeta(2, 3, 0); got != 0 {
		t.Errorf("Expected 0 at x=0, got %f", got)
	}
	if got := regularizedIncompleteBeta(2, 3, 1); got != 1 {
		t.Errorf("Expected 1 at x=1, got %f", got)
	}
}

func TestTTestPValueMonotone(t *testing.T) {
	previous := 1.0
	for _, tstat := range []float64{0.5, 1, 2, 4, 8} {
		p := tTestPValue(tstat, 10)
		if p <= 0 || p >= 1 {
			t.Errorf("p-value %f out of (0,1) for t=%f", p, tstat)
		}
		if p >= previous {
			t.Errorf("Expected p to shrink as t grows, got %f after %f", p, previous)
		}
		previous = p
	}

	if got := tTestPValue(0, 10); !almostEqual(got, 1, 1e-12) {
		t.Errorf("Expected p 1 at t=0, got %f", got)
	}
	if got := tTestPValue(math.Inf(1), 10); got != 0 {
		t.Errorf("Expected p 0 at infinite t, got %f", got)
	}

	// Two-sided: sign of t must not matter.
	if a, b := tTestPValue(2.5, 7), tTestPValue(-2.5, 7); !almostEqual(a, b, 1e-15) {
		t.Errorf("Expected symmetric p-values, got %f and %f", a, b)
	}
}

func TestCorrelations(t *testing.T) {
	table := models.NewTable([]string{"x", "y", "label"})
	table.AppendRow([]string{"1", "2", "a"})
	table.AppendRow([]string{"2", "4", "b"})
	table.AppendRow([]string{"3", "6", "c"})

	matrix := Correlations(table, []string{"x", "y"})
	if matrix.At("x", "x") != 1 || matrix.At("y", "y") != 1 {
		t.Error("Expected unit diagonal")
	}
	if got := matrix.At("x", "y"); !almostEqual(got, 1, 1e-12) {
		t.Errorf("Expected correlation 1, got %f", got)
	}
	if matrix.At("x", "y") != matrix.At("y", "x") {
		t.Error("Expected symmetric matrix")
	}
}

func TestCorrelationsPairwiseComplete(t *testing.T) {
	table := models.NewTable([]string{"x", "y"})
	table.AppendRow([]string{"1", "10"})
	table.AppendRow([]string{"2", ""})
	table.AppendRow([]string{"3", "30"})
	table.AppendRow([]string{"4", "40"})

	matrix := Correlations(table, []string{"x", "y"})
	// Rows with a missing cell drop out of that pair only.
	if got := matrix.At("x", "y"); !almostEqual(got, 1, 1e-12) {
		t.Errorf("Expected correlation 1 over complete pairs, got %f", got)
	}

	missing := Correlations(table, []string{"x", "absent"})
	if got := missing.At("x", "absent"); got != 0 {
		t.Errorf("Expected zero correlation for absent column, got %f", got)
	}
}
