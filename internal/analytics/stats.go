package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/models"
)

// DescriptiveStats summarizes a numeric sample: count, central tendency,
// sample standard deviation and quartiles.
type DescriptiveStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	P25    float64 `json:"p25"`
	Median float64 `json:"median"`
	P75    float64 `json:"p75"`
	Max    float64 `json:"max"`
}

// Describe computes descriptive statistics for a sample. An empty sample
// yields a zero-valued result.
func Describe(values []float64) DescriptiveStats {
	if len(values) == 0 {
		return DescriptiveStats{}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	return DescriptiveStats{
		Count:  len(sorted),
		Mean:   Mean(sorted),
		Std:    SampleStd(sorted),
		Min:    sorted[0],
		P25:    Percentile(sorted, 0.25),
		Median: Percentile(sorted, 0.5),
		P75:    Percentile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}
}

// Mean returns the arithmetic mean, or 0 for an empty sample.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// SampleStd returns the sample standard deviation (n-1 denominator).
// Samples with fewer than two values yield 0.
func SampleStd(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := Mean(values)
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

// Percentile returns the q-th quantile (q in [0,1]) of an already sorted
// sample using linear interpolation between closest ranks.
func Percentile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := q * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo < 0 {
		lo = 0
	}
	if hi > len(sorted)-1 {
		hi = len(sorted) - 1
	}
	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// Pearson returns the Pearson correlation coefficient of two equal-length
// samples.
func Pearson(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("sample length mismatch: %d vs %d", len(x), len(y))
	}
	if len(x) < 2 {
		return 0, fmt.Errorf("need at least 2 observations, got %d", len(x))
	}

	mx, my := Mean(x), Mean(y)
	var sxy, sxx, syy float64
	for i := range x {
		dx, dy := x[i]-mx, y[i]-my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return 0, nil
	}
	r := sxy / math.Sqrt(sxx*syy)
	return clampUnit(r), nil
}

// CorrelationMatrix holds pairwise Pearson correlations for a set of
// columns, in the given column order.
type CorrelationMatrix struct {
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

// At returns the correlation between two columns by name, or 0 if either
// column is absent.
func (m *CorrelationMatrix) At(a, b string) float64 {
	ai, bi := -1, -1
	for i, c := range m.Columns {
		if c == a {
			ai = i
		}
		if c == b {
			bi = i
		}
	}
	if ai < 0 || bi < 0 {
		return 0
	}
	return m.Values[ai][bi]
}

// Correlations computes the pairwise correlation matrix over the named
// table columns using pairwise-complete observations. Cells that parse in
// fewer than two common rows, or with zero variance, correlate as 0.
func Correlations(t *models.Table, cols []string) *CorrelationMatrix {
	matrix := &CorrelationMatrix{
		Columns: append([]string(nil), cols...),
		Values:  make([][]float64, len(cols)),
	}

	values := make([][]float64, len(cols))
	valid := make([][]bool, len(cols))
	for i, col := range cols {
		values[i], valid[i] = t.FloatColumn(col)
	}

	for i := range cols {
		matrix.Values[i] = make([]float64, len(cols))
		for j := range cols {
			if i == j {
				matrix.Values[i][j] = 1
				continue
			}
			if j < i {
				matrix.Values[i][j] = matrix.Values[j][i]
				continue
			}
			var xs, ys []float64
			for row := 0; row < t.NumRows(); row++ {
				if valid[i] == nil || valid[j] == nil {
					break
				}
				if valid[i][row] && valid[j][row] {
					xs = append(xs, values[i][row])
					ys = append(ys, values[j][row])
				}
			}
			r, err := Pearson(xs, ys)
			if err != nil {
				r = 0
			}
			matrix.Values[i][j] = r
		}
	}
	return matrix
}

// Regression holds the result of a simple least-squares fit.
type Regression struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RValue    float64 `json:"r_value"`
	PValue    float64 `json:"p_value"`
	StdErr    float64 `json:"std_err"`
}

// Predict evaluates the fitted line at x.
func (r Regression) Predict(x float64) float64 {
	return r.Slope*x + r.Intercept
}

// Linregress fits y = slope*x + intercept by least squares and reports the
// correlation coefficient, the two-sided p-value for a slope-is-zero null
// hypothesis (Wald test with t-distribution) and the standard error of the
// slope estimate.
func Linregress(x, y []float64) (Regression, error) {
	if len(x) != len(y) {
		return Regression{}, fmt.Errorf("sample length mismatch: %d vs %d", len(x), len(y))
	}
	n := len(x)
	if n < 2 {
		return Regression{}, fmt.Errorf("need at least 2 observations, got %d", n)
	}

	mx, my := Mean(x), Mean(y)
	var sxy, sxx, syy float64
	for i := range x {
		dx, dy := x[i]-mx, y[i]-my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 {
		return Regression{}, fmt.Errorf("all x values are identical")
	}

	reg := Regression{
		Slope: sxy / sxx,
	}
	reg.Intercept = my - reg.Slope*mx
	if syy > 0 {
		reg.RValue = clampUnit(sxy / math.Sqrt(sxx*syy))
	}

	df := float64(n - 2)
	if n == 2 {
		reg.PValue = 1
		return reg, nil
	}

	denom := (1 - reg.RValue) * (1 + reg.RValue)
	if denom <= 0 {
		// Perfect fit: the slope is exact.
		reg.PValue = 0
		return reg, nil
	}

	tStat := reg.RValue * math.Sqrt(df/denom)
	reg.PValue = tTestPValue(tStat, df)
	reg.StdErr = math.Sqrt((1 - reg.RValue*reg.RValue) * syy / sxx / df)
	return reg, nil
}

// tTestPValue returns the two-sided p-value of a t statistic with df
// degrees of freedom.
func tTestPValue(t, df float64) float64 {
	if math.IsInf(t, 0) {
		return 0
	}
	x := df / (df + t*t)
	return regularizedIncompleteBeta(df/2, 0.5, x)
}

// regularizedIncompleteBeta evaluates I_x(a,b) with the continued-fraction
// expansion (Numerical Recipes 6.4).
func regularizedIncompleteBeta(a, b, x float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	lgA, _ := math.Lgamma(a)
	lgB, _ := math.Lgamma(b)
	lgAB, _ := math.Lgamma(a + b)
	front := math.Exp(lgAB - lgA - lgB + a*math.Log(x) + b*math.Log(1-x))

	if x < (a+1)/(a+b+2) {
		return front * betaContinuedFraction(a, b, x) / a
	}
	return 1 - front*betaContinuedFraction(b, a, 1-x)/b
}

func betaContinuedFraction(a, b, x float64) float64 {
	const (
		maxIterations = 200
		epsilon       = 3.0e-14
		tiny          = 1.0e-300
	)

	qab, qap, qam := a+b, a+1, a-1
	c := 1.0
	d := 1 - qab*x/qap
	if math.Abs(d) < tiny {
		d = tiny
	}
	d = 1 / d
	h := d

	for m := 1; m <= maxIterations; m++ {
		fm := float64(m)
		m2 := 2 * fm

		aa := fm * (b - fm) * x / ((qam + m2) * (a + m2))
		d = 1 + aa*d
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = 1 + aa/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d
		h *= d * c

		aa = -(a + fm) * (qab + fm) * x / ((a + m2) * (qap + m2))
		d = 1 + aa*d
		if math.Abs(d) < tiny {
			d = tiny
		}
		c = 1 + aa/c
		if math.Abs(c) < tiny {
			c = tiny
		}
		d = 1 / d
		delta := d * c
		h *= delta

		if math.Abs(delta-1) < epsilon {
			break
		}
	}
	return h
}

func clampUnit(r float64) float64 {
	if r > 1 {
		return 1
	}
	if r < -1 {
		return -1
	}
	return r
}
