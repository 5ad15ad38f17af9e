package datagen

import (
	"hash/fnv"
	"math/rand"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/models"
)

// DefaultSeed seeds the enrollment and happiness generators
const DefaultSeed int64 = 42

// DataGenerator is the single capability behind all synthetic data. One
// canonical generator exists per domain; each is a pure function of the
// explicitly passed RNG, so repeated or concurrent calls cannot interfere
// through shared seed state.
type DataGenerator interface {
	// Kind identifies the domain the generator produces
	Kind() models.DatasetKind
	// Seed returns the canonical seed for reproducing the published dataset
	Seed() int64
	// Generate produces the table. Unknown keys yield an empty table, not
	// an error; callers must check emptiness.
	Generate(rng *rand.Rand) (*models.Table, error)
}

// NewRand returns a deterministic RNG for the given seed
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// FlightSeed derives the per-hub seed from the airport code, so different
// airports yield different but individually reproducible datasets.
func FlightSeed(airportCode string) int64 {
	h := fnv.New32a()
	h.Write([]byte(airportCode))
	return int64(h.Sum32() % 1000)
}

// FlightGenerator produces synthetic route data for one hub airport
type FlightGenerator struct {
	Hub string
}

func (g FlightGenerator) Kind() models.DatasetKind { return models.KindFlights }

func (g FlightGenerator) Seed() int64 { return FlightSeed(g.Hub) }

func (g FlightGenerator) Generate(rng *rand.Rand) (*models.Table, error) {
	return models.FlightTable(GenerateFlights(rng, g.Hub)), nil
}

// EnrollmentGenerator produces synthetic university admission data
type EnrollmentGenerator struct{}

func (EnrollmentGenerator) Kind() models.DatasetKind { return models.KindEnrollment }

func (EnrollmentGenerator) Seed() int64 { return DefaultSeed }

func (EnrollmentGenerator) Generate(rng *rand.Rand) (*models.Table, error) {
	return models.EnrollmentTable(GenerateEnrollment(rng)), nil
}

// HappinessGenerator produces synthetic country happiness data
type HappinessGenerator struct{}

func (HappinessGenerator) Kind() models.DatasetKind { return models.KindHappiness }

func (HappinessGenerator) Seed() int64 { return DefaultSeed }

func (HappinessGenerator) Generate(rng *rand.Rand) (*models.Table, error) {
	return models.HappinessTable(GenerateHappiness(rng)), nil
}

// intNoise draws a uniform integer in [lo, hi). The upper bound is
// exclusive, matching the noise ranges of the published datasets.
func intNoise(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo)
}

// uniform draws a uniform float in [lo, hi)
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// weightedPick draws one item from a weighted categorical distribution
func weightedPick(rng *rand.Rand, items []string, weights []float64) string {
	var total float64
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return items[i]
		}
	}
	return items[len(items)-1]
}
