package datagen

import (
	"math"
	"math/rand"

	"github.com/Apc0015/DataFlow-Intelligence-Platform/internal/models"
)

const (
	enrollmentStartYear = 2015
	enrollmentEndYear   = 2024
)

var enrollmentTerms = []string{"Spring", "Fall"}

// GenerateEnrollment produces one record per (year, term) pair for
// 2015-2024. Baselines grow linearly with the year offset; retention and
// satisfaction improve with a capped increment; Fall terms carry a 1.3x
// application multiplier. Bounded noise is added independently per field.
func GenerateEnrollment(rng *rand.Rand) []models.EnrollmentRecord {
	records := make([]models.EnrollmentRecord, 0,
		(enrollmentEndYear-enrollmentStartYear+1)*len(enrollmentTerms))

	for year := enrollmentStartYear; year <= enrollmentEndYear; year++ {
		offset := float64(year - enrollmentStartYear)
		baseRetention := 85 + math.Min(offset*0.8, 8)
		baseSatisfaction := 78 + math.Min(offset*1.2, 12)

		for _, term := range enrollmentTerms {
			base := 2500 + (year-enrollmentStartYear)*120
			if term == "Fall" {
				base = int(float64(base) * 1.3)
			}

			records = append(records, models.EnrollmentRecord{
				Year:                year,
				Term:                term,
				Applications:        base + intNoise(rng, -100, 100),
				Admitted:            int(float64(base)*0.65) + intNoise(rng, -50, 50),
				Enrolled:            int(float64(base)*0.28) + intNoise(rng, -30, 30),
				RetentionRate:       math.Max(75, baseRetention+float64(intNoise(rng, -3, 3))),
				StudentSatisfaction: math.Max(70, baseSatisfaction+float64(intNoise(rng, -4, 4))),
				EngineeringEnrolled: int(float64(base)*0.28*0.35) + intNoise(rng, -8, 8),
				BusinessEnrolled:    int(float64(base)*0.28*0.28) + intNoise(rng, -6, 6),
				ArtsEnrolled:        int(float64(base)*0.28*0.22) + intNoise(rng, -5, 5),
				ScienceEnrolled:     int(float64(base)*0.28*0.15) + intNoise(rng, -4, 4),
			})
		}
	}

	return records
}
