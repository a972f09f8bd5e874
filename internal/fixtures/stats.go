package fixtures

import (
	"math/rand"
	"time"

	"github.com/hetulpatel/athletemon/internal/models"
)

// Source is the part of *rand.Rand the stat generator uses.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// StatRange bounds one generated reading: HR in [HRBase, HRBase+HRSpan),
// temperature in [TempBase, TempBase+1).
type StatRange struct {
	HRBase   int
	HRSpan   int
	TempBase float64
}

// AthleteStatRanges are applied in order, one reading each.
var AthleteStatRanges = []StatRange{
	{HRBase: 75, HRSpan: 10, TempBase: 36},
	{HRBase: 80, HRSpan: 5, TempBase: 36.5},
}

// AthleteStats generates one Stat per AthleteStatRanges entry. Each reading is
// stamped with its own call to now.
func AthleteStats(rng Source, now func() time.Time) []models.Stat {
	stats := make([]models.Stat, 0, len(AthleteStatRanges))
	for _, r := range AthleteStatRanges {
		stats = append(stats, models.Stat{
			HR:          r.HRBase + rng.Intn(r.HRSpan),
			Temperature: r.TempBase + rng.Float64(),
			Time:        now(),
		})
	}
	return stats
}

// NewSeededRNG returns a generator seeded with seed, or with the clock if seed is 0.
// The seed actually used is returned so a run can be reproduced.
func NewSeededRNG(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
