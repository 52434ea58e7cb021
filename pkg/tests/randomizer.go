package tests

import (
	"math/rand"
	"time"

	"housing_price/internal/domain/entity"
	"housing_price/internal/domain/value"
)

type Randomizer struct {
	Float64 func() float64
	Bool    func() bool
	Intn    func(n int) int
}

func NewRandomizer() Randomizer {
	random := rand.New(rand.NewSource(time.Now().Unix())) //nolint:gosec // for tests

	return Randomizer{
		Float64: random.Float64,
		Bool:    func() bool { return random.Intn(2) == 0 }, //nolint:mnd // skip
		Intn:    random.Intn,
	}
}

// RandomHousingInput draws every numeric field uniformly from its domain,
// hitting the bounds exactly now and then.
func RandomHousingInput(r Randomizer) entity.HousingInput {
	draw := func(d entity.Domain) float64 {
		switch r.Intn(10) { //nolint:mnd // skip
		case 0:
			return d.Min
		case 1:
			return d.Max
		default:
			return d.Min + r.Float64()*(d.Max-d.Min)
		}
	}

	labels := value.OceanProximities()

	in := entity.HousingInput{OceanProximity: labels[r.Intn(len(labels))]}

	for _, d := range entity.Domains {
		in.Set(d.Field, draw(d))
	}

	return in
}
