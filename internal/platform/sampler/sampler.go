package sampler

import (
	"math/rand"
	"time"
)

// Sampler is a seeded pseudo-random stream owned by a single generator.
// Each generator gets its own instance so regenerating one dataset never
// perturbs the draws of another.
type Sampler struct {
	rng *rand.Rand
}

func New(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Reseed resets the stream. Identical seed produces an identical sequence.
func (s *Sampler) Reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

func (s *Sampler) Float64() float64 {
	return s.rng.Float64()
}

// IntBetween returns a uniform integer in [min, max], inclusive on both ends.
func (s *Sampler) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// FloatBetween returns a uniform float in [min, max).
func (s *Sampler) FloatBetween(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}

func (s *Sampler) Pick(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return items[s.rng.Intn(len(items))]
}

// DateBetween returns a uniform date in [from, to), truncated to midnight UTC.
func (s *Sampler) DateBetween(from, to time.Time) time.Time {
	days := int(to.Sub(from).Hours() / 24)
	if days <= 0 {
		return from
	}
	return from.AddDate(0, 0, s.rng.Intn(days))
}

type WeightedChoice struct {
	Value  string
	Weight float64
}

// Weighted draws one value from a weighted categorical distribution: a
// uniform draw in [0, total weight) walks the cumulative weights and the
// first bucket whose cumulative sum exceeds the draw wins. Floating-point
// edge cases fall through to the last bucket, so a value is always returned.
func (s *Sampler) Weighted(choices []WeightedChoice) string {
	if len(choices) == 0 {
		return ""
	}
	var total float64
	for _, c := range choices {
		if c.Weight > 0 {
			total += c.Weight
		}
	}
	if total <= 0 {
		return choices[len(choices)-1].Value
	}
	draw := s.rng.Float64() * total
	var cumulative float64
	for _, c := range choices {
		if c.Weight <= 0 {
			continue
		}
		cumulative += c.Weight
		if draw < cumulative {
			return c.Value
		}
	}
	return choices[len(choices)-1].Value
}
