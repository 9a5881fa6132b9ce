package performance

import (
	"math"

	"orgsynth/internal/domain/org"
	"orgsynth/internal/domain/profile"
	"orgsynth/internal/platform/identity"
	"orgsynth/internal/platform/sampler"
)

// Generator emits ratings and narrative reviews for every eligible
// (employee, cycle) pair over a frozen registry. It never mutates the
// registry.
type Generator struct {
	reg      *org.Registry
	profiles *profile.Table
	rng      *sampler.Sampler
}

func NewGenerator(reg *org.Registry, profiles *profile.Table, rng *sampler.Sampler) *Generator {
	return &Generator{reg: reg, profiles: profiles, rng: rng}
}

func (g *Generator) Generate() ([]Rating, []Review) {
	var ratings []Rating
	var reviews []Review

	for _, e := range g.reg.All() {
		if e.IsRoot() {
			continue
		}
		prof, named := g.profiles.ByEmail(e.Email)
		for _, c := range g.reg.Cycles() {
			if !Eligible(e, c) {
				continue
			}
			if named && !profileAdmits(prof, c.ID) {
				continue
			}

			band, overall := g.bandAndScore(prof, named, c.ID)
			goals := jitter(overall, g.rng)
			competency := jitter(overall, g.rng)
			submitted := c.EndDate.AddDate(0, 0, -g.rng.IntBetween(0, 14))

			ratings = append(ratings, Rating{
				ID:               identity.PairID(e.ID, c.ID),
				EmployeeID:       e.ID,
				ReviewCycleID:    c.ID,
				ReviewerID:       e.ManagerID,
				OverallRating:    overall,
				GoalsRating:      goals,
				CompetencyRating: competency,
				SubmittedAt:      submitted,
			})
			reviews = append(reviews, Review{
				ID:                  identity.PairID(e.ID, "review:"+c.ID),
				EmployeeID:          e.ID,
				ReviewCycleID:       c.ID,
				ReviewerID:          e.ManagerID,
				Strengths:           g.narrative(strengthsByBand[band]),
				AreasForImprovement: g.narrative(improvementsByBand[band]),
				Accomplishments:     g.narrative(accomplishmentsFor(e.Department)),
				ManagerComment:      g.narrative(managerCommentsByBand[band]),
				SubmittedAt:         submitted,
			})
		}
	}
	return ratings, reviews
}

// bandAndScore classifies the pair into a band and samples the overall
// score. Named individuals resolve through their rating rule: the rule's
// band wins, and its Min/Max clamp the sampled range when set.
func (g *Generator) bandAndScore(prof profile.Profile, named bool, cycleID string) (string, float64) {
	if named {
		if rule, ok := prof.Ratings[cycleID]; ok {
			min, max := bandRanges[rule.Band].min, bandRanges[rule.Band].max
			if rule.Max > 0 {
				min, max = rule.Min, rule.Max
			}
			return rule.Band, round1(g.rng.FloatBetween(min, max))
		}
	}
	band := g.rng.Weighted(bandWeights)
	r := bandRanges[band]
	return band, round1(g.rng.FloatBetween(r.min, r.max))
}

func (g *Generator) narrative(pool []string) string {
	return fillTemplate(g.rng.Pick(pool), g.rng)
}

// jitter derives a sub-score as the overall score plus small symmetric
// noise, clamped to the rating scale.
func jitter(overall float64, rng *sampler.Sampler) float64 {
	return clampScore(round1(overall + rng.FloatBetween(-0.3, 0.3)))
}

func clampScore(v float64) float64 {
	return math.Min(5.0, math.Max(1.0, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
