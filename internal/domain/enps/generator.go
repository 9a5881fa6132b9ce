package enps

import (
	"math"

	"orgsynth/internal/domain/org"
	"orgsynth/internal/domain/profile"
	"orgsynth/internal/platform/identity"
	"orgsynth/internal/platform/sampler"
)

const (
	participationRate = 0.85
	feedbackRate      = 0.6
)

// Pattern distribution for employees without a pinned policy.
var patternWeights = []sampler.WeightedChoice{
	{Value: profile.PatternStableHigh, Weight: 25},
	{Value: profile.PatternStableMid, Weight: 30},
	{Value: profile.PatternStableLow, Weight: 10},
	{Value: profile.PatternDeclining, Weight: 15},
	{Value: profile.PatternImproving, Weight: 20},
}

// Generator emits survey responses over a frozen registry. Each employee is
// assigned one behavioral pattern on first encounter and keeps it for all
// three surveys, so a person's trajectory stays coherent instead of being
// re-rolled per survey.
type Generator struct {
	reg      *org.Registry
	profiles *profile.Table
	rng      *sampler.Sampler
	patterns map[string]string
}

func NewGenerator(reg *org.Registry, profiles *profile.Table, rng *sampler.Sampler) *Generator {
	return &Generator{reg: reg, profiles: profiles, rng: rng, patterns: map[string]string{}}
}

func (g *Generator) Generate() []Response {
	var out []Response
	surveys := Surveys()

	for _, e := range g.reg.All() {
		if e.IsRoot() {
			continue
		}
		prof, named := g.profiles.ByEmail(e.Email)
		for idx, s := range surveys {
			if !e.ActiveAsOf(s.Date) {
				continue
			}
			// Named individuals always respond; everyone else at a high
			// fixed rate.
			if !named && g.rng.Float64() >= participationRate {
				continue
			}
			pattern := g.patternFor(e, prof, named)
			score := g.score(prof, named, pattern, idx)
			out = append(out, Response{
				ID:           identity.PairID(e.ID, s.Name),
				EmployeeID:   e.ID,
				SurveyName:   s.Name,
				SurveyDate:   s.Date,
				Score:        score,
				FeedbackText: g.feedback(prof, named, pattern, idx, score),
			})
		}
	}
	return out
}

// patternFor memoizes one pattern per employee. Pinned policies win, then
// the pattern forced by a flagged manager onto their reports, then a
// weighted draw.
func (g *Generator) patternFor(e org.Employee, prof profile.Profile, named bool) string {
	if p, ok := g.patterns[e.ID]; ok {
		return p
	}
	pattern := ""
	switch {
	case named && prof.EnpsPattern != "":
		pattern = prof.EnpsPattern
	case g.forcedTeamPattern(e) != "":
		pattern = g.forcedTeamPattern(e)
	default:
		pattern = g.rng.Weighted(patternWeights)
	}
	g.patterns[e.ID] = pattern
	return pattern
}

func (g *Generator) forcedTeamPattern(e org.Employee) string {
	manager, ok := g.reg.ByID(e.ManagerID)
	if !ok {
		return ""
	}
	if pattern, ok := g.profiles.TeamPattern(manager.Email); ok {
		return pattern
	}
	return ""
}

func (g *Generator) score(prof profile.Profile, named bool, pattern string, surveyIdx int) int {
	// An exact pinned score sequence overrides every pattern.
	if named && surveyIdx < len(prof.EnpsScores) {
		return prof.EnpsScores[surveyIdx]
	}
	switch pattern {
	case profile.PatternStableHigh:
		return g.rng.IntBetween(8, 10)
	case profile.PatternStableMid:
		return g.rng.IntBetween(6, 8)
	case profile.PatternStableLow:
		return g.rng.IntBetween(2, 5)
	case profile.PatternManagerDrivenLow:
		return g.rng.IntBetween(3, 6)
	case profile.PatternDeclining:
		return trend(9.0, -1.5, surveyIdx)
	case profile.PatternImproving:
		return trend(4.0, 1.5, surveyIdx)
	default:
		return g.rng.IntBetween(6, 8)
	}
}

// trend computes base + delta*index, rounded and clamped to the 0..10 scale.
func trend(base, delta float64, surveyIdx int) int {
	v := int(math.Round(base + delta*float64(surveyIdx)))
	if v < 0 {
		return 0
	}
	if v > 10 {
		return 10
	}
	return v
}

func (g *Generator) feedback(prof profile.Profile, named bool, pattern string, surveyIdx, score int) string {
	if named && surveyIdx < len(prof.EnpsFeedback) {
		return prof.EnpsFeedback[surveyIdx]
	}
	if g.rng.Float64() >= feedbackRate {
		return ""
	}
	return g.rng.Pick(feedbackPool(tierFor(score), pattern))
}

func tierFor(score int) string {
	switch {
	case score >= 9:
		return tierPromoter
	case score >= 7:
		return tierPassive
	default:
		return tierDetractor
	}
}
