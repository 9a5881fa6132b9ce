package enps

import "orgsynth/internal/domain/profile"

const (
	tierPromoter  = "promoter"
	tierPassive   = "passive"
	tierDetractor = "detractor"
)

// Feedback buckets keyed by score tier, with sharper variants for the
// patterns that carry a storyline.
var feedbackByTier = map[string][]string{
	tierPromoter: {
		"Genuinely enjoy working here. Good people, interesting problems.",
		"Leadership communicates openly and I feel my work matters.",
		"Best team I've been part of. I recommend us to former colleagues all the time.",
		"Strong culture and real growth opportunities.",
	},
	tierPassive: {
		"Mostly positive, though some processes could be smoother.",
		"Good place to work overall. Compensation could be more competitive.",
		"I like my team. Cross-department coordination needs work.",
		"Fine day to day, but the long-term direction could be clearer.",
	},
	tierDetractor: {
		"Priorities change too often and it is hard to finish anything.",
		"I don't feel heard when I raise concerns.",
		"Workload has been unsustainable for months.",
		"Growth paths here are unclear.",
	},
}

var feedbackByPattern = map[string][]string{
	profile.PatternManagerDrivenLow: {
		"My manager rarely gives useful direction and morale on the team shows it.",
		"One-on-ones keep getting cancelled. The team feels unsupported.",
		"The problem is local to our team, not the company.",
	},
	profile.PatternDeclining: {
		"Things have been trending the wrong way for me this year.",
		"I was more optimistic six months ago than I am now.",
	},
}

func feedbackPool(tier, pattern string) []string {
	if pool, ok := feedbackByPattern[pattern]; ok && tier == tierDetractor {
		return pool
	}
	return feedbackByTier[tier]
}
