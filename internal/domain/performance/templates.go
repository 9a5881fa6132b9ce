package performance

import (
	"log/slog"
	"strconv"
	"strings"

	"orgsynth/internal/domain/profile"
	"orgsynth/internal/platform/sampler"
)

// Narrative templates, keyed by band for the evaluative fields and by
// department for accomplishments. Placeholder tokens in braces are filled
// from the pools below; an unknown token degrades to literal text with a
// warning and generation continues.

var strengthsByBand = map[string][]string{
	profile.BandExceptional: {
		"Consistently raises the bar for the whole team. Led {project} end to end and mentored {count} colleagues along the way.",
		"Exceptional ownership and judgment. Delivered {project} {pct}% ahead of schedule while unblocking peers across teams.",
		"Sets the technical and professional standard here. Peers routinely seek their input on {system} decisions.",
	},
	profile.BandExceeds: {
		"Strong, reliable execution. Improved {metric} by {pct}% over the period and took on work beyond their role.",
		"Goes beyond the ask more often than not. Their work on {project} landed cleanly and has held up well.",
		"Proactive collaborator who communicates early and clearly. Made measurable headway on {system}.",
	},
	profile.BandMeets: {
		"Dependable contributor who delivers what they commit to. Solid work on {project} this period.",
		"Meets expectations across the board. Handles routine {system} work without needing much oversight.",
		"Consistent and professional. Closed out {count} workstreams on schedule.",
	},
	profile.BandDeveloping: {
		"Shows genuine willingness to learn and reacts well to concrete feedback on {system} work.",
		"Has improved steadily in the second half of the period, particularly around {metric}.",
		"Brings energy to the team and asks good questions, even where execution is still maturing.",
	},
	profile.BandUnsatisfactory: {
		"Engages constructively in one-on-ones and is open about where things went off track.",
		"Understands the domain; the gap is in converting that into delivered work on {project}.",
	},
}

var improvementsByBand = map[string][]string{
	profile.BandExceptional: {
		"Could delegate more; the team needs room to grow into the problems they currently absorb.",
		"Encourage them to document decisions on {system} so their context scales beyond themselves.",
	},
	profile.BandExceeds: {
		"Occasionally takes on too much in parallel; sharper prioritization would raise impact further.",
		"Would benefit from presenting {project} outcomes to a wider audience.",
	},
	profile.BandMeets: {
		"Should push for more ownership of cross-team work rather than waiting for assignment.",
		"Estimation accuracy on {system} tasks has room to improve; aim within {pct}% of committed dates.",
		"Encourage sharing progress earlier instead of polishing in isolation.",
	},
	profile.BandDeveloping: {
		"Needs a tighter feedback loop with their manager; weekly check-ins on {project} are in place.",
		"Focus on finishing started work before picking up new threads; {count} items slipped this period.",
	},
	profile.BandUnsatisfactory: {
		"Delivery fell well short of plan; a structured improvement plan with {metric} checkpoints is required.",
		"Missed {count} committed deliverables. Expectations have been restated in writing.",
	},
}

var accomplishmentsByDepartment = map[string][]string{
	"Engineering": {
		"Shipped {count} releases of {project}, cutting {metric} by {pct}%.",
		"Reduced incident volume on {system} by {pct}% through better alerting and runbooks.",
		"Drove the {project} migration with no customer-facing downtime.",
	},
	"Sales": {
		"Closed {count} new accounts and finished at {pct}% of quota.",
		"Rebuilt the pipeline for the {project} segment, adding {count} qualified opportunities.",
	},
	"Marketing": {
		"Launched the {project} campaign, lifting {metric} by {pct}%.",
		"Produced {count} pieces of pipeline-generating content this period.",
	},
	"Customer Success": {
		"Held churn at {pct}% across a book of {count} accounts.",
		"Drove {project} adoption reviews that raised {metric} by {pct}%.",
	},
	"Finance": {
		"Closed every month within {count} business days and automated parts of the {project} workflow.",
		"Cut reporting turnaround by {pct}% after reworking {system}.",
	},
	"People Operations": {
		"Cut time-to-hire by {pct}% while supporting {count} open requisitions.",
		"Rolled out the {project} program with strong participation across departments.",
	},
}

var accomplishmentsGeneral = []string{
	"Delivered {count} planned initiatives, improving {metric} by {pct}%.",
	"Carried {project} from kickoff to completion on schedule.",
}

var managerCommentsByBand = map[string][]string{
	profile.BandExceptional: {
		"One of the strongest people in my organization. Promotion-track conversation is underway.",
		"I can hand them our hardest problems without hesitation. Keep doing exactly this.",
	},
	profile.BandExceeds: {
		"A very good period. With a little more visibility, next cycle could be an exceptional one.",
		"Trusted with ambiguous work and delivers. Glad to have them on the team.",
	},
	profile.BandMeets: {
		"Steady period, no surprises in either direction. We agreed on growth goals for next cycle.",
		"Doing the job well. The next step is stretching beyond the defined role.",
	},
	profile.BandDeveloping: {
		"We have a clear development plan and I am seeing early signs it is working.",
		"Trajectory matters more than the snapshot here; the last {count} weeks were encouraging.",
	},
	profile.BandUnsatisfactory: {
		"Performance is not where it must be. We have set explicit expectations for the next {count} weeks.",
		"A formal improvement plan is in place; the next review decides the path forward.",
	},
}

var projectPool = []string{
	"Atlas", "Beacon", "Catalyst", "Northstar", "Quicksilver", "Redwood", "Summit", "Vantage",
}

var systemPool = []string{
	"the billing pipeline", "the onboarding flow", "the reporting stack",
	"the customer portal", "the data warehouse", "the internal tooling",
}

var metricPool = []string{
	"cycle time", "conversion rate", "response latency", "retention",
	"forecast accuracy", "ticket backlog",
}

func accomplishmentsFor(department string) []string {
	if pool, ok := accomplishmentsByDepartment[department]; ok {
		return pool
	}
	return accomplishmentsGeneral
}

var tokenFillers = map[string]func(*sampler.Sampler) string{
	"pct":     func(s *sampler.Sampler) string { return strconv.Itoa(s.IntBetween(5, 40)) },
	"count":   func(s *sampler.Sampler) string { return strconv.Itoa(s.IntBetween(2, 12)) },
	"project": func(s *sampler.Sampler) string { return s.Pick(projectPool) },
	"system":  func(s *sampler.Sampler) string { return s.Pick(systemPool) },
	"metric":  func(s *sampler.Sampler) string { return s.Pick(metricPool) },
}

// fillTemplate substitutes {token} placeholders from the filler pools. A
// token without a filler is left as literal text after a warning; the run
// continues.
func fillTemplate(template string, rng *sampler.Sampler) string {
	var b strings.Builder
	rest := template
	for {
		open := strings.Index(rest, "{")
		if open < 0 {
			b.WriteString(rest)
			return b.String()
		}
		close := strings.Index(rest[open:], "}")
		if close < 0 {
			b.WriteString(rest)
			return b.String()
		}
		b.WriteString(rest[:open])
		token := rest[open+1 : open+close]
		if filler, ok := tokenFillers[token]; ok {
			b.WriteString(filler(rng))
		} else {
			slog.Warn("narrative template references unknown placeholder", "token", token)
			b.WriteString(rest[open : open+close+1])
		}
		rest = rest[open+close+1:]
	}
}
