// Package profile holds the data-driven override table for the fixed set of
// named individuals. Their attributes, rating trajectories, eligibility
// windows and survey behavior are defined once here and consulted uniformly
// by the hierarchy builder, the performance generator and the eNPS
// generator, so each documented narrative is testable independently of the
// generic sampling paths.
package profile

import "time"

// Performance bands, ordered best to worst.
const (
	BandExceptional    = "exceptional"
	BandExceeds        = "exceeds"
	BandMeets          = "meets"
	BandDeveloping     = "developing"
	BandUnsatisfactory = "unsatisfactory"
)

// Survey behavioral patterns. A pattern is assigned once per employee and
// drives all of that employee's survey scores.
const (
	PatternStableHigh       = "stable-high"
	PatternStableMid        = "stable-mid"
	PatternStableLow        = "stable-low"
	PatternDeclining        = "declining"
	PatternImproving        = "improving"
	PatternManagerDrivenLow = "manager-driven-low"
)

// RatingRule pins an employee's rating for one review cycle. Min/Max, when
// set, bound the sampled overall score; otherwise the band's default range
// applies.
type RatingRule struct {
	Band string
	Min  float64
	Max  float64
}

// Profile is one named individual's pinned attributes and narrative policy.
type Profile struct {
	FullName   string
	Email      string
	Department string
	JobTitle   string
	Gender     string
	Ethnicity  string
	WorkState  string
	HireDate   time.Time
	Status     string

	TerminationDate   *time.Time
	TerminationReason string

	// Hierarchy placement. Managers are substituted into the manager phase
	// and count against their department's quota. ICs attach via an explicit
	// manager email, the title-based head rule, or a sampled pick.
	IsManager     bool
	ManagerEmail  string
	ReportsToHead bool

	// Rating policy per review-cycle ID. EligibleCycles, when non-empty,
	// restricts eligibility to exactly those cycles; ExcludedCycles removes
	// cycles the base predicate would otherwise admit.
	Ratings        map[string]RatingRule
	EligibleCycles []string
	ExcludedCycles []string

	// Survey policy. Scores, when set, are the exact chronological survey
	// scores and win over any pattern. Feedback entries line up with the
	// survey order; empty strings attach no comment.
	EnpsPattern  string
	EnpsScores   []int
	EnpsFeedback []string

	// TeamEnpsPattern, when set on a manager, is forced onto every direct
	// report that has no policy of its own.
	TeamEnpsPattern string
}

// Table indexes profiles by email and keeps a stable declaration order.
type Table struct {
	byEmail map[string]Profile
	order   []string
}

func NewTable(profiles []Profile) *Table {
	t := &Table{byEmail: map[string]Profile{}}
	for _, p := range profiles {
		if _, exists := t.byEmail[p.Email]; !exists {
			t.order = append(t.order, p.Email)
		}
		t.byEmail[p.Email] = p
	}
	return t
}

func (t *Table) ByEmail(email string) (Profile, bool) {
	p, ok := t.byEmail[email]
	return p, ok
}

// All returns every profile in declaration order.
func (t *Table) All() []Profile {
	out := make([]Profile, 0, len(t.order))
	for _, email := range t.order {
		out = append(out, t.byEmail[email])
	}
	return out
}

func (t *Table) Managers() []Profile {
	var out []Profile
	for _, p := range t.All() {
		if p.IsManager {
			out = append(out, p)
		}
	}
	return out
}

func (t *Table) Contributors() []Profile {
	var out []Profile
	for _, p := range t.All() {
		if !p.IsManager {
			out = append(out, p)
		}
	}
	return out
}

// TeamPattern reports the survey pattern forced onto a manager's reports.
func (t *Table) TeamPattern(managerEmail string) (string, bool) {
	p, ok := t.byEmail[managerEmail]
	if !ok || p.TeamEnpsPattern == "" {
		return "", false
	}
	return p.TeamEnpsPattern, true
}
