package performance

import (
	"orgsynth/internal/domain/org"
	"orgsynth/internal/domain/profile"
)

// Eligible is the base predicate for generating a record for an (employee,
// cycle) pair: hired on or before the cycle end, and not terminated before
// the cycle start. A failing pair yields no record; that is an expected
// skip, not an error.
func Eligible(e org.Employee, c org.ReviewCycle) bool {
	if e.HireDate.After(c.EndDate) {
		return false
	}
	if e.Status == org.StatusTerminated && e.TerminationDate != nil && e.TerminationDate.Before(c.StartDate) {
		return false
	}
	return true
}

// profileAdmits applies a named individual's bespoke eligibility window on
// top of the base predicate.
func profileAdmits(p profile.Profile, cycleID string) bool {
	for _, excluded := range p.ExcludedCycles {
		if excluded == cycleID {
			return false
		}
	}
	if len(p.EligibleCycles) == 0 {
		return true
	}
	for _, allowed := range p.EligibleCycles {
		if allowed == cycleID {
			return true
		}
	}
	return false
}
