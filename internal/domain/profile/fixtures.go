package profile

import (
	"time"

	"orgsynth/internal/domain/org"
)

// Fixed review cycles, registered before any employee.
const (
	Cycle2023Annual = "rc-2023-annual"
	Cycle2024Annual = "rc-2024-annual"
	Cycle2025Q2     = "rc-2025-q2"
)

func Cycles() []org.ReviewCycle {
	return []org.ReviewCycle{
		{
			ID: Cycle2023Annual, Name: "2023 Annual Review", Type: org.CycleTypeAnnual,
			StartDate: day(2023, 1, 1), EndDate: day(2023, 12, 31), Status: org.CycleStatusClosed,
		},
		{
			ID: Cycle2024Annual, Name: "2024 Annual Review", Type: org.CycleTypeAnnual,
			StartDate: day(2024, 1, 1), EndDate: day(2024, 12, 31), Status: org.CycleStatusClosed,
		},
		{
			ID: Cycle2025Q2, Name: "Q2 2025 Review", Type: org.CycleTypeQuarterly,
			StartDate: day(2025, 4, 1), EndDate: day(2025, 6, 30), Status: org.CycleStatusClosed,
		},
	}
}

// Defaults returns the ten named individuals whose metrics trace the
// documented demo narratives. Emails are built on the configured company
// domain so they land in the same address space as generated employees.
func Defaults(domain string) *Table {
	wilsonExit := day(2025, 2, 15)

	return NewTable([]Profile{
		{
			// Solid senior engineer whose engagement erodes under a
			// struggling manager: survey scores pinned at 9, 7, 6.
			FullName: "Sarah Chen", Email: "sarah.chen@" + domain,
			Department: "Engineering", JobTitle: "Senior Software Engineer",
			Gender: "female", Ethnicity: "asian", WorkState: "CA",
			HireDate: day(2021, 2, 8), Status: org.StatusActive,
			ManagerEmail: "david.kim@" + domain,
			Ratings: map[string]RatingRule{
				Cycle2023Annual: {Band: BandExceeds},
				Cycle2024Annual: {Band: BandExceeds},
				Cycle2025Q2:     {Band: BandMeets},
			},
			EnpsScores: []int{9, 7, 6},
			EnpsFeedback: []string{
				"Great team and meaningful work. I'd recommend this place to anyone.",
				"Still enjoy the work, but priorities keep shifting and it is wearing on the team.",
				"Morale on our team has dropped noticeably. Leadership should talk to us.",
			},
		},
		{
			// Sustained underperformer: below 2.5 in both annual cycles,
			// between 2.5 and 2.9 in the most recent quarter.
			FullName: "Marcus Johnson", Email: "marcus.johnson@" + domain,
			Department: "Sales", JobTitle: "Account Executive",
			Gender: "male", Ethnicity: "black", WorkState: "TX",
			HireDate: day(2020, 6, 1), Status: org.StatusActive,
			ManagerEmail: "lisa.thompson@" + domain,
			Ratings: map[string]RatingRule{
				Cycle2023Annual: {Band: BandUnsatisfactory, Min: 1.8, Max: 2.3},
				Cycle2024Annual: {Band: BandDeveloping, Min: 2.0, Max: 2.4},
				Cycle2025Q2:     {Band: BandDeveloping, Min: 2.5, Max: 2.9},
			},
			EnpsPattern: PatternStableLow,
		},
		{
			// Consistent top performer, never below 4.5.
			FullName: "Emily Rodriguez", Email: "emily.rodriguez@" + domain,
			Department: "Engineering", JobTitle: "Staff Software Engineer",
			Gender: "female", Ethnicity: "hispanic", WorkState: "WA",
			HireDate: day(2017, 9, 18), Status: org.StatusActive,
			ReportsToHead: true,
			Ratings: map[string]RatingRule{
				Cycle2023Annual: {Band: BandExceptional, Min: 4.5, Max: 5.0},
				Cycle2024Annual: {Band: BandExceptional, Min: 4.5, Max: 5.0},
				Cycle2025Q2:     {Band: BandExceptional, Min: 4.5, Max: 5.0},
			},
			EnpsPattern: PatternStableHigh,
		},
		{
			// Manager whose team's survey scores are forced low; his own
			// performance reads fine, which is exactly the point of the demo.
			FullName: "David Kim", Email: "david.kim@" + domain,
			Department: "Engineering", JobTitle: "Engineering Manager",
			Gender: "male", Ethnicity: "asian", WorkState: "CA",
			HireDate: day(2019, 3, 11), Status: org.StatusActive,
			IsManager: true,
			Ratings: map[string]RatingRule{
				Cycle2023Annual: {Band: BandMeets},
				Cycle2024Annual: {Band: BandMeets},
				Cycle2025Q2:     {Band: BandMeets},
			},
			EnpsPattern:     PatternStableMid,
			TeamEnpsPattern: PatternManagerDrivenLow,
		},
		{
			// Recent hire, only around for the two most recent cycles.
			FullName: "Priya Patel", Email: "priya.patel@" + domain,
			Department: "Marketing", JobTitle: "Marketing Specialist",
			Gender: "female", Ethnicity: "asian", WorkState: "NY",
			HireDate: day(2024, 11, 4), Status: org.StatusActive,
			EligibleCycles: []string{Cycle2024Annual, Cycle2025Q2},
			Ratings: map[string]RatingRule{
				Cycle2024Annual: {Band: BandMeets},
				Cycle2025Q2:     {Band: BandMeets},
			},
			EnpsPattern: PatternImproving,
		},
		{
			// Departed mid-February; no review for the quarter after exit.
			FullName: "James Wilson", Email: "james.wilson@" + domain,
			Department: "Sales", JobTitle: "Sales Development Representative",
			Gender: "male", Ethnicity: "white", WorkState: "CO",
			HireDate: day(2022, 1, 10), Status: org.StatusTerminated,
			TerminationDate: &wilsonExit, TerminationReason: "voluntary",
			ManagerEmail:   "lisa.thompson@" + domain,
			ExcludedCycles: []string{Cycle2025Q2},
			Ratings: map[string]RatingRule{
				Cycle2023Annual: {Band: BandDeveloping},
				Cycle2024Annual: {Band: BandDeveloping},
			},
			EnpsPattern: PatternStableLow,
		},
		{
			FullName: "Lisa Thompson", Email: "lisa.thompson@" + domain,
			Department: "Sales", JobTitle: "Sales Manager",
			Gender: "female", Ethnicity: "white", WorkState: "IL",
			HireDate: day(2018, 7, 23), Status: org.StatusActive,
			IsManager: true,
			Ratings: map[string]RatingRule{
				Cycle2023Annual: {Band: BandExceeds},
				Cycle2024Annual: {Band: BandExceeds},
				Cycle2025Q2:     {Band: BandExceeds},
			},
			EnpsPattern: PatternStableHigh,
		},
		{
			FullName: "Robert Garcia", Email: "robert.garcia@" + domain,
			Department: "Customer Success", JobTitle: "Senior Customer Success Associate",
			Gender: "male", Ethnicity: "hispanic", WorkState: "AZ",
			HireDate: day(2019, 10, 7), Status: org.StatusLeave,
			Ratings: map[string]RatingRule{
				Cycle2023Annual: {Band: BandMeets},
				Cycle2024Annual: {Band: BandMeets},
				Cycle2025Q2:     {Band: BandMeets},
			},
			EnpsPattern: PatternStableMid,
		},
		{
			// Turnaround story: developing, then meets, then exceeds.
			FullName: "Amanda Foster", Email: "amanda.foster@" + domain,
			Department: "Customer Success", JobTitle: "Customer Success Associate",
			Gender: "female", Ethnicity: "white", WorkState: "GA",
			HireDate: day(2023, 3, 20), Status: org.StatusActive,
			Ratings: map[string]RatingRule{
				Cycle2023Annual: {Band: BandDeveloping},
				Cycle2024Annual: {Band: BandMeets},
				Cycle2025Q2:     {Band: BandExceeds},
			},
			EnpsPattern: PatternImproving,
		},
		{
			FullName: "Tom Nakamura", Email: "tom.nakamura@" + domain,
			Department: "Finance", JobTitle: "Financial Analyst",
			Gender: "male", Ethnicity: "asian", WorkState: "OR",
			HireDate: day(2021, 8, 16), Status: org.StatusActive,
			Ratings: map[string]RatingRule{
				Cycle2023Annual: {Band: BandMeets},
				Cycle2024Annual: {Band: BandMeets},
				Cycle2025Q2:     {Band: BandMeets},
			},
			EnpsPattern: PatternStableMid,
		},
	})
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
