package enps

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"orgsynth/internal/domain/org"
	"orgsynth/internal/domain/profile"
	"orgsynth/internal/platform/sampler"
)

const domain = "meridiantech.example"

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func register(t *testing.T, reg *org.Registry, e org.Employee) org.Employee {
	t.Helper()
	registered, err := reg.Register(e)
	if err != nil {
		t.Fatalf("register %s failed: %v", e.Email, err)
	}
	return registered
}

// fixtureRegistry holds the named individuals plus six generic engineers on
// David Kim's team and a handful elsewhere.
func fixtureRegistry(t *testing.T) *org.Registry {
	t.Helper()
	reg := org.NewRegistry()
	for _, c := range profile.Cycles() {
		reg.RegisterCycle(c)
	}

	root := register(t, reg, org.Employee{
		Email: "diana.reyes@" + domain, FullName: "Diana Reyes", Department: "Executive",
		JobTitle: "Chief Executive Officer", HireDate: date(2015, 1, 5), WorkState: "CA",
		Status: org.StatusActive,
	})

	table := profile.Defaults(domain)
	byEmail := map[string]org.Employee{}
	for _, p := range table.Managers() {
		byEmail[p.Email] = register(t, reg, org.Employee{
			Email: p.Email, FullName: p.FullName, Department: p.Department,
			JobTitle: p.JobTitle, ManagerID: root.ID, HireDate: p.HireDate,
			WorkState: p.WorkState, Status: p.Status,
		})
	}
	for _, p := range table.Contributors() {
		managerID := root.ID
		if p.ManagerEmail != "" {
			managerID = byEmail[p.ManagerEmail].ID
		}
		register(t, reg, org.Employee{
			Email: p.Email, FullName: p.FullName, Department: p.Department,
			JobTitle: p.JobTitle, ManagerID: managerID, HireDate: p.HireDate,
			WorkState: p.WorkState, Status: p.Status,
			TerminationDate: p.TerminationDate, TerminationReason: p.TerminationReason,
		})
	}

	kim := byEmail["david.kim@"+domain]
	for i := 0; i < 6; i++ {
		register(t, reg, org.Employee{
			Email:    fmt.Sprintf("kim.report%d@%s", i, domain),
			FullName: fmt.Sprintf("Kim Report %d", i), Department: "Engineering",
			JobTitle: "Software Engineer", ManagerID: kim.ID,
			HireDate: date(2022, 3, 1), WorkState: "CA", Status: org.StatusActive,
		})
	}
	lisa := byEmail["lisa.thompson@"+domain]
	for i := 0; i < 4; i++ {
		register(t, reg, org.Employee{
			Email:    fmt.Sprintf("sales.rep%d@%s", i, domain),
			FullName: fmt.Sprintf("Sales Rep %d", i), Department: "Sales",
			JobTitle: "Account Executive", ManagerID: lisa.ID,
			HireDate: date(2021, 7, 12), WorkState: "TX", Status: org.StatusActive,
		})
	}
	return reg
}

func generate(t *testing.T) (*org.Registry, []Response) {
	t.Helper()
	reg := fixtureRegistry(t)
	gen := NewGenerator(reg, profile.Defaults(domain), sampler.New(424242))
	return reg, gen.Generate()
}

func responsesFor(reg *org.Registry, responses []Response, email string) []Response {
	e, _ := reg.ByEmail(email)
	var out []Response
	for _, r := range responses {
		if r.EmployeeID == e.ID {
			out = append(out, r)
		}
	}
	return out
}

func TestSarahChenDecliningScores(t *testing.T) {
	reg, responses := generate(t)
	sarah := responsesFor(reg, responses, "sarah.chen@"+domain)
	if len(sarah) != 3 {
		t.Fatalf("expected exactly 3 responses for sarah chen, got %d", len(sarah))
	}
	want := []int{9, 7, 6}
	for i, r := range sarah {
		if r.Score != want[i] {
			t.Fatalf("survey %d: expected score %d, got %d", i, want[i], r.Score)
		}
	}
	for i := 1; i < len(sarah); i++ {
		if !sarah[i-1].SurveyDate.Before(sarah[i].SurveyDate) {
			t.Fatal("responses not in chronological order")
		}
	}
}

func TestTerminationGatesSurveys(t *testing.T) {
	reg, responses := generate(t)
	james := responsesFor(reg, responses, "james.wilson@"+domain)
	if len(james) != 2 {
		t.Fatalf("expected 2 responses for james wilson, got %d", len(james))
	}
	for _, r := range james {
		if r.SurveyName == "2025 Q2 Pulse" {
			t.Fatal("james wilson responded to a survey after his termination")
		}
	}
}

func TestManagerDrivenLowTeam(t *testing.T) {
	reg, responses := generate(t)
	kim, _ := reg.ByEmail("david.kim@" + domain)
	sarah, _ := reg.ByEmail("sarah.chen@" + domain)

	for _, r := range responses {
		e, _ := reg.ByID(r.EmployeeID)
		if e.ManagerID != kim.ID || e.ID == sarah.ID {
			continue
		}
		if r.Score < 3 || r.Score > 6 {
			t.Fatalf("forced-pattern report %s scored %d outside [3, 6]", e.Email, r.Score)
		}
	}
	for _, s := range Surveys() {
		avg, ok := TeamAverage(reg, responses, kim.ID, s.Name)
		if !ok {
			t.Fatalf("no team responses for survey %s", s.Name)
		}
		if avg > 7.5 {
			t.Fatalf("survey %s: kim team average %v not depressed", s.Name, avg)
		}
	}
}

func TestPatternIsMemoizedPerEmployee(t *testing.T) {
	reg := fixtureRegistry(t)
	gen := NewGenerator(reg, profile.Defaults(domain), sampler.New(1))
	e, _ := reg.ByEmail("sales.rep0@" + domain)
	prof, named := profile.Defaults(domain).ByEmail(e.Email)

	first := gen.patternFor(e, prof, named)
	if first == "" {
		t.Fatal("expected a pattern to be assigned")
	}
	for i := 0; i < 10; i++ {
		if got := gen.patternFor(e, prof, named); got != first {
			t.Fatalf("pattern re-rolled: %q then %q", first, got)
		}
	}
}

func TestNamedIndividualsAlwaysParticipate(t *testing.T) {
	reg, responses := generate(t)
	surveys := Surveys()
	for _, p := range profile.Defaults(domain).All() {
		e, _ := reg.ByEmail(p.Email)
		eligible := 0
		for _, s := range surveys {
			if e.ActiveAsOf(s.Date) {
				eligible++
			}
		}
		if got := len(responsesFor(reg, responses, p.Email)); got != eligible {
			t.Fatalf("%s: expected %d responses, got %d", p.FullName, eligible, got)
		}
	}
}

func TestScoresStayOnScaleAndReferenceKnownEmployees(t *testing.T) {
	reg, responses := generate(t)
	root, _ := reg.ByEmail("diana.reyes@" + domain)
	for _, r := range responses {
		if r.Score < 0 || r.Score > 10 {
			t.Fatalf("score %d outside [0, 10]", r.Score)
		}
		if r.EmployeeID == root.ID {
			t.Fatal("root must not respond to surveys")
		}
		if _, ok := reg.ByID(r.EmployeeID); !ok {
			t.Fatalf("response %s references unknown employee", r.ID)
		}
	}
}

func TestGenerationIsDeterministic(t *testing.T) {
	reg := fixtureRegistry(t)
	table := profile.Defaults(domain)
	first := NewGenerator(reg, table, sampler.New(424242)).Generate()
	second := NewGenerator(reg, table, sampler.New(424242)).Generate()
	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical seeds must produce identical responses")
	}
}

func TestTrendPatterns(t *testing.T) {
	cases := []struct {
		base, delta float64
		idx, want   int
	}{
		{9.0, -1.5, 0, 9},
		{9.0, -1.5, 2, 6},
		{4.0, 1.5, 0, 4},
		{4.0, 1.5, 2, 7},
		{1.0, -1.5, 2, 0},
		{9.0, 1.5, 2, 10},
	}
	for _, c := range cases {
		if got := trend(c.base, c.delta, c.idx); got != c.want {
			t.Fatalf("trend(%v, %v, %d) = %d, want %d", c.base, c.delta, c.idx, got, c.want)
		}
	}
}
