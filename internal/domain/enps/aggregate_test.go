package enps

import (
	"testing"
	"time"

	"orgsynth/internal/domain/org"
)

func TestNetScore(t *testing.T) {
	responses := []Response{
		{SurveyName: "s", Score: 10},
		{SurveyName: "s", Score: 9},
		{SurveyName: "s", Score: 9},
		{SurveyName: "s", Score: 9},
		{SurveyName: "s", Score: 8},
		{SurveyName: "s", Score: 7},
		{SurveyName: "s", Score: 7},
		{SurveyName: "s", Score: 6},
		{SurveyName: "s", Score: 3},
		{SurveyName: "s", Score: 0},
		{SurveyName: "other", Score: 0},
	}
	// 4 promoters, 3 passives, 3 detractors of 10 respondents.
	if got := NetScore(responses, "s"); got != 10 {
		t.Fatalf("expected eNPS 10, got %v", got)
	}
}

func TestNetScoreEmptySurvey(t *testing.T) {
	if got := NetScore(nil, "s"); got != 0 {
		t.Fatalf("expected 0 for empty survey, got %v", got)
	}
}

func TestTeamAverage(t *testing.T) {
	reg := org.NewRegistry()
	hire := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	root, err := reg.Register(org.Employee{Email: "r@x.example", FullName: "R", HireDate: hire, Status: org.StatusActive})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	mgr, err := reg.Register(org.Employee{Email: "m@x.example", FullName: "M", ManagerID: root.ID, HireDate: hire, Status: org.StatusActive})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	a, _ := reg.Register(org.Employee{Email: "a@x.example", FullName: "A", ManagerID: mgr.ID, HireDate: hire, Status: org.StatusActive})
	b, _ := reg.Register(org.Employee{Email: "b@x.example", FullName: "B", ManagerID: mgr.ID, HireDate: hire, Status: org.StatusActive})

	responses := []Response{
		{EmployeeID: a.ID, SurveyName: "s", Score: 4},
		{EmployeeID: b.ID, SurveyName: "s", Score: 6},
		{EmployeeID: mgr.ID, SurveyName: "s", Score: 10},
		{EmployeeID: a.ID, SurveyName: "other", Score: 10},
	}
	avg, ok := TeamAverage(reg, responses, mgr.ID, "s")
	if !ok || avg != 5 {
		t.Fatalf("expected team average 5, got %v ok=%v", avg, ok)
	}
	if _, ok := TeamAverage(reg, responses, a.ID, "s"); ok {
		t.Fatal("expected no average for an employee without reports")
	}
}
