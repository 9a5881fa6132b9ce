package performance

import "time"

type Rating struct {
	ID               string    `json:"id"`
	EmployeeID       string    `json:"employeeId"`
	ReviewCycleID    string    `json:"reviewCycleId"`
	ReviewerID       string    `json:"reviewerId"`
	OverallRating    float64   `json:"overallRating"`
	GoalsRating      float64   `json:"goalsRating"`
	CompetencyRating float64   `json:"competencyRating"`
	SubmittedAt      time.Time `json:"submittedAt"`
}

// Review is the narrative record paired with a Rating: same (employee,
// cycle) pair, same submission date.
type Review struct {
	ID                  string    `json:"id"`
	EmployeeID          string    `json:"employeeId"`
	ReviewCycleID       string    `json:"reviewCycleId"`
	ReviewerID          string    `json:"reviewerId"`
	Strengths           string    `json:"strengths"`
	AreasForImprovement string    `json:"areasForImprovement"`
	Accomplishments     string    `json:"accomplishments"`
	ManagerComment      string    `json:"managerComment"`
	SubmittedAt         time.Time `json:"submittedAt"`
}
