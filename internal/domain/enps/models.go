package enps

import "time"

type Response struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	SurveyName   string    `json:"surveyName"`
	SurveyDate   time.Time `json:"surveyDate"`
	Score        int       `json:"score"`
	FeedbackText string    `json:"feedbackText,omitempty"`
}

type Survey struct {
	Name string
	Date time.Time
}

// Surveys returns the three fixed pulse surveys in chronological order.
func Surveys() []Survey {
	return []Survey{
		{Name: "2024 Q3 Pulse", Date: time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC)},
		{Name: "2025 Q1 Pulse", Date: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{Name: "2025 Q2 Pulse", Date: time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC)},
	}
}
