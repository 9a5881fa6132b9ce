package enps

import "orgsynth/internal/domain/org"

// Read-only views over generated responses, used for validation and the
// summary report. Nothing here is generator state.

// NetScore computes the eNPS for one survey: the percentage of promoters
// (9-10) minus the percentage of detractors (0-6) among respondents.
func NetScore(responses []Response, surveyName string) float64 {
	var promoters, detractors, total int
	for _, r := range responses {
		if r.SurveyName != surveyName {
			continue
		}
		total++
		switch {
		case r.Score >= 9:
			promoters++
		case r.Score <= 6:
			detractors++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(promoters-detractors) / float64(total) * 100
}

// TeamAverage computes the mean score of one manager's direct reports for
// one survey. It returns false when no report responded.
func TeamAverage(reg *org.Registry, responses []Response, managerID, surveyName string) (float64, bool) {
	reports := map[string]bool{}
	for _, e := range reg.DirectReports(managerID) {
		reports[e.ID] = true
	}
	var sum, count int
	for _, r := range responses {
		if r.SurveyName != surveyName || !reports[r.EmployeeID] {
			continue
		}
		sum += r.Score
		count++
	}
	if count == 0 {
		return 0, false
	}
	return float64(sum) / float64(count), true
}
