// Package report renders a one-page validation summary of a generated
// dataset. Everything here is a read-only view over the generator outputs;
// the data files never depend on it.
package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"orgsynth/internal/domain/enps"
	"orgsynth/internal/domain/org"
	"orgsynth/internal/domain/performance"
)

func WriteSummary(path string, reg *org.Registry, ratings []performance.Rating, responses []enps.Response) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Synthetic Organization Summary")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Headcount")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Total employees: %d (active %d, terminated %d, on leave %d)",
		reg.Count(),
		len(reg.ByStatus(org.StatusActive)),
		len(reg.ByStatus(org.StatusTerminated)),
		len(reg.ByStatus(org.StatusLeave))))
	pdf.Ln(6)
	for _, dept := range departments(reg) {
		pdf.Cell(0, 6, fmt.Sprintf("  %s: %d", dept, len(reg.ByDepartment(dept))))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Rating distribution")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	distribution := ratingDistribution(ratings)
	for score := 1; score <= 5; score++ {
		pdf.Cell(0, 6, fmt.Sprintf("  %d: %d ratings", score, distribution[score]))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Engagement")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	for _, s := range enps.Surveys() {
		pdf.Cell(0, 6, fmt.Sprintf("  %s: eNPS %.1f", s.Name, enps.NetScore(responses, s.Name)))
		pdf.Ln(6)
	}
	for _, line := range teamAverageLines(reg, responses) {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}

	return pdf.OutputFileAndClose(path)
}

// departments lists the distinct departments in first-seen order.
func departments(reg *org.Registry) []string {
	var out []string
	seen := map[string]bool{}
	for _, e := range reg.All() {
		if !seen[e.Department] {
			seen[e.Department] = true
			out = append(out, e.Department)
		}
	}
	return out
}

func ratingDistribution(ratings []performance.Rating) map[int]int {
	distribution := map[int]int{}
	for _, r := range ratings {
		distribution[int(r.OverallRating+0.5)]++
	}
	return distribution
}

// teamAverageLines reports the latest survey's average for every manager
// with at least three responding reports; small teams carry too little
// signal to print.
func teamAverageLines(reg *org.Registry, responses []enps.Response) []string {
	surveys := enps.Surveys()
	latest := surveys[len(surveys)-1]
	var out []string
	for _, e := range reg.All() {
		reports := reg.DirectReports(e.ID)
		if len(reports) < 3 {
			continue
		}
		avg, ok := enps.TeamAverage(reg, responses, e.ID, latest.Name)
		if !ok {
			continue
		}
		out = append(out, fmt.Sprintf("  Team %s (%s): average %.1f", e.FullName, latest.Name, avg))
	}
	return out
}
