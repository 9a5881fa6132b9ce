package seed

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"orgsynth/internal/domain/enps"
	"orgsynth/internal/domain/org"
	"orgsynth/internal/domain/performance"
	"orgsynth/internal/domain/profile"
	"orgsynth/internal/platform/config"
	"orgsynth/internal/platform/sampler"
	"orgsynth/internal/platform/snapshot"
	"orgsynth/internal/report"
)

// Output files consumed by the downstream import adapter: flat record
// arrays with explicit foreign-key fields, one record per logical row.
const (
	EmployeesFile = "employees.json"
	CyclesFile    = "review_cycles.json"
	RatingsFile   = "ratings.json"
	ReviewsFile   = "reviews.json"
	ResponsesFile = "enps_responses.json"
	SummaryFile   = "summary.pdf"
)

// RunPhase1 generates the review cycles and the employee hierarchy, then
// persists the registry snapshot and the first two dataset files. Any error
// aborts before the snapshot is replaced, so a later phase never reads a
// partially built registry.
func RunPhase1(cfg config.Config) error {
	reg := org.NewRegistry()
	for _, c := range profile.Cycles() {
		reg.RegisterCycle(c)
	}

	table := profile.Defaults(cfg.CompanyDomain)
	builder := NewBuilder(cfg, table, sampler.New(cfg.HierarchySeed))
	if err := builder.Build(reg); err != nil {
		return err
	}

	if err := snapshot.Save(cfg.SnapshotPath(), reg.Export()); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(cfg.OutputDir, EmployeesFile), reg.All()); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(cfg.OutputDir, CyclesFile), reg.Cycles()); err != nil {
		return err
	}

	slog.Info("employee phase complete",
		"employees", reg.Count(),
		"cycles", len(reg.Cycles()),
		"snapshot", cfg.SnapshotPath())
	return nil
}

// RunPhase2 loads the phase-1 snapshot and generates the performance and
// survey datasets over the frozen registry. It fails fast when the snapshot
// is missing.
func RunPhase2(cfg config.Config) error {
	snap, err := snapshot.Load(cfg.SnapshotPath())
	if err != nil {
		return err
	}
	reg := org.FromSnapshot(snap)
	table := profile.Defaults(cfg.CompanyDomain)

	ratings, reviews := performance.NewGenerator(reg, table, sampler.New(cfg.PerformanceSeed)).Generate()
	responses := enps.NewGenerator(reg, table, sampler.New(cfg.EnpsSeed)).Generate()

	if err := writeJSON(filepath.Join(cfg.OutputDir, RatingsFile), ratings); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(cfg.OutputDir, ReviewsFile), reviews); err != nil {
		return err
	}
	if err := writeJSON(filepath.Join(cfg.OutputDir, ResponsesFile), responses); err != nil {
		return err
	}

	if cfg.ReportEnabled {
		if err := report.WriteSummary(filepath.Join(cfg.OutputDir, SummaryFile), reg, ratings, responses); err != nil {
			return err
		}
	}

	slog.Info("performance phase complete",
		"ratings", len(ratings),
		"reviews", len(reviews),
		"responses", len(responses))
	return nil
}

// RunAll runs both phases in sequence over one output directory.
func RunAll(cfg config.Config) error {
	if err := RunPhase1(cfg); err != nil {
		return err
	}
	return RunPhase2(cfg)
}

// Clean removes prior outputs and the snapshot. Missing files are fine.
func Clean(cfg config.Config) error {
	paths := []string{
		cfg.SnapshotPath(),
		filepath.Join(cfg.OutputDir, EmployeesFile),
		filepath.Join(cfg.OutputDir, CyclesFile),
		filepath.Join(cfg.OutputDir, RatingsFile),
		filepath.Join(cfg.OutputDir, ReviewsFile),
		filepath.Join(cfg.OutputDir, ResponsesFile),
		filepath.Join(cfg.OutputDir, SummaryFile),
	}
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
