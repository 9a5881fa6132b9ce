package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadUsesDefaultsWhenEnvIsEmpty(t *testing.T) {
	t.Setenv("ORGSYNTH_OUTPUT_DIR", "")
	t.Setenv("ORGSYNTH_COMPANY_SIZE", "")
	t.Setenv("ORGSYNTH_TERMINATED_TARGET", "")
	t.Setenv("ORGSYNTH_LEAVE_TARGET", "")

	cfg := Load()
	if cfg.OutputDir != "data" {
		t.Fatalf("unexpected default output dir %q", cfg.OutputDir)
	}
	if cfg.CompanySize != 100 || cfg.TerminatedTarget != 10 || cfg.LeaveTarget != 5 {
		t.Fatalf("unexpected default targets: %+v", cfg)
	}
	if len(cfg.Departments) != 6 {
		t.Fatalf("expected six default departments, got %d", len(cfg.Departments))
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default configuration must validate: %v", err)
	}
}

func TestLoadReadsEnvironmentOverrides(t *testing.T) {
	t.Setenv("ORGSYNTH_OUTPUT_DIR", "/tmp/out")
	t.Setenv("ORGSYNTH_COMPANY_SIZE", "150")
	t.Setenv("ORGSYNTH_HIERARCHY_SEED", "7")
	t.Setenv("ORGSYNTH_REPORT_ENABLED", "false")
	t.Setenv("ORGSYNTH_REFERENCE_DATE", "2026-01-01")

	cfg := Load()
	if cfg.OutputDir != "/tmp/out" || cfg.CompanySize != 150 || cfg.HierarchySeed != 7 {
		t.Fatalf("environment overrides not applied: %+v", cfg)
	}
	if cfg.ReportEnabled {
		t.Fatal("report flag override not applied")
	}
	want := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if !cfg.ReferenceDate.Equal(want) {
		t.Fatalf("reference date override not applied: %v", cfg.ReferenceDate)
	}
}

func TestLoadFallsBackOnMalformedEnvValues(t *testing.T) {
	t.Setenv("ORGSYNTH_COMPANY_SIZE", "not-a-number")
	t.Setenv("ORGSYNTH_REFERENCE_DATE", "July 2025")

	cfg := Load()
	if cfg.CompanySize != 100 {
		t.Fatalf("malformed size must fall back to default, got %d", cfg.CompanySize)
	}
	if !cfg.ReferenceDate.Equal(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("malformed date must fall back to default, got %v", cfg.ReferenceDate)
	}
}

func TestApplyFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `company_size: 120
company_domain: example.test
departments:
  - name: Engineering
    headcount: 60
    managers: 4
  - name: Sales
    headcount: 30
    managers: 2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file failed: %v", err)
	}

	cfg := Load()
	if err := cfg.ApplyFile(path); err != nil {
		t.Fatalf("apply file failed: %v", err)
	}
	if cfg.CompanySize != 120 || cfg.CompanyDomain != "example.test" {
		t.Fatalf("file settings not applied: %+v", cfg)
	}
	if len(cfg.Departments) != 2 || cfg.Departments[0].Headcount != 60 {
		t.Fatalf("department targets not replaced: %+v", cfg.Departments)
	}
	// Keys absent from the file keep their loaded values.
	if cfg.OutputDir != "data" || cfg.HierarchySeed != 42 {
		t.Fatalf("unrelated settings drifted: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("overlaid configuration must validate: %v", err)
	}
}

func TestApplyFileRejectsMissingOrBrokenFiles(t *testing.T) {
	cfg := Load()
	if err := cfg.ApplyFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("company_size: [nope"), 0o644); err != nil {
		t.Fatalf("write config file failed: %v", err)
	}
	if err := cfg.ApplyFile(path); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestValidateRejectsInconsistentTargets(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"non-positive size", func(c *Config) { c.CompanySize = 0 }},
		{"no departments", func(c *Config) { c.Departments = nil }},
		{"department too small for managers", func(c *Config) { c.Departments[0].Headcount = c.Departments[0].Managers }},
		{"targets exceed company size", func(c *Config) { c.CompanySize = 50 }},
		{"no room for active employees", func(c *Config) {
			c.TerminatedTarget = 60
			c.LeaveTarget = 40
		}},
		{"zero reference date", func(c *Config) { c.ReferenceDate = time.Time{} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Load()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}
