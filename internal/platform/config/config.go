package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type DepartmentTarget struct {
	Name      string `yaml:"name"`
	Headcount int    `yaml:"headcount"`
	Managers  int    `yaml:"managers"`
}

type Config struct {
	OutputDir        string             `yaml:"output_dir"`
	SnapshotFile     string             `yaml:"snapshot_file"`
	CompanyDomain    string             `yaml:"company_domain"`
	CompanySize      int                `yaml:"company_size"`
	TerminatedTarget int                `yaml:"terminated_target"`
	LeaveTarget      int                `yaml:"leave_target"`
	HierarchySeed    int64              `yaml:"hierarchy_seed"`
	PerformanceSeed  int64              `yaml:"performance_seed"`
	EnpsSeed         int64              `yaml:"enps_seed"`
	ReferenceDate    time.Time          `yaml:"reference_date"`
	ReportEnabled    bool               `yaml:"report_enabled"`
	Departments      []DepartmentTarget `yaml:"departments"`
}

func Load() Config {
	return Config{
		OutputDir:        getEnv("ORGSYNTH_OUTPUT_DIR", "data"),
		SnapshotFile:     getEnv("ORGSYNTH_SNAPSHOT_FILE", "org_snapshot.json"),
		CompanyDomain:    getEnv("ORGSYNTH_COMPANY_DOMAIN", "meridiantech.example"),
		CompanySize:      getEnvInt("ORGSYNTH_COMPANY_SIZE", 100),
		TerminatedTarget: getEnvInt("ORGSYNTH_TERMINATED_TARGET", 10),
		LeaveTarget:      getEnvInt("ORGSYNTH_LEAVE_TARGET", 5),
		HierarchySeed:    getEnvInt64("ORGSYNTH_HIERARCHY_SEED", 42),
		PerformanceSeed:  getEnvInt64("ORGSYNTH_PERFORMANCE_SEED", 4242),
		EnpsSeed:         getEnvInt64("ORGSYNTH_ENPS_SEED", 424242),
		ReferenceDate:    getEnvDate("ORGSYNTH_REFERENCE_DATE", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)),
		ReportEnabled:    getEnvBool("ORGSYNTH_REPORT_ENABLED", true),
		Departments: []DepartmentTarget{
			{Name: "Engineering", Headcount: 35, Managers: 3},
			{Name: "Sales", Headcount: 18, Managers: 2},
			{Name: "Marketing", Headcount: 12, Managers: 1},
			{Name: "Customer Success", Headcount: 15, Managers: 2},
			{Name: "Finance", Headcount: 9, Managers: 1},
			{Name: "People Operations", Headcount: 10, Managers: 1},
		},
	}
}

// ApplyFile overlays settings from a YAML file on top of the loaded defaults.
func (c *Config) ApplyFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}
	return nil
}

func (c Config) SnapshotPath() string {
	return filepath.Join(c.OutputDir, c.SnapshotFile)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt64(key string, fallback int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDate(key string, fallback time.Time) time.Time {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("ORGSYNTH_OUTPUT_DIR is required")
	}
	if c.CompanySize <= 0 {
		return fmt.Errorf("ORGSYNTH_COMPANY_SIZE must be positive")
	}
	if len(c.Departments) == 0 {
		return fmt.Errorf("at least one department target is required")
	}
	total := 1 // root
	for _, dept := range c.Departments {
		if dept.Headcount < 1+dept.Managers {
			return fmt.Errorf("department %s headcount %d cannot fit its head and %d managers", dept.Name, dept.Headcount, dept.Managers)
		}
		total += dept.Headcount
	}
	if total > c.CompanySize {
		return fmt.Errorf("department targets sum to %d which exceeds company size %d", total, c.CompanySize)
	}
	if c.TerminatedTarget+c.LeaveTarget >= c.CompanySize {
		return fmt.Errorf("terminated and leave targets must leave room for active employees")
	}
	if c.ReferenceDate.IsZero() {
		return fmt.Errorf("reference date must be set")
	}
	return nil
}
