package seed

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"orgsynth/internal/domain/org"
	"orgsynth/internal/domain/profile"
	"orgsynth/internal/platform/config"
	"orgsynth/internal/platform/sampler"
)

// Builder constructs the reporting hierarchy in six strict phases: root,
// department heads, managers, named contributors, generic fill to the
// department targets, and a global top-up. No phase references an employee
// that a later phase creates, so the tree is acyclic and root-first by
// construction.
type Builder struct {
	cfg      config.Config
	profiles *profile.Table
	rng      *sampler.Sampler

	usedEmails map[string]int
	heads      map[string]string
	managers   map[string][]string
	rrCursor   map[string]int
}

func NewBuilder(cfg config.Config, profiles *profile.Table, rng *sampler.Sampler) *Builder {
	b := &Builder{
		cfg:        cfg,
		profiles:   profiles,
		rng:        rng,
		usedEmails: map[string]int{},
		heads:      map[string]string{},
		managers:   map[string][]string{},
		rrCursor:   map[string]int{},
	}
	// Reserve the pinned addresses so generated names cannot collide with
	// a named individual registered in a later phase.
	b.reserveEmail(rootEmailLocal)
	for _, p := range profiles.All() {
		if at := strings.Index(p.Email, "@"); at > 0 {
			b.reserveEmail(p.Email[:at])
		}
	}
	return b
}

const (
	rootFullName   = "Diana Reyes"
	rootEmailLocal = "diana.reyes"
	rootTitle      = "Chief Executive Officer"
	rootDepartment = "Executive"
)

func (b *Builder) Build(reg *org.Registry) error {
	if err := b.addRoot(reg); err != nil {
		return err
	}
	if err := b.addHeads(reg); err != nil {
		return err
	}
	if err := b.addManagers(reg); err != nil {
		return err
	}
	if err := b.addNamedContributors(reg); err != nil {
		return err
	}
	if err := b.fillDepartments(reg); err != nil {
		return err
	}
	return b.topUp(reg)
}

func (b *Builder) addRoot(reg *org.Registry) error {
	_, err := reg.Register(org.Employee{
		Email:      rootEmailLocal + "@" + b.cfg.CompanyDomain,
		FullName:   rootFullName,
		Department: rootDepartment,
		JobTitle:   rootTitle,
		HireDate:   time.Date(2015, 1, 5, 0, 0, 0, 0, time.UTC),
		WorkState:  "CA",
		Status:     org.StatusActive,
	})
	return err
}

func (b *Builder) addHeads(reg *org.Registry) error {
	root, _ := reg.ByEmail(rootEmailLocal + "@" + b.cfg.CompanyDomain)
	for _, dept := range b.cfg.Departments {
		e := b.sampleEmployee(dept.Name)
		e.JobTitle = headTitleFor(dept.Name)
		e.ManagerID = root.ID
		registered, err := reg.Register(e)
		if err != nil {
			return err
		}
		b.heads[dept.Name] = registered.ID
	}
	return nil
}

// addManagers fills each department's manager quota, substituting named
// managers with their pinned attributes first and counting them against the
// quota.
func (b *Builder) addManagers(reg *org.Registry) error {
	namedByDept := map[string][]profile.Profile{}
	for _, p := range b.profiles.Managers() {
		namedByDept[p.Department] = append(namedByDept[p.Department], p)
	}

	for _, dept := range b.cfg.Departments {
		placed := 0
		for _, p := range namedByDept[dept.Name] {
			registered, err := reg.Register(b.employeeFromProfile(p, b.heads[dept.Name]))
			if err != nil {
				return err
			}
			b.managers[dept.Name] = append(b.managers[dept.Name], registered.ID)
			placed++
		}
		for ; placed < dept.Managers; placed++ {
			e := b.sampleEmployee(dept.Name)
			e.JobTitle = managerTitleFor(dept.Name)
			e.ManagerID = b.heads[dept.Name]
			registered, err := reg.Register(e)
			if err != nil {
				return err
			}
			b.managers[dept.Name] = append(b.managers[dept.Name], registered.ID)
		}
	}
	return nil
}

// addNamedContributors registers every remaining fixed-identity person with
// their exact prescribed attributes, attached to a manager by explicit
// email, by the title-based head rule, or by a pseudo-random pick among the
// department's managers.
func (b *Builder) addNamedContributors(reg *org.Registry) error {
	for _, p := range b.profiles.Contributors() {
		var managerID string
		switch {
		case p.ManagerEmail != "":
			manager, ok := reg.ByEmail(p.ManagerEmail)
			if !ok {
				return fmt.Errorf("named individual %s reports to unregistered manager %s", p.FullName, p.ManagerEmail)
			}
			managerID = manager.ID
		case p.ReportsToHead:
			managerID = b.heads[p.Department]
		default:
			managerID = b.pickManager(p.Department)
		}
		if managerID == "" {
			return fmt.Errorf("named individual %s has no manager in department %s", p.FullName, p.Department)
		}
		if _, err := reg.Register(b.employeeFromProfile(p, managerID)); err != nil {
			return err
		}
	}
	return nil
}

// fillDepartments generates the remaining headcount per department with
// sampled attributes, round-robin manager assignment, and terminated/leave
// statuses injected at computed index intervals. The interval arithmetic
// reaches the global status targets approximately, not exactly; integer
// rounding can land the totals within a couple of either target.
func (b *Builder) fillDepartments(reg *org.Registry) error {
	remaining := map[string]int{}
	totalGeneric := 0
	for _, dept := range b.cfg.Departments {
		n := dept.Headcount - len(reg.ByDepartment(dept.Name))
		if n < 0 {
			n = 0
		}
		remaining[dept.Name] = n
		totalGeneric += n
	}

	termTarget := b.cfg.TerminatedTarget - len(reg.ByStatus(org.StatusTerminated))
	leaveTarget := b.cfg.LeaveTarget - len(reg.ByStatus(org.StatusLeave))
	termInterval, leaveInterval := 0, 0
	if termTarget > 0 {
		termInterval = totalGeneric / termTarget
	}
	if leaveTarget > 0 {
		leaveInterval = totalGeneric / leaveTarget
	}

	idx := 0
	for _, dept := range b.cfg.Departments {
		for i := 0; i < remaining[dept.Name]; i++ {
			e := b.sampleEmployee(dept.Name)
			e.ManagerID = b.nextManager(dept.Name)
			switch {
			case termInterval > 1 && idx%termInterval == termInterval-1:
				b.terminate(&e)
			case leaveInterval > 1 && idx%leaveInterval == leaveInterval/4:
				e.Status = org.StatusLeave
			}
			idx++
			if _, err := reg.Register(e); err != nil {
				return err
			}
		}
	}
	return nil
}

// topUp distributes any headcount still missing against the company size
// round-robin across departments.
func (b *Builder) topUp(reg *org.Registry) error {
	if len(b.cfg.Departments) == 0 {
		return nil
	}
	for i := 0; reg.Count() < b.cfg.CompanySize; i++ {
		dept := b.cfg.Departments[i%len(b.cfg.Departments)]
		e := b.sampleEmployee(dept.Name)
		e.ManagerID = b.nextManager(dept.Name)
		if _, err := reg.Register(e); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) employeeFromProfile(p profile.Profile, managerID string) org.Employee {
	return org.Employee{
		Email:             p.Email,
		FullName:          p.FullName,
		Department:        p.Department,
		JobTitle:          p.JobTitle,
		ManagerID:         managerID,
		HireDate:          p.HireDate,
		WorkState:         p.WorkState,
		Status:            p.Status,
		Gender:            p.Gender,
		Ethnicity:         p.Ethnicity,
		TerminationDate:   p.TerminationDate,
		TerminationReason: p.TerminationReason,
	}
}

func (b *Builder) sampleEmployee(department string) org.Employee {
	first := b.rng.Pick(firstNames)
	last := b.rng.Pick(lastNames)
	hireFrom := time.Date(2015, 6, 1, 0, 0, 0, 0, time.UTC)
	hireTo := b.cfg.ReferenceDate.AddDate(0, 0, -90)
	return org.Employee{
		Email:      b.uniqueEmail(first, last),
		FullName:   first + " " + last,
		Department: department,
		JobTitle:   b.rng.Pick(contributorTitlesFor(department)),
		HireDate:   b.rng.DateBetween(hireFrom, hireTo),
		WorkState:  b.rng.Weighted(workStateChoices),
		Status:     org.StatusActive,
		Gender:     b.rng.Weighted(genderChoices),
		Ethnicity:  b.rng.Weighted(ethnicityChoices),
	}
}

// terminate marks a generated employee terminated with a date strictly
// after the hire date and never after the reference date.
func (b *Builder) terminate(e *org.Employee) {
	e.Status = org.StatusTerminated
	when := b.rng.DateBetween(e.HireDate.AddDate(0, 0, 90), b.cfg.ReferenceDate)
	e.TerminationDate = &when
	e.TerminationReason = b.rng.Pick(terminationReasons)
}

func (b *Builder) pickManager(department string) string {
	ids := b.managers[department]
	if len(ids) == 0 {
		return b.heads[department]
	}
	return ids[b.rng.IntBetween(0, len(ids)-1)]
}

func (b *Builder) nextManager(department string) string {
	ids := b.managers[department]
	if len(ids) == 0 {
		return b.heads[department]
	}
	id := ids[b.rrCursor[department]%len(ids)]
	b.rrCursor[department]++
	return id
}

func (b *Builder) reserveEmail(local string) {
	b.usedEmails[strings.ToLower(local)]++
}

// uniqueEmail builds first.last@domain, disambiguating collisions with a
// numeric suffix.
func (b *Builder) uniqueEmail(first, last string) string {
	local := strings.ToLower(first + "." + last)
	seen := b.usedEmails[local]
	b.usedEmails[local]++
	if seen > 0 {
		local += strconv.Itoa(seen + 1)
	}
	return local + "@" + b.cfg.CompanyDomain
}
