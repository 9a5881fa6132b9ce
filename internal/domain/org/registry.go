package org

import (
	"fmt"
	"time"

	"orgsynth/internal/platform/identity"
)

// Registry is the authoritative store of one generation run's employees and
// review cycles. Registration order is preserved so every query and export
// iterates deterministically.
type Registry struct {
	employees  map[string]Employee
	emailIndex map[string]string
	order      []string
	cycles     map[string]ReviewCycle
	cycleOrder []string
}

func NewRegistry() *Registry {
	return &Registry{
		employees:  map[string]Employee{},
		emailIndex: map[string]string{},
		cycles:     map[string]ReviewCycle{},
	}
}

// Register derives the employee's id from its email and stores the record.
// A collision on the derived id or the email is a data-integrity defect and
// returns ErrDuplicateIdentity.
func (r *Registry) Register(e Employee) (Employee, error) {
	e.ID = identity.EmployeeID(e.Email)
	if _, exists := r.employees[e.ID]; exists {
		return Employee{}, fmt.Errorf("%w: id %s (email %s)", ErrDuplicateIdentity, e.ID, e.Email)
	}
	if _, exists := r.emailIndex[e.Email]; exists {
		return Employee{}, fmt.Errorf("%w: email %s", ErrDuplicateIdentity, e.Email)
	}
	r.employees[e.ID] = e
	r.emailIndex[e.Email] = e.ID
	r.order = append(r.order, e.ID)
	return e, nil
}

// RegisterCycle stores a cycle under its explicit id, replacing any previous
// registration with the same id.
func (r *Registry) RegisterCycle(c ReviewCycle) {
	if _, exists := r.cycles[c.ID]; !exists {
		r.cycleOrder = append(r.cycleOrder, c.ID)
	}
	r.cycles[c.ID] = c
}

func (r *Registry) ByID(id string) (Employee, bool) {
	e, ok := r.employees[id]
	return e, ok
}

func (r *Registry) ByEmail(email string) (Employee, bool) {
	id, ok := r.emailIndex[email]
	if !ok {
		return Employee{}, false
	}
	return r.employees[id], true
}

func (r *Registry) ByDepartment(department string) []Employee {
	var out []Employee
	for _, id := range r.order {
		if e := r.employees[id]; e.Department == department {
			out = append(out, e)
		}
	}
	return out
}

func (r *Registry) ByStatus(status string) []Employee {
	var out []Employee
	for _, id := range r.order {
		if e := r.employees[id]; e.Status == status {
			out = append(out, e)
		}
	}
	return out
}

func (r *Registry) DirectReports(managerID string) []Employee {
	var out []Employee
	for _, id := range r.order {
		if e := r.employees[id]; e.ManagerID == managerID {
			out = append(out, e)
		}
	}
	return out
}

func (r *Registry) ActiveAsOf(date time.Time) []Employee {
	var out []Employee
	for _, id := range r.order {
		if e := r.employees[id]; e.ActiveAsOf(date) {
			out = append(out, e)
		}
	}
	return out
}

// All returns every employee in registration order.
func (r *Registry) All() []Employee {
	out := make([]Employee, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.employees[id])
	}
	return out
}

func (r *Registry) Count() int {
	return len(r.order)
}

func (r *Registry) Cycle(id string) (ReviewCycle, bool) {
	c, ok := r.cycles[id]
	return c, ok
}

// Cycles returns every review cycle in registration order.
func (r *Registry) Cycles() []ReviewCycle {
	out := make([]ReviewCycle, 0, len(r.cycleOrder))
	for _, id := range r.cycleOrder {
		out = append(out, r.cycles[id])
	}
	return out
}
