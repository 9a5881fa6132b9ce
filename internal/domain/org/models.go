package org

import "time"

type Employee struct {
	ID                string     `json:"id"`
	Email             string     `json:"email"`
	FullName          string     `json:"fullName"`
	Department        string     `json:"department"`
	JobTitle          string     `json:"jobTitle"`
	ManagerID         string     `json:"managerId,omitempty"`
	HireDate          time.Time  `json:"hireDate"`
	WorkState         string     `json:"workState"`
	Status            string     `json:"status"`
	Gender            string     `json:"gender,omitempty"`
	Ethnicity         string     `json:"ethnicity,omitempty"`
	TerminationDate   *time.Time `json:"terminationDate,omitempty"`
	TerminationReason string     `json:"terminationReason,omitempty"`
}

// IsRoot reports whether the employee sits at the top of the reporting tree.
func (e Employee) IsRoot() bool {
	return e.ManagerID == ""
}

// ActiveAsOf reports whether the employee was on payroll at the given date:
// hired on or before it and, if terminated, not before it.
func (e Employee) ActiveAsOf(date time.Time) bool {
	if e.HireDate.After(date) {
		return false
	}
	if e.Status == StatusTerminated && e.TerminationDate != nil && e.TerminationDate.Before(date) {
		return false
	}
	return true
}

type ReviewCycle struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Status    string    `json:"status"`
}
