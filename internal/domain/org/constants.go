package org

const (
	StatusActive     = "active"
	StatusTerminated = "terminated"
	StatusLeave      = "leave"

	CycleTypeAnnual    = "annual"
	CycleTypeQuarterly = "quarterly"

	CycleStatusActive = "active"
	CycleStatusClosed = "closed"
)
