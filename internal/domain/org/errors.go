package org

import "errors"

// ErrDuplicateIdentity means two registrations resolved to the same derived
// id or email. That is a generator defect, never recoverable data; callers
// abort the run.
var ErrDuplicateIdentity = errors.New("duplicate identity in registry")
