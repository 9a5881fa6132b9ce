// Package identity derives the fixed-width deterministic identifiers used
// across the generated datasets. Every identifier is a version 5 UUID hashed
// from a stable key under one private namespace, so the same key yields the
// same identifier on every run and in every phase.
package identity

import (
	"strings"

	"github.com/google/uuid"
)

var namespace = uuid.MustParse("9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d")

// EmployeeID hashes a normalized email address. Same email, same ID, always.
func EmployeeID(email string) string {
	key := strings.ToLower(strings.TrimSpace(email))
	return uuid.NewSHA1(namespace, []byte(key)).String()
}

// PairID hashes an (owner, scope) pair, e.g. an employee and a review cycle,
// making regeneration idempotent per pair.
func PairID(ownerID, scopeID string) string {
	return uuid.NewSHA1(namespace, []byte(ownerID+"|"+scopeID)).String()
}
