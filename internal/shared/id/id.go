// Package id generates identifiers for persisted records.
package id

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// New returns a fresh random (version 4) UUID in canonical string form.
func New() string {
	return uuid.NewString()
}

// IsValid reports whether s parses as a UUID.
func IsValid(s string) bool {
	if s == "" {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

var lastSeq atomic.Int64

// NextSequence returns a process-wide, strictly increasing number derived from
// the wall clock. Records store it next to created_at to break ordering ties
// between rows created within the same microsecond.
func NextSequence() int64 {
	for {
		prev := lastSeq.Load()
		next := time.Now().UnixNano()
		if next <= prev {
			next = prev + 1
		}
		if lastSeq.CompareAndSwap(prev, next) {
			return next
		}
	}
}
