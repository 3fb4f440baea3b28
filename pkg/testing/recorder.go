// Package testing provides helpers for tests that use providermock.
//
// Import it under an alias to avoid clashing with the standard library:
//
//	import providertesting "github.com/pay-theory/providermock/pkg/testing"
package testing

import (
	"fmt"
	"strings"
)

// abort is the panic value RecordingT uses to emulate FailNow
type abort struct{}

// RecordingT is a require.TestingT that records failures instead of failing
// the enclosing test. It is meant for testing helpers built on providermock.
//
// When Abort is true, FailNow panics and Run recovers it, mirroring how
// testing.T stops the test goroutine. Otherwise FailNow only records.
type RecordingT struct {
	Abort bool

	errors   []string
	failed   bool
	cleanups []func()
}

// NewRecordingT returns a RecordingT whose FailNow aborts the running function
func NewRecordingT() *RecordingT {
	return &RecordingT{Abort: true}
}

// Errorf records a failure message
func (r *RecordingT) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
	r.failed = true
}

// FailNow marks the recorder failed and aborts when Abort is set
func (r *RecordingT) FailNow() {
	r.failed = true
	if r.Abort {
		panic(abort{})
	}
}

// Helper implements the optional helper marker
func (r *RecordingT) Helper() {}

// Cleanup queues fn for RunCleanups
func (r *RecordingT) Cleanup(fn func()) {
	r.cleanups = append(r.cleanups, fn)
}

// Run calls fn and reports whether it was aborted by FailNow
func (r *RecordingT) Run(fn func()) (aborted bool) {
	defer func() {
		if rec := recover(); rec != nil {
			if _, ok := rec.(abort); !ok {
				panic(rec)
			}
			aborted = true
		}
	}()
	fn()
	return false
}

// RunCleanups runs queued cleanups in reverse order, like testing.T, and
// reports whether any of them aborted.
func (r *RecordingT) RunCleanups() (aborted bool) {
	for i := len(r.cleanups) - 1; i >= 0; i-- {
		if r.Run(r.cleanups[i]) {
			aborted = true
		}
	}
	r.cleanups = nil
	return aborted
}

// Failed reports whether any failure was recorded
func (r *RecordingT) Failed() bool {
	return r.failed
}

// Errors returns the recorded failure messages
func (r *RecordingT) Errors() []string {
	return append([]string(nil), r.errors...)
}

// Output joins every recorded message
func (r *RecordingT) Output() string {
	return strings.Join(r.errors, "\n")
}
