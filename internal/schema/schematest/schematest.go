// Package schematest holds assertions shared by tests that pin response shapes.
package schematest

import (
	"testing"

	"github.com/preston-bernstein/fantasydata-client/internal/schema"
)

// AssertShape fails the test when body does not satisfy the expectation.
func AssertShape(t testing.TB, body []byte, want schema.Expectation) {
	t.Helper()
	if err := want.Validate(body); err != nil {
		if schema.IsMismatch(err) {
			t.Fatalf("response shape drifted: %v", err)
		}
		t.Fatalf("response could not be decoded: %v", err)
	}
}

// AssertMismatch fails the test unless body violates the expectation with a schema mismatch.
func AssertMismatch(t testing.TB, body []byte, want schema.Expectation) *schema.MismatchError {
	t.Helper()
	err := want.Validate(body)
	mErr, ok := schema.AsMismatch(err)
	if !ok {
		t.Fatalf("expected schema mismatch, got %v", err)
	}
	return mErr
}
