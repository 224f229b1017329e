// Package testutil provides shared test helpers for the lexical package tests.
package testutil

import (
	"strings"
	"testing"
)

// ContainsSubstring checks if haystack contains needle (case-insensitive).
func ContainsSubstring(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// AssertEqualStrings fails the test unless got matches want element-wise.
func AssertEqualStrings(t *testing.T, got, want []string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("Expected %d elements, got %d\n want = %q\n got = %q",
			len(want), len(got), want, got)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Element %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

// RequireNoError is like AssertNoError but stops the test.
func RequireNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
}
