/*
Package testing provides sequence helpers for tests.
*/
package testing

import (
	"iter"
	"strings"
	"testing"
)

// Letters returns a sequence of the single-character strings of s.
func Letters(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, r := range s {
			if !yield(string(r)) {
				return
			}
		}
	}
}

// Split returns the single-character strings of s.
func Split(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "")
}

// Reversed returns the characters of s in reverse order.
func Reversed(s string) []string {
	out := Split(s)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Take collects at most n values from seq.
func Take[V any](seq iter.Seq[V], n int) []V {
	var out []V
	if n <= 0 {
		return out
	}
	for v := range seq {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}

// Once wraps seq so that ranging over it a second time fails the test.
func Once[V any](t testing.TB, seq iter.Seq[V]) iter.Seq[V] {
	used := false
	return func(yield func(V) bool) {
		t.Helper()
		if used {
			t.Fatalf("expected sequence to be consumed once")
		}
		used = true
		for v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}

// Counting wraps seq and reports through pulled how many values were pulled.
func Counting[V any](seq iter.Seq[V], pulled *int) iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range seq {
			*pulled++
			if !yield(v) {
				return
			}
		}
	}
}
