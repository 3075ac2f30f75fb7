package fs

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCoalescesBursts(t *testing.T) {
	d := newDebouncer(30 * time.Millisecond)

	var calls, last atomic.Int32
	for i := 1; i <= 5; i++ {
		n := int32(i)
		d.add(func() {
			calls.Add(1)
			last.Store(n)
		})
	}

	time.Sleep(150 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected 1 call, got %d", got)
	}
	if got := last.Load(); got != 5 {
		t.Errorf("expected the last callback to win, got %d", got)
	}
}

func TestDebouncerStopDropsPending(t *testing.T) {
	d := newDebouncer(50 * time.Millisecond)

	var calls atomic.Int32
	d.add(func() { calls.Add(1) })

	if !d.stopAndWait(time.Second) {
		t.Fatal("stopAndWait timed out")
	}
	d.add(func() { calls.Add(1) })

	time.Sleep(100 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("expected no calls after stop, got %d", got)
	}
}

func TestSourceMatches(t *testing.T) {
	src := NewSource(Config{Path: "/catalog"})

	tests := []struct {
		path string
		want bool
	}{
		{"/catalog/page-0.json", true},
		{"/catalog/a/b/page.yml", true},
		{"/catalog/notes.txt", false},
		{"/elsewhere/page.json", false},
		{"/catalog/all" + MergedSuffix, false},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			if got := src.matches(tc.path); got != tc.want {
				t.Errorf("matches(%q) = %v, want %v", tc.path, got, tc.want)
			}
		})
	}
}
