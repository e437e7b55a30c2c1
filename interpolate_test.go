package scrollkit

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustResolve(t *testing.T, d Descriptor) resolved {
	t.Helper()
	r, err := resolve(d, testViewport())
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	return r
}

func TestUpdateMidpoint(t *testing.T) {
	r := mustResolve(t, Descriptor{
		From: "0px", To: "100px",
		Props: map[string]Property{
			"opacity": {From: "0", To: "1"},
		},
	})

	got := r.update(50, nil)
	want := []PropertyValue{{Key: "opacity", Value: "0.5"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("update(50) mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateClampsBelowAndAbove(t *testing.T) {
	r := mustResolve(t, Descriptor{
		From: "100px", To: "200px",
		Props: map[string]Property{
			"--size":  {From: "10px", To: "30px"},
			"--alpha": {From: "1", To: "0"},
		},
	})

	below := r.update(-500, nil)
	want := []PropertyValue{
		{Key: "--alpha", Value: "1"},
		{Key: "--size", Value: "10px"},
	}
	if diff := cmp.Diff(want, below); diff != "" {
		t.Errorf("below window (-want +got):\n%s", diff)
	}

	above := r.update(9999, nil)
	want = []PropertyValue{
		{Key: "--alpha", Value: "0"},
		{Key: "--size", Value: "30px"},
	}
	if diff := cmp.Diff(want, above); diff != "" {
		t.Errorf("above window (-want +got):\n%s", diff)
	}
}

func TestUpdateMonotonicWithLinearTiming(t *testing.T) {
	r := mustResolve(t, Descriptor{
		From: "0px", To: "400px",
		Props: map[string]Property{
			"--up":   {From: "0", To: "100"},
			"--down": {From: "100", To: "0"},
		},
	})

	parse := func(s string) float64 {
		b, err := ParseAbsolute(s)
		if err != nil {
			t.Fatalf("emitted value %q not parseable: %v", s, err)
		}
		return b.Value
	}

	prevDown, prevUp := 101.0, -1.0
	for scroll := 0.0; scroll <= 400; scroll += 25 {
		vals := r.update(scroll, nil)
		down, up := parse(vals[0].Value), parse(vals[1].Value)
		if up < prevUp {
			t.Fatalf("upward property decreased at scroll %f: %f < %f", scroll, up, prevUp)
		}
		if down > prevDown {
			t.Fatalf("downward property increased at scroll %f: %f > %f", scroll, down, prevDown)
		}
		prevDown, prevUp = down, up
	}
}

func TestUpdateReversedWindow(t *testing.T) {
	// to below from: progress still runs 0→100 as scroll moves from
	// 400 down to 0.
	r := mustResolve(t, Descriptor{
		From: "400px", To: "0px",
		Props: map[string]Property{
			"--x": {From: "0", To: "10"},
		},
	})

	if pct := r.progress(400); pct != 0 {
		t.Errorf("progress(400) = %f, want 0", pct)
	}
	if pct := r.progress(200); pct != 50 {
		t.Errorf("progress(200) = %f, want 50", pct)
	}
	if pct := r.progress(0); pct != 100 {
		t.Errorf("progress(0) = %f, want 100", pct)
	}
	// Beyond the from side clamps to 0.
	if pct := r.progress(500); pct != 0 {
		t.Errorf("progress(500) = %f, want 0", pct)
	}
}

func TestUpdateRoundsToTwoDecimals(t *testing.T) {
	r := mustResolve(t, Descriptor{
		From: "0px", To: "3px",
		Props: map[string]Property{
			"--t": {From: "0", To: "1"},
		},
	})

	got := r.update(1, nil)
	if got[0].Value != "0.33" {
		t.Errorf("value = %q, want \"0.33\"", got[0].Value)
	}
}

func TestUpdateNeverEmitsNegativeZero(t *testing.T) {
	// A timing curve dipping just below zero would otherwise round to -0.
	dip := func(float64) float64 { return -1e-9 }
	r := mustResolve(t, Descriptor{
		From: "0px", To: "100px",
		Props: map[string]Property{
			"--y": {From: "0px", To: "120px", TimingFunc: dip},
		},
	})

	got := r.update(50, nil)
	if got[0].Value != "0px" {
		t.Errorf("value = %q, want \"0px\"", got[0].Value)
	}
}

func TestUpdateEasedValue(t *testing.T) {
	r := mustResolve(t, Descriptor{
		From: "0px", To: "100px",
		Props: map[string]Property{
			"--q": {From: "0", To: "100", Timing: "quadIn"},
		},
	})

	// quadIn(0.5) = 0.25, so the midpoint value is a quarter of the range.
	got := r.update(50, nil)
	if got[0].Value != "25" {
		t.Errorf("value = %q, want \"25\"", got[0].Value)
	}
}

func TestUpdateAppendsToDst(t *testing.T) {
	r := mustResolve(t, Descriptor{
		From: "0px", To: "100px",
		Props: map[string]Property{
			"--a": {From: "0", To: "1"},
		},
	})

	dst := make([]PropertyValue, 0, 4)
	dst = r.update(0, dst)
	dst = r.update(100, dst)
	if len(dst) != 2 {
		t.Fatalf("len(dst) = %d, want 2", len(dst))
	}
	if dst[0].Value != "0" || dst[1].Value != "1" {
		t.Errorf("dst = %+v, want values 0 then 1", dst)
	}
}
