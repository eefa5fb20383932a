package simplify

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	i2stypes "image2svg/type"
)

func pts(xys ...float64) i2stypes.Path {
	p := make(i2stypes.Path, 0, len(xys)/2)
	for i := 0; i+1 < len(xys); i += 2 {
		p = append(p, i2stypes.Point{X: xys[i], Y: xys[i+1]})
	}
	return p
}

func TestSimplify_ShortPathsUnchanged(t *testing.T) {
	tests := []struct {
		name string
		path i2stypes.Path
	}{
		{"empty", nil},
		{"single", pts(1, 1)},
		{"pair", pts(0, 0, 3, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Simplify(tt.path, 10)
			if diff := cmp.Diff(tt.path, got); diff != "" {
				t.Errorf("Simplify changed short path (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSimplify_CollinearCollapsesAtZeroEpsilon(t *testing.T) {
	line := pts(0, 0, 1, 0, 2, 0, 3, 0, 4, 0)
	got := Simplify(line, 0)
	want := pts(0, 0, 4, 0)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Simplify(collinear, 0) mismatch (-want +got):\n%s", diff)
	}
}

func TestSimplify_ZeroEpsilonKeepsDeviations(t *testing.T) {
	// epsilon 为 0 时任何偏离连线的点都必须保留
	zig := pts(0, 0, 1, 0.001, 2, 0, 3, 0.001, 4, 0)
	got := Simplify(zig, 0)
	if diff := cmp.Diff(zig, got); diff != "" {
		t.Errorf("Simplify(zigzag, 0) mismatch (-want +got):\n%s", diff)
	}
}

func TestSimplify_SpikePreserved(t *testing.T) {
	path := pts(0, 0, 1, 0, 2, 0, 3, 5, 4, 0, 5, 0, 6, 0)
	got := Simplify(path, 2)
	want := pts(0, 0, 3, 5, 6, 0)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Simplify(spike, 1) mismatch (-want +got):\n%s", diff)
	}
}

func TestSimplify_Idempotent(t *testing.T) {
	path := pts(0, 0, 1, 2, 2, 0.5, 3, 3, 4, 0, 5, 2.5, 6, 0, 7, 1, 8, 0)
	for _, eps := range []float64{0, 0.5, 1, 2, 10} {
		once := Simplify(path, eps)
		twice := Simplify(once, eps)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("eps=%v: second pass changed result (-once +twice):\n%s", eps, diff)
		}
	}
}

func TestSimplify_EndpointsPreserved(t *testing.T) {
	path := pts(0, 0, 1, 3, 2, -1, 3, 4, 4, 0, 5, 2, 6, 1)
	for _, eps := range []float64{0, 1, 5, 100} {
		got := Simplify(path, eps)
		if len(got) < 2 {
			t.Fatalf("eps=%v: result has %d points", eps, len(got))
		}
		if got[0] != path[0] || got[len(got)-1] != path[len(path)-1] {
			t.Errorf("eps=%v: endpoints %v..%v, want %v..%v",
				eps, got[0], got[len(got)-1], path[0], path[len(path)-1])
		}
	}
}

func TestSimplify_MonotoneInEpsilon(t *testing.T) {
	path := pts(0, 0, 1, 2, 2, 0.5, 3, 3, 4, 0, 5, 2.5, 6, 0, 7, 1, 8, 0, 9, 4, 10, 0)
	prev := len(path) + 1
	for _, eps := range []float64{0, 0.25, 0.5, 1, 2, 4, 8} {
		n := len(Simplify(path, eps))
		if n > prev {
			t.Errorf("eps=%v: %d points, more than %d at smaller epsilon", eps, n, prev)
		}
		prev = n
	}
}
