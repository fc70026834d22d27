package arc

import (
	"math"
	"testing"

	"github.com/lixenwraith/neon-globe/scene"
	"github.com/lixenwraith/neon-globe/vmath"
)

const tol = 1e-9

// scriptedRand replays fixed variates, then repeats the last one
type scriptedRand struct {
	vals []float64
	i    int
}

func (r *scriptedRand) Float64() float64 {
	if r.i >= len(r.vals) {
		return r.vals[len(r.vals)-1]
	}
	v := r.vals[r.i]
	r.i++
	return v
}

func newTestAnimator(t *testing.T, opts ...Option) (*Animator, *scene.Graph) {
	t.Helper()
	g := scene.New()
	a, err := New(g, NewSeededRand(1), opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return a, g
}

func TestGenerate_EndpointsOnSphere(t *testing.T) {
	a, _ := newTestAnimator(t)
	for i := 0; i < 500; i++ {
		c := a.Generate()
		if d := vmath.V3FMag(c.Curve.Start); math.Abs(d-2) > tol {
			t.Fatalf("start distance %v, want 2", d)
		}
		if d := vmath.V3FMag(c.Curve.End); math.Abs(d-2) > tol {
			t.Fatalf("end distance %v, want 2", d)
		}
	}
}

func TestGenerate_ShapeAndInitialState(t *testing.T) {
	a, g := newTestAnimator(t)
	c := a.Generate()

	if len(c.Points) != 51 {
		t.Errorf("points = %d, want 51", len(c.Points))
	}
	if c.Opacity != 0.4 {
		t.Errorf("opacity = %v, want exactly 0.4", c.Opacity)
	}
	if c.FadeRate != -0.004 {
		t.Errorf("fade rate = %v, want -0.004", c.FadeRate)
	}
	if c.Points[0] != c.Curve.Start || c.Points[50] != c.Curve.End {
		t.Error("polyline does not start and end at the curve endpoints")
	}

	wantCtrl := vmath.V3FScale(vmath.V3FLerp(c.Curve.Start, c.Curve.End, 0.5), 1.5)
	if !vmath.V3FNearlyEqual(c.Curve.Control, wantCtrl, tol) {
		t.Errorf("control = %+v, want %+v", c.Curve.Control, wantCtrl)
	}

	if !g.Contains(c.Line()) {
		t.Error("line not registered with scene")
	}
	if c.Line().Opacity() != 0.4 {
		t.Errorf("line opacity = %v, want 0.4", c.Line().Opacity())
	}
}

func TestGenerate_SeededStartOnEquator(t *testing.T) {
	g := scene.New()
	// phi1 = 0, theta1 = acos(2*0.5-1) = π/2
	a, err := New(g, &scriptedRand{vals: []float64{0, 0.5, 0.25, 0.5}})
	if err != nil {
		t.Fatal(err)
	}
	c := a.Generate()
	if !vmath.V3FNearlyEqual(c.Curve.Start, vmath.Vec3F{X: 2, Y: 0, Z: 0}, tol) {
		t.Errorf("start = %+v, want (2,0,0)", c.Curve.Start)
	}
	if !vmath.V3FNearlyEqual(c.Curve.End, vmath.Vec3F{X: 0, Y: 2, Z: 0}, tol) {
		t.Errorf("end = %+v, want (0,2,0)", c.Curve.End)
	}
}

func TestGenerate_SameSeedSameArcs(t *testing.T) {
	a1, _ := newTestAnimator(t)
	a2, _ := newTestAnimator(t)
	for i := 0; i < 10; i++ {
		c1, c2 := a1.Generate(), a2.Generate()
		if c1.Curve != c2.Curve {
			t.Fatalf("arc %d differs: %+v vs %+v", i, c1.Curve, c2.Curve)
		}
	}
}

func TestTick_RetiresAfterHundredTicks(t *testing.T) {
	var respawns int
	var retired, replacement *Connection
	a, g := newTestAnimator(t,
		WithCount(1),
		WithRespawnHook(func(old, fresh *Connection) {
			respawns++
			retired, replacement = old, fresh
		}),
	)
	a.Populate()
	first := a.Connections()[0]

	for i := 0; i < 99; i++ {
		a.Tick()
	}
	if respawns != 0 {
		t.Fatalf("respawned after 99 ticks")
	}
	if math.Abs(first.Opacity-0.004) > tol {
		t.Errorf("opacity after 99 ticks = %v, want ~0.004", first.Opacity)
	}

	a.Tick()
	if respawns != 1 {
		t.Fatalf("respawns after 100 ticks = %d, want 1", respawns)
	}
	if retired != first {
		t.Error("hook reported wrong retired connection")
	}
	if first.Opacity > 0 || math.Abs(first.Opacity) > tol {
		t.Errorf("retired opacity = %v, want 0", first.Opacity)
	}
	if g.Contains(first.Line()) {
		t.Error("retired line still in scene")
	}

	live := a.Connections()
	if len(live) != 1 || live[0] != replacement {
		t.Fatalf("live set = %v, want the replacement", live)
	}
	if replacement.Opacity != 0.4 {
		t.Errorf("replacement opacity = %v, want 0.4", replacement.Opacity)
	}
	if !g.Contains(replacement.Line()) {
		t.Error("replacement line not in scene")
	}
}

func TestTick_AppliesOpacityToLine(t *testing.T) {
	a, _ := newTestAnimator(t, WithCount(1))
	a.Populate()
	c := a.Connections()[0]
	for i := 0; i < 10; i++ {
		a.Tick()
	}
	if math.Abs(c.Line().Opacity()-0.36) > tol {
		t.Errorf("line opacity = %v, want 0.36", c.Line().Opacity())
	}
	if c.Line().Opacity() != c.Opacity {
		t.Errorf("line %v and connection %v out of sync", c.Line().Opacity(), c.Opacity)
	}
}

func TestTick_PopulationInvariant(t *testing.T) {
	a, g := newTestAnimator(t)
	a.Populate()
	if n := len(a.Connections()); n != 3 {
		t.Fatalf("initial live = %d, want 3", n)
	}

	for i := 0; i < 1000; i++ {
		a.Tick()
		if n := len(a.Connections()); n != 3 {
			t.Fatalf("tick %d: live = %d, want 3", i, n)
		}
		if g.Len() != 3 {
			t.Fatalf("tick %d: scene holds %d nodes, want 3", i, g.Len())
		}
	}

	st := a.Stats()
	// Every 100 ticks the whole set turns over
	if st.Respawned != 30 {
		t.Errorf("respawned = %d, want 30", st.Respawned)
	}
	if st.Generated != 33 || st.Ticks != 1000 || st.Live != 3 {
		t.Errorf("stats = %+v", st)
	}
}

func TestPopulate_Idempotent(t *testing.T) {
	a, g := newTestAnimator(t)
	a.Populate()
	a.Populate()
	if len(a.Connections()) != 3 || g.Len() != 3 {
		t.Errorf("live=%d scene=%d, want 3/3", len(a.Connections()), g.Len())
	}
}

func TestReset_ReplacesAll(t *testing.T) {
	a, g := newTestAnimator(t)
	a.Populate()
	before := a.Connections()
	a.Reset()
	after := a.Connections()

	if len(after) != 3 || g.Len() != 3 {
		t.Fatalf("live=%d scene=%d after reset", len(after), g.Len())
	}
	for _, old := range before {
		if g.Contains(old.Line()) {
			t.Error("old line survived reset")
		}
	}
}

func TestConnections_IsCopy(t *testing.T) {
	a, _ := newTestAnimator(t)
	a.Populate()
	snap := a.Connections()
	snap[0] = nil
	if a.Connections()[0] == nil {
		t.Error("caller mutated live set")
	}
}

func TestWithSampler_Injected(t *testing.T) {
	calls := 0
	sm := SamplerFunc(func(curve vmath.QuadBezier3, divisions int) []vmath.Vec3F {
		calls++
		return []vmath.Vec3F{curve.Start, curve.End}
	})
	a, _ := newTestAnimator(t, WithSampler(sm))
	c := a.Generate()
	if calls != 1 || len(c.Points) != 2 {
		t.Errorf("calls=%d points=%d", calls, len(c.Points))
	}
}

func TestNew_Validation(t *testing.T) {
	g := scene.New()
	rng := NewSeededRand(1)

	tests := []struct {
		name string
		opts []Option
	}{
		{"zero count", []Option{WithCount(0)}},
		{"zero radius", []Option{WithRadius(0)}},
		{"opacity above one", []Option{WithStartOpacity(1.2)}},
		{"zero opacity", []Option{WithStartOpacity(0)}},
		{"positive fade", []Option{WithFadeRate(0.01)}},
		{"zero divisions", []Option{WithDivisions(0)}},
		{"nil sampler", []Option{WithSampler(nil)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(g, rng, tt.opts...); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := New(nil, rng); err == nil {
		t.Error("nil scene accepted")
	}
	if _, err := New(g, nil); err == nil {
		t.Error("nil rand accepted")
	}
}
