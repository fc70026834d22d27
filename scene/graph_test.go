package scene

import (
	"math"
	"testing"

	"github.com/lixenwraith/neon-globe/vmath"
)

func TestGraph_AddRemoveOrder(t *testing.T) {
	g := New()
	a := NewLine(nil, RGBNeonCyan, 0.4)
	b := NewLine(nil, RGBNeonCyan, 0.4)
	c := NewLine(nil, RGBNeonCyan, 0.4)

	g.Add(a)
	g.Add(b)
	g.Add(c)
	if g.Len() != 3 {
		t.Fatalf("Len = %d, want 3", g.Len())
	}

	g.Remove(b)
	nodes := g.Nodes()
	if len(nodes) != 2 || nodes[0] != Node(a) || nodes[1] != Node(c) {
		t.Fatalf("order after remove = %v", nodes)
	}
	if g.Contains(b) {
		t.Error("removed node still reported present")
	}

	// Index stays consistent after a middle removal
	g.Remove(c)
	if g.Contains(c) || g.Len() != 1 {
		t.Errorf("Remove(c) left Len=%d Contains=%v", g.Len(), g.Contains(c))
	}
}

func TestGraph_AddIsIdempotent(t *testing.T) {
	g := New()
	l := NewLine(nil, RGBWhite, 1)
	g.Add(l)
	g.Add(l)
	if g.Len() != 1 {
		t.Errorf("Len = %d, want 1", g.Len())
	}
}

func TestGraph_RemoveAbsentAndNil(t *testing.T) {
	g := New()
	g.Add(NewLine(nil, RGBWhite, 1))
	g.Remove(NewLine(nil, RGBWhite, 1))
	g.Remove(nil)
	g.Add(nil)
	if g.Len() != 1 {
		t.Errorf("Len = %d, want 1", g.Len())
	}
}

func TestGraph_NodesIsSnapshot(t *testing.T) {
	g := New()
	g.Add(NewLine(nil, RGBWhite, 1))
	snap := g.Nodes()
	g.Add(NewLine(nil, RGBWhite, 1))
	if len(snap) != 1 {
		t.Errorf("snapshot changed length to %d", len(snap))
	}
}

func TestLine_SetOpacityClamps(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.1, 0},
		{0, 0},
		{0.4, 0.4},
		{1.5, 1},
	}
	for _, tt := range tests {
		l := NewLine(nil, RGBWhite, tt.in)
		if l.Opacity() != tt.want {
			t.Errorf("SetOpacity(%v) -> %v, want %v", tt.in, l.Opacity(), tt.want)
		}
	}
}

func TestHex(t *testing.T) {
	if got := Hex(0x00ffcc); got != (RGB{0, 255, 204}) {
		t.Errorf("Hex(0x00ffcc) = %+v", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#00ffcc", RGB{0, 255, 204}, false},
		{"FF8000", RGB{255, 128, 0}, false},
		{"0x0b2a4a", RGBOcean, false},
		{"#fff", RGB{}, true},
		{"#gggggg", RGB{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseHex(%q) err = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestGlobe_DefaultComposition(t *testing.T) {
	g := New()
	gl := NewGlobe(DefaultGlobeStyle())
	gl.AddTo(g)

	if g.Len() != 3 {
		t.Fatalf("Len = %d, want 3", g.Len())
	}
	if gl.Body.Radius != 2 || gl.Body.Opacity != 0.8 {
		t.Errorf("body = %+v", gl.Body)
	}
	if gl.Grid.Radius != 2.01 || gl.Grid.WidthSegments != 32 || gl.Grid.Opacity != 0.2 {
		t.Errorf("grid = %+v", gl.Grid)
	}
	if gl.Logo.Position != (vmath.Vec3F{X: 0, Y: 3, Z: 0}) {
		t.Errorf("logo at %+v", gl.Logo.Position)
	}

	gl.Spin(0.5)
	gl.Spin(0.25)
	if gl.Grid.Rotation != 0.75 {
		t.Errorf("grid rotation = %v, want 0.75", gl.Grid.Rotation)
	}

	gl.Spin(2 * math.Pi)
	if math.Abs(gl.Grid.Rotation-0.75) > 1e-9 {
		t.Errorf("rotation not wrapped: %v", gl.Grid.Rotation)
	}
}

func TestGlobe_NoLogo(t *testing.T) {
	style := DefaultGlobeStyle()
	style.Logo = ""
	g := New()
	NewGlobe(style).AddTo(g)
	if g.Len() != 2 {
		t.Errorf("Len = %d, want 2", g.Len())
	}
}
