package box

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

func modularTarget(t *testing.T, d mgl64.Vec3, expanded bool, name string) Transform {
	t.Helper()
	targets := ModularTargets(d, expanded)
	for i, n := range ModularNames() {
		if n == name {
			return targets[i]
		}
	}
	t.Fatalf("no part %q", name)
	return Transform{}
}

func TestModularTargets(t *testing.T) {
	tests := []struct {
		name     string
		dims     mgl64.Vec3
		expanded bool
		part     string
		want     Transform
	}{
		{"closed root", mgl64.Vec3{1, 1, 1}, false, RootPart, Identity()},
		{"closed top", mgl64.Vec3{1, 1, 1}, false, "top",
			Transform{Position: mgl64.Vec3{0, 0.5, 0}, Scale: mgl64.Vec3{1, 1, 1}}},
		{"closed front side", mgl64.Vec3{1, 1, 1}, false, "side-0",
			Transform{Position: mgl64.Vec3{0, 0, 0.5}, Scale: mgl64.Vec3{1, 1, 1}}},
		{"closed right side", mgl64.Vec3{1, 1, 1}, false, "side-1",
			Transform{Position: mgl64.Vec3{0.5, 0, 0}, Rotation: mgl64.Vec3{0, math.Pi / 2, 0}, Scale: mgl64.Vec3{1, 1, 1}}},
		{"closed first module", mgl64.Vec3{1, 1, 1}, false, "module-0",
			Transform{Position: mgl64.Vec3{-0.4, -0.4, -0.4}, Scale: mgl64.Vec3{0.2, 0.2, 0.2}}},
		{"closed last module", mgl64.Vec3{1, 1, 1}, false, "module-7",
			Transform{Position: mgl64.Vec3{0.4, 0.4, 0.4}, Scale: mgl64.Vec3{0.2, 0.2, 0.2}}},
		{"expanded root lifts", mgl64.Vec3{2, 1, 1}, true, RootPart,
			Transform{Position: mgl64.Vec3{0, 0.5, 0}, Scale: mgl64.Vec3{1, 1, 1}}},
		{"expanded body grows", mgl64.Vec3{2, 1, 1}, true, "body",
			Transform{Scale: mgl64.Vec3{2.4, 1.2, 1.2}}},
		{"expanded top turns", mgl64.Vec3{2, 1, 1}, true, "top",
			Transform{Position: mgl64.Vec3{0, 0.7, 0}, Rotation: mgl64.Vec3{0, math.Pi / 2, 0}, Scale: mgl64.Vec3{2, 1, 1}}},
		{"expanded side tilts", mgl64.Vec3{2, 1, 1}, true, "side-1",
			Transform{Position: mgl64.Vec3{1.5, 0, 0}, Rotation: mgl64.Vec3{0, math.Pi / 2, math.Pi / 4}, Scale: mgl64.Vec3{2, 1, 1}}},
		{"expanded module spreads", mgl64.Vec3{2, 1, 1}, true, "module-0",
			Transform{Position: mgl64.Vec3{-1.2, -0.6, -0.6}, Scale: mgl64.Vec3{0.3, 0.3, 0.3}}},
		{"expanded module spins", mgl64.Vec3{2, 1, 1}, true, "module-3",
			Transform{
				Position: mgl64.Vec3{1.2, -0.6, 0.6},
				Rotation: mgl64.Vec3{math.Mod(1.5*math.Pi, 3), 0.75 * math.Pi, 0},
				Scale:    mgl64.Vec3{0.3, 0.3, 0.3},
			}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := modularTarget(t, tt.dims, tt.expanded, tt.part)
			if !near(got.Position, tt.want.Position) || !near(got.Rotation, tt.want.Rotation) || !near(got.Scale, tt.want.Scale) {
				t.Errorf("%s = %+v, want %+v", tt.part, got, tt.want)
			}
		})
	}
}

func TestModularStartsAtRest(t *testing.T) {
	m := NewModular(ModularOptions{})
	if m.Expanded() || !m.Settled(1e-9) {
		t.Fatalf("new box expanded=%v settled=%v", m.Expanded(), m.Settled(1e-9))
	}
	pose := m.Pose()
	if len(pose) != 3+ModularSides+ModularModules {
		t.Fatalf("Pose() has %d parts", len(pose))
	}
	if top := pose["top"]; !near(top.Position, mgl64.Vec3{0, 0.5, 0}) {
		t.Errorf("top = %+v", top)
	}
}

func TestModularHoverDelays(t *testing.T) {
	tests := []struct {
		name  string
		steps []func(m *Modular)
		want  bool
	}{
		{"hover not yet expanded", []func(*Modular){
			func(m *Modular) { m.OnHover(true) },
			func(m *Modular) { advance(m, 200*time.Millisecond) },
		}, false},
		{"hover expands after 300ms", []func(*Modular){
			func(m *Modular) { m.OnHover(true) },
			func(m *Modular) { advance(m, 300*time.Millisecond) },
		}, true},
		{"early leave cancels expand", []func(*Modular){
			func(m *Modular) { m.OnHover(true) },
			func(m *Modular) { advance(m, 200*time.Millisecond) },
			func(m *Modular) { m.OnHover(false) },
			func(m *Modular) { advance(m, time.Second) },
		}, false},
		{"leave waits 500ms to collapse", []func(*Modular){
			func(m *Modular) { m.OnHover(true) },
			func(m *Modular) { advance(m, 300*time.Millisecond) },
			func(m *Modular) { m.OnHover(false) },
			func(m *Modular) { advance(m, 400*time.Millisecond) },
		}, true},
		{"leave collapses", []func(*Modular){
			func(m *Modular) { m.OnHover(true) },
			func(m *Modular) { advance(m, 300*time.Millisecond) },
			func(m *Modular) { m.OnHover(false) },
			func(m *Modular) { advance(m, 500*time.Millisecond) },
		}, false},
		{"return during collapse delay keeps it open", []func(*Modular){
			func(m *Modular) { m.OnHover(true) },
			func(m *Modular) { advance(m, 300*time.Millisecond) },
			func(m *Modular) { m.OnHover(false) },
			func(m *Modular) { advance(m, 400*time.Millisecond) },
			func(m *Modular) { m.OnHover(true) },
			func(m *Modular) { advance(m, time.Second) },
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModular(ModularOptions{})
			for _, step := range tt.steps {
				step(m)
			}
			if m.Expanded() != tt.want {
				t.Errorf("Expanded() = %v, want %v", m.Expanded(), tt.want)
			}
		})
	}
}

func TestModularClickToggles(t *testing.T) {
	m := NewModular(ModularOptions{})
	m.OnHover(true)
	m.OnClick()
	if !m.Expanded() {
		t.Fatalf("click did not expand")
	}
	advance(m, time.Second)
	if !m.Expanded() {
		t.Fatalf("hovered box collapsed on its own")
	}

	m.OnClick()
	if m.Expanded() {
		t.Fatalf("second click did not collapse")
	}
	// still hovered, so the expand delay runs again
	advance(m, 300*time.Millisecond)
	if !m.Expanded() {
		t.Errorf("hovered box did not re-expand")
	}
}

func TestModularConvergesToExpanded(t *testing.T) {
	m := NewModular(ModularOptions{})
	m.OnHover(true)
	advance(m, 300*time.Millisecond)
	run(m, 600)
	if !m.Settled(1e-4) {
		t.Fatalf("not settled after 10s")
	}
	targets := ModularTargets(m.Dimensions(), true)
	pose := m.Pose()
	for i, name := range ModularNames() {
		got, want := pose[name], targets[i]
		if !near(got.Position, want.Position) || !near(got.Rotation, want.Rotation) || !near(got.Scale, want.Scale) {
			t.Errorf("%s = %+v, want %+v", name, got, want)
		}
	}
}

func TestModularResize(t *testing.T) {
	base := mgl64.Vec3{1, 2, 1}
	tests := []struct {
		name     string
		adaptive bool
		hover    bool
		changed  bool
	}{
		{"adaptive idle box resizes", true, false, true},
		{"hovered box keeps its size", true, true, false},
		{"fixed box keeps its size", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModular(ModularOptions{Dimensions: base, Adaptive: tt.adaptive, Rand: rand.New(rand.NewSource(3))})
			m.OnHover(tt.hover)
			advance(m, 5*time.Second)
			d := m.Dimensions()
			if changed := d != base; changed != tt.changed {
				t.Fatalf("Dimensions() = %v, changed %v, want %v", d, changed, tt.changed)
			}
			for i := range d {
				if r := d[i] / base[i]; r < 0.8 || r > 1.2 {
					t.Errorf("axis %d ratio %f outside 0.8..1.2", i, r)
				}
			}
		})
	}
}

func TestModularIdlePausesWhileExpanded(t *testing.T) {
	m := NewModular(ModularOptions{})
	run(m, 60)
	before := m.Idle()
	if before != 60*frame {
		t.Fatalf("Idle() = %v, want %v", before, 60*frame)
	}
	m.OnClick()
	run(m, 10)
	if m.Idle() != before {
		t.Errorf("idle clock ran while expanded: %v", m.Idle())
	}
	if m.Elapsed() != 70*frame {
		t.Errorf("Elapsed() = %v", m.Elapsed())
	}
}

func TestModularStopCancelsTimers(t *testing.T) {
	m := NewModular(ModularOptions{Adaptive: true, Rand: rand.New(rand.NewSource(1))})
	m.OnHover(true)
	m.Stop()
	advance(m, 10*time.Second)
	if m.Expanded() || m.Dimensions() != (mgl64.Vec3{1, 1, 1}) {
		t.Errorf("timers fired after Stop: expanded=%v dims=%v", m.Expanded(), m.Dimensions())
	}
}
