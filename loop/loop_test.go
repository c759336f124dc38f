package loop

import (
	"errors"
	"testing"
	"time"
)

type recorder struct {
	frames  []time.Duration
	hovers  []bool
	wheels  []float64
	clicks  int
	consume bool

	onFrame func()
	onWheel func()
	onClick func()
}

func (r *recorder) OnFrame(dt time.Duration) {
	r.frames = append(r.frames, dt)
	if r.onFrame != nil {
		r.onFrame()
	}
}

func (r *recorder) OnHover(h bool) {
	r.hovers = append(r.hovers, h)
}

func (r *recorder) OnWheel(d float64) bool {
	r.wheels = append(r.wheels, d)
	if r.onWheel != nil {
		r.onWheel()
	}
	return r.consume
}

func (r *recorder) OnClick() {
	r.clicks++
	if r.onClick != nil {
		r.onClick()
	}
}

func TestSubscribeDuplicate(t *testing.T) {
	l := New()
	if _, err := l.Subscribe("a", &recorder{}); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	_, err := l.Subscribe("a", &recorder{})
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("second Subscribe error = %v, want ErrDuplicate", err)
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
}

func TestFrameTicksEverySubscriber(t *testing.T) {
	l := New()
	a, b := &recorder{}, &recorder{}
	l.Subscribe("a", a)
	l.Subscribe("b", b)

	if err := l.Frame(16 * time.Millisecond); err != nil {
		t.Fatalf("Frame: %v", err)
	}
	if len(a.frames) != 1 || len(b.frames) != 1 {
		t.Fatalf("frames a=%d b=%d, want 1 each", len(a.frames), len(b.frames))
	}
	if a.frames[0] != 16*time.Millisecond {
		t.Errorf("dt = %v, want 16ms", a.frames[0])
	}
}

func TestPointerEnterLeave(t *testing.T) {
	l := New()
	a, b := &recorder{}, &recorder{}
	l.Subscribe("a", a)
	l.Subscribe("b", b)

	l.Pointer("a")
	l.Pointer("a")
	l.Pointer("b")
	l.Pointer("")
	l.Pointer("nowhere")

	if got, want := a.hovers, []bool{true, false}; !equalBools(got, want) {
		t.Errorf("a hovers = %v, want %v", got, want)
	}
	if got, want := b.hovers, []bool{true, false}; !equalBools(got, want) {
		t.Errorf("b hovers = %v, want %v", got, want)
	}
	if l.Hovered() != "" {
		t.Errorf("Hovered() = %q, want empty", l.Hovered())
	}
}

func TestWheelGoesToHoveredTarget(t *testing.T) {
	l := New()
	a, b := &recorder{consume: true}, &recorder{}
	l.Subscribe("a", a)
	l.Subscribe("b", b)

	consumed, err := l.Wheel(100)
	if err != nil || consumed {
		t.Fatalf("Wheel with nothing hovered = %v, %v", consumed, err)
	}

	l.Pointer("a")
	consumed, _ = l.Wheel(-100)
	if !consumed {
		t.Errorf("Wheel over a not consumed")
	}
	if len(a.wheels) != 1 || a.wheels[0] != -100 {
		t.Errorf("a wheels = %v, want [-100]", a.wheels)
	}
	if len(b.wheels) != 0 {
		t.Errorf("b received wheel events: %v", b.wheels)
	}
}

func TestClickGoesToTarget(t *testing.T) {
	l := New()
	a, b := &recorder{}, &recorder{}
	l.Subscribe("a", a)
	l.Subscribe("b", b)

	tests := []struct {
		target string
		a, b   int
	}{
		{"", 0, 0},
		{"missing", 0, 0},
		{"a", 1, 0},
		{"b", 1, 1},
		{"a", 2, 1},
	}
	for _, tt := range tests {
		if err := l.Click(tt.target); err != nil {
			t.Fatalf("Click(%q): %v", tt.target, err)
		}
		if a.clicks != tt.a || b.clicks != tt.b {
			t.Errorf("after Click(%q) clicks = %d, %d, want %d, %d", tt.target, a.clicks, b.clicks, tt.a, tt.b)
		}
	}
	if l.Hovered() != "" {
		t.Errorf("Click moved the pointer to %q", l.Hovered())
	}
}

func TestClickFromHandlerIsQueued(t *testing.T) {
	l := New()
	a, b := &recorder{}, &recorder{}
	a.onClick = func() {
		l.Click("b")
		if b.clicks != 0 {
			t.Errorf("nested Click ran before the handler returned")
		}
	}
	l.Subscribe("a", a)
	l.Subscribe("b", b)

	l.Click("a")
	if a.clicks != 1 || b.clicks != 1 {
		t.Errorf("clicks = %d, %d, want 1, 1", a.clicks, b.clicks)
	}
}

func TestReentrantEventsAreQueued(t *testing.T) {
	l := New()
	a := &recorder{}
	depth := 0
	a.onFrame = func() {
		depth++
		if depth > 1 {
			t.Fatalf("handler re-entered")
		}
		if len(a.frames) == 1 {
			l.Frame(time.Millisecond)
			if len(a.frames) != 1 {
				t.Errorf("nested Frame ran before the handler returned")
			}
		}
		depth--
	}
	l.Subscribe("a", a)

	l.Frame(10 * time.Millisecond)
	if len(a.frames) != 2 {
		t.Fatalf("frames = %v, want 2", a.frames)
	}
	if a.frames[1] != time.Millisecond {
		t.Errorf("queued dt = %v, want 1ms", a.frames[1])
	}
}

func TestSubscriptionCloseDuringDispatch(t *testing.T) {
	l := New()
	a, b := &recorder{}, &recorder{}
	var sb *Subscription
	a.onFrame = func() {
		sb.Close()
	}
	l.Subscribe("a", a)
	sb, _ = l.Subscribe("b", b)

	l.Frame(time.Millisecond)
	if len(b.frames) != 0 {
		t.Errorf("closed subscriber was ticked")
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
}

func TestSubscriptionCloseIsIdempotent(t *testing.T) {
	l := New()
	s, _ := l.Subscribe("a", &recorder{})
	calls := 0
	s.OnClose(func() { calls++ })

	l.Pointer("a")
	s.Close()
	s.Close()

	if calls != 1 {
		t.Errorf("OnClose ran %d times, want 1", calls)
	}
	if l.Hovered() != "" {
		t.Errorf("closed target still hovered")
	}
	if !s.Closed() {
		t.Errorf("Closed() = false")
	}

	late := 0
	s.OnClose(func() { late++ })
	if late != 1 {
		t.Errorf("OnClose on closed subscription did not run at once")
	}

	if _, err := l.Subscribe("a", &recorder{}); err != nil {
		t.Errorf("resubscribe after close: %v", err)
	}
}

func TestCloseTearsDownEverything(t *testing.T) {
	l := New()
	closed := map[string]bool{}
	for _, name := range []string{"a", "b", "c"} {
		name := name
		s, _ := l.Subscribe(name, &recorder{})
		s.OnClose(func() { closed[name] = true })
	}

	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if len(closed) != 3 {
		t.Errorf("closed = %v, want all three", closed)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d after Close", l.Len())
	}
	if err := l.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	if err := l.Frame(time.Millisecond); !errors.Is(err, ErrClosed) {
		t.Errorf("Frame after Close = %v, want ErrClosed", err)
	}
	if err := l.Pointer("a"); !errors.Is(err, ErrClosed) {
		t.Errorf("Pointer after Close = %v, want ErrClosed", err)
	}
	if _, err := l.Wheel(1); !errors.Is(err, ErrClosed) {
		t.Errorf("Wheel after Close = %v, want ErrClosed", err)
	}
	if err := l.Click("a"); !errors.Is(err, ErrClosed) {
		t.Errorf("Click after Close = %v, want ErrClosed", err)
	}
	if _, err := l.Subscribe("d", &recorder{}); !errors.Is(err, ErrClosed) {
		t.Errorf("Subscribe after Close = %v, want ErrClosed", err)
	}
}

func TestCloseFromHandlerDropsQueue(t *testing.T) {
	l := New()
	a := &recorder{}
	a.onWheel = func() {
		l.Frame(time.Millisecond)
		l.Close()
	}
	l.Subscribe("a", a)
	l.Pointer("a")

	l.Wheel(1)
	if len(a.frames) != 0 {
		t.Errorf("queued frame ran after Close: %v", a.frames)
	}
}

func equalBools(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
