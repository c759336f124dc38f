// Package loop dispatches host events to subscribed targets: frame ticks,
// pointer enter and leave, clicks and wheel scrolls.
//
// A Loop is single threaded. Events raised from inside a handler are queued
// and delivered after the current handler returns, so handlers never re-enter.
package loop

import (
	"errors"
	"fmt"
	"log"
	"time"
)

var (
	// ErrClosed is returned by every operation on a closed Loop.
	ErrClosed = errors.New("loop: closed")
	// ErrDuplicate is returned when a target is subscribed twice.
	ErrDuplicate = errors.New("loop: target already subscribed")
)

// Handler receives the events of one target.
type Handler interface {
	OnFrame(dt time.Duration)
	OnHover(hovering bool)
	// OnWheel reports whether the event was consumed. A consumed event must
	// not scroll the page.
	OnWheel(deltaY float64) bool
	OnClick()
}

// Loop routes events to handlers by target name.
type Loop struct {
	subs    map[string]*Subscription
	order   []*Subscription
	hovered string

	closed      bool
	dispatching bool
	queue       []func()
}

func New() *Loop {
	return &Loop{subs: make(map[string]*Subscription)}
}

// Subscribe registers h for target. The returned Subscription must be
// closed when the target goes away.
func (l *Loop) Subscribe(target string, h Handler) (*Subscription, error) {
	if l.closed {
		return nil, ErrClosed
	}
	if h == nil {
		return nil, fmt.Errorf("loop: nil handler for %q", target)
	}
	if _, ok := l.subs[target]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicate, target)
	}
	s := &Subscription{loop: l, target: target, h: h}
	l.subs[target] = s
	l.order = append(l.order, s)
	return s, nil
}

// Frame ticks every subscriber in subscription order.
func (l *Loop) Frame(dt time.Duration) error {
	if l.closed {
		return ErrClosed
	}
	l.dispatch(func() {
		for _, s := range append([]*Subscription(nil), l.order...) {
			if !s.closed {
				s.h.OnFrame(dt)
			}
		}
	})
	return nil
}

// Pointer moves the pointer onto target. An empty or unknown target means
// the pointer is over nothing. The old target gets a leave, the new one an
// enter; nothing happens when the target is unchanged.
func (l *Loop) Pointer(target string) error {
	if l.closed {
		return ErrClosed
	}
	l.dispatch(func() {
		if _, ok := l.subs[target]; !ok {
			target = ""
		}
		if target == l.hovered {
			return
		}
		old := l.hovered
		l.hovered = target
		if s, ok := l.subs[old]; ok {
			s.h.OnHover(false)
		}
		if s, ok := l.subs[target]; ok && l.hovered == target {
			s.h.OnHover(true)
		}
	})
	return nil
}

// Wheel delivers a wheel event to the hovered target and reports whether
// it consumed the event. A wheel event raised from inside a handler is
// queued and reported as not consumed.
func (l *Loop) Wheel(deltaY float64) (bool, error) {
	if l.closed {
		return false, ErrClosed
	}
	consumed := false
	l.dispatch(func() {
		if s, ok := l.subs[l.hovered]; ok {
			consumed = s.h.OnWheel(deltaY)
		}
	})
	return consumed, nil
}

// Click delivers a primary button press to target. An empty or unknown
// target is ignored.
func (l *Loop) Click(target string) error {
	if l.closed {
		return ErrClosed
	}
	l.dispatch(func() {
		if s, ok := l.subs[target]; ok {
			s.h.OnClick()
		}
	})
	return nil
}

// Hovered returns the target under the pointer, or "".
func (l *Loop) Hovered() string {
	return l.hovered
}

// Len is the number of open subscriptions.
func (l *Loop) Len() int {
	return len(l.order)
}

// Close closes every subscription and rejects further events. Closing a
// closed Loop is a no-op.
func (l *Loop) Close() error {
	if l.closed {
		return nil
	}
	subs := append([]*Subscription(nil), l.order...)
	for _, s := range subs {
		s.Close()
	}
	l.closed = true
	l.queue = nil
	log.Printf("loop: closed %d subscriptions", len(subs))
	return nil
}

func (l *Loop) dispatch(fn func()) {
	if l.dispatching {
		l.queue = append(l.queue, fn)
		return
	}
	l.dispatching = true
	defer func() {
		l.dispatching = false
	}()

	fn()
	for len(l.queue) > 0 && !l.closed {
		next := l.queue[0]
		l.queue = l.queue[1:]
		next()
	}
	l.queue = nil
}

func (l *Loop) remove(s *Subscription) {
	delete(l.subs, s.target)
	for i, o := range l.order {
		if o == s {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	if l.hovered == s.target {
		l.hovered = ""
	}
}

// Subscription is the registration of one target on a Loop.
type Subscription struct {
	loop    *Loop
	target  string
	h       Handler
	closed  bool
	onClose []func()
}

func (s *Subscription) Target() string {
	return s.target
}

// Closed reports whether Close has been called.
func (s *Subscription) Closed() bool {
	return s.closed
}

// OnClose registers fn to run when the subscription closes. It runs at
// once if the subscription is already closed.
func (s *Subscription) OnClose(fn func()) {
	if s.closed {
		fn()
		return
	}
	s.onClose = append(s.onClose, fn)
}

// Close deregisters the handler and runs the OnClose functions in order.
// It is safe to call more than once and from inside a handler.
func (s *Subscription) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.loop.remove(s)
	fns := s.onClose
	s.onClose = nil
	for _, fn := range fns {
		fn()
	}
	return nil
}
