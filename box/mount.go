package box

import (
	"fmt"

	"github.com/smasonuk/gosiebox/loop"
)

// Mount subscribes a to l under target. Closing the returned subscription
// unmounts the box and stops its timers.
func Mount(l *loop.Loop, target string, a Animator) (*loop.Subscription, error) {
	sub, err := l.Subscribe(target, a)
	if err != nil {
		return nil, fmt.Errorf("box: mount %q: %w", target, err)
	}
	sub.OnClose(a.Stop)
	return sub, nil
}
