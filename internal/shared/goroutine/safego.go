// Package goroutine runs background work that must never take the process down.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/nhadat/marketplace/internal/shared/logger"
)

// Go runs fn on a new goroutine. A panic inside fn is logged under name
// together with its stack and then swallowed.
func Go(log logger.Interface, name string, fn func()) {
	go func() {
		defer recoverTo(log, name)
		fn()
	}()
}

func recoverTo(log logger.Interface, name string) {
	r := recover()
	if r == nil {
		return
	}
	log.Errorw("background task panicked",
		"task", name,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
}
