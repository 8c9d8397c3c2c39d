package runes

import (
	"fmt"
	"io"
	"os"
)

// debugOut receives debug lines. Tests swap it for a buffer.
var debugOut io.Writer = os.Stderr

// SetDebugMode enables or disables debug mode. When enabled, every menu event
// is printed to stderr and adding a disposed node prints a warning.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// debugLog prints a menu event to stderr.
func (s *Scene) debugLog(evt MenuEvent) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut,
		"[runes] menu %q: %s | slot: %d | icon: %s | expanded: %v | spiral: %v\n",
		evt.Menu, evt.Type, evt.Index, evt.Icon, evt.Expanded, evt.Spiral)
}

// debugCheckDisposed warns when a disposed node is used in a scene operation.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		_, _ = fmt.Fprintf(debugOut, "[runes] warning: %s on disposed node %q (ID was %d)\n", op, n.Name, n.ID)
	}
}
