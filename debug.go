package bramble

import (
	"fmt"
	"os"
)

// debugf prints a diagnostic line to stderr when the scene is in debug mode.
// Used for conditions that are deliberately not errors: dropped events,
// cancelled drags, skipped anchors.
func (s *Scene) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[bramble] "+format+"\n", args...)
}

// debugMaxTreeDepth is the depth past which debug mode warns about a
// runaway tree.
const debugMaxTreeDepth = 32

func (s *Scene) debugCheckTreeDepth(b *Box) {
	if !s.debug {
		return
	}
	depth := 0
	for p := b; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[bramble] warning: tree depth %d exceeds %d (box %q)\n",
			depth, debugMaxTreeDepth, b.Name)
	}
}
