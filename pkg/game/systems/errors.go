package systems

import "errors"

// ErrInvariant marks a state the pipeline ordering is supposed to make
// impossible. Callers abort the turn when they see it.
var ErrInvariant = errors.New("simulation invariant violated")
