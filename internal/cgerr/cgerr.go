// Package cgerr distinguishes the three failure kinds spec.md §7
// describes: fatal precondition violations, recoverable local failures
// (represented by ordinary ok-bool/sentinel returns, not by this
// package), and algorithmic restarts.
//
// Follows a bare sentinel-error style (checked with errors.Is via
// fmt.Errorf("%w", ...)), generalized into one wrapping type rather than
// one sentinel per call site.
package cgerr

import "fmt"

// Fatal reports a precondition violation (spec.md §7.1): invalid
// polygon, duplicate Voronoi sites, a neighbour added equal to its own
// node, or a critical-point count outside {0, 2}. Callers propagate it
// to the CLI rather than recovering from it.
type Fatal struct {
	Op  string
	Err error
}

func (f *Fatal) Error() string {
	return fmt.Sprintf("%s: %v", f.Op, f.Err)
}

func (f *Fatal) Unwrap() error {
	return f.Err
}

// NewFatal builds a Fatal for operation op wrapping err.
func NewFatal(op string, err error) *Fatal {
	return &Fatal{Op: op, Err: err}
}

// Restart is the typed panic value spec.md §7.3 describes: a generation
// step throws this when it detects an inconsistency that's cheaper to
// retry from a fresh seed than to repair in place. The batch Voronoi
// builder itself never hits such an inconsistency, so in this
// implementation it's citygen.drawBoundary that throws Restart — when
// the island package can't extract a closed coastline from a given site
// scatter — and recovers it in its own retry loop.
type Restart struct {
	Reason string
}

func (r Restart) Error() string {
	return "restart: " + r.Reason
}

// Sentinel errors wrapped by Fatal at various call sites.
var (
	ErrInvalidPolygon        = fmt.Errorf("polygon requires at least 3 points")
	ErrDuplicateVoronoiSite  = fmt.Errorf("duplicate voronoi site")
	ErrSelfNeighbour         = fmt.Errorf("neighbour added equal to its own node")
	ErrBadCriticalPointCount = fmt.Errorf("critical point count outside {0, 2}")
)
