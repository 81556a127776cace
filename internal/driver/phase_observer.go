package driver

import "time"

// PhaseStatus reports whether a phase started or finished.
type PhaseStatus int

const (
	// PhaseStart indicates that a compilation phase has begun.
	PhaseStart PhaseStatus = iota
	PhaseEnd
)

// Phase names reported to observers and timers.
const (
	PhaseLoad  = "load"
	PhaseLex   = "lex"
	PhaseParse = "parse"
	PhaseBuild = "build"
	PhaseEmit  = "emit"
)

// PhaseEvent describes a phase boundary for one file.
type PhaseEvent struct {
	Name    string
	Path    string
	Status  PhaseStatus
	Elapsed time.Duration // only on PhaseEnd
	Err     error         // only on PhaseEnd
}

// PhaseObserver receives phase events. TokenizeDir calls it from several
// goroutines at once.
type PhaseObserver func(PhaseEvent)
