package sampler

// State is a step of a single sampling run.
type State int

const (
	StateIdle State = iota
	StateProbeDone
	StateResolverDone
	StateComplete
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateProbeDone:
		return "probe_done"
	case StateResolverDone:
		return "resolver_done"
	case StateComplete:
		return "complete"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// next reports whether moving from s to to is a legal transition.
func (s State) next(to State) bool {
	switch s {
	case StateIdle:
		return to == StateProbeDone || to == StateFailed
	case StateProbeDone:
		return to == StateResolverDone || to == StateFailed
	case StateResolverDone:
		return to == StateComplete || to == StateFailed
	default:
		return false
	}
}
