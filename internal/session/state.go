package session

// Phase identifies which face of the study session is showing.
type Phase int

const (
	// PhaseLoading means no challenge is current yet: either the first
	// batch has not arrived or the queue drained and a refill is in
	// flight.
	PhaseLoading Phase = iota

	// PhasePresenting means a challenge is on screen and the learner
	// is composing an answer.
	PhasePresenting

	// PhaseShowingOutcome means the service's verdict for the last
	// answer is on screen.
	PhaseShowingOutcome

	// PhaseFailed means the last remote operation failed. It is not a
	// dead end: a later successful fetch or submit leaves it.
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhasePresenting:
		return "presenting"
	case PhaseShowingOutcome:
		return "showing-outcome"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// State is the complete study-session state. It is a value: Reduce
// takes a State and returns its successor, and the previous value is
// discarded. Current is defined in every phase except Loading.
type State struct {
	Phase   Phase
	Queue   Queue
	Current Challenge
	Draft   string
	Verdict string
	ErrText string
	Hints   HintCascade
}

// NewState returns the initial state: Loading, empty queue, no current
// challenge. The runtime is expected to execute InitCommand right
// away so the first batch gets fetched.
func NewState() State {
	return State{Phase: PhaseLoading}
}

// InitCommand is the command that starts a session.
func InitCommand() Command {
	return FetchBatch{}
}
