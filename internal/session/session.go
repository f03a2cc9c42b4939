package session

// Msg is an input to the reducer: either a learner action or the
// completion of an asynchronous remote operation. Messages are applied
// strictly in arrival order; a completion that arrives late still wins
// over whatever it overwrites (there is no request-id fencing, by
// documented choice).
type Msg interface {
	isMsg()
}

// BatchFetched reports a successful challenge fetch.
type BatchFetched struct {
	Challenges []Challenge
}

// DraftAnswerChanged carries the learner's in-progress answer text,
// verbatim. No trimming, no validation.
type DraftAnswerChanged struct {
	Text string
}

// SubmitRequested asks to submit the current draft for grading.
type SubmitRequested struct{}

// VerdictReceived reports a successful answer submission.
type VerdictReceived struct {
	Verdict string
}

// AdvanceRequested asks to move past the current outcome or failure,
// either to the next queued challenge or to a fresh batch fetch.
type AdvanceRequested struct{}

// HintRequested asks to reveal one more hint for the current
// challenge.
type HintRequested struct{}

// OperationFailed reports any rejected remote operation. The message
// is the only distinction preserved between failure kinds.
type OperationFailed struct {
	Message string
}

func (BatchFetched) isMsg()       {}
func (DraftAnswerChanged) isMsg() {}
func (SubmitRequested) isMsg()    {}
func (VerdictReceived) isMsg()    {}
func (AdvanceRequested) isMsg()   {}
func (HintRequested) isMsg()      {}
func (OperationFailed) isMsg()    {}

// Command is an I/O request the reducer hands back to its runtime.
// The runtime executes it off the UI loop and feeds exactly one
// follow-up message back in: BatchFetched or OperationFailed for
// FetchBatch, VerdictReceived or OperationFailed for SubmitAnswer.
type Command interface {
	isCommand()
}

// FetchBatch requests a fresh batch of challenges.
type FetchBatch struct{}

// SubmitAnswer requests grading of Answer against Challenge.
type SubmitAnswer struct {
	Challenge Challenge
	Answer    string
}

func (FetchBatch) isCommand()   {}
func (SubmitAnswer) isCommand() {}

// Reduce applies msg to s and returns the successor state plus an
// optional command. It performs no I/O and touches no shared state,
// so tests can drive entire sessions without a runtime.
func Reduce(s State, msg Msg) (State, Command) {
	switch msg := msg.(type) {
	case BatchFetched:
		return reduceBatchFetched(s, msg.Challenges)

	case DraftAnswerChanged:
		// No challenge to answer yet.
		if s.Current.IsZero() {
			return s, nil
		}
		// A draft edit changes the draft and nothing else; error text
		// is cleared by SubmitRequested, not here.
		s.Draft = msg.Text
		return s, nil

	case SubmitRequested:
		if s.Current.IsZero() || s.Draft == "" {
			return s, nil
		}
		s.ErrText = ""
		return s, SubmitAnswer{Challenge: s.Current, Answer: s.Draft}

	case VerdictReceived:
		s.Verdict = msg.Verdict
		s.ErrText = ""
		s.Phase = PhaseShowingOutcome
		return s, nil

	case AdvanceRequested:
		return reduceAdvance(s)

	case HintRequested:
		if s.Phase != PhasePresenting {
			return s, nil
		}
		s.Hints.RevealNext()
		return s, nil

	case OperationFailed:
		s.ErrText = msg.Message
		s.Phase = PhaseFailed
		return s, nil
	}

	return s, nil
}

// reduceBatchFetched replaces the queue with the new batch and
// presents its first challenge. The last batch to arrive wins, even
// when completions come back out of order.
func reduceBatchFetched(s State, batch []Challenge) (State, Command) {
	s.Queue.Refill(batch)
	next, ok := s.Queue.TakeNext()
	if !ok {
		// Empty batch: stay in Loading rather than presenting the
		// zero-value placeholder as if it were content.
		s.Phase = PhaseLoading
		s.ErrText = ""
		return s, nil
	}
	return present(s, next), nil
}

// reduceAdvance moves past an outcome or a failure. Advancing is also
// the retry path out of PhaseFailed: with an empty queue it schedules
// a fresh fetch.
func reduceAdvance(s State) (State, Command) {
	if s.Phase != PhaseShowingOutcome && s.Phase != PhaseFailed {
		return s, nil
	}
	next, ok := s.Queue.TakeNext()
	if !ok {
		s.Phase = PhaseLoading
		s.ErrText = ""
		return s, FetchBatch{}
	}
	return present(s, next), nil
}

// present installs ch as the current challenge, clearing everything
// scoped to the previous one. The record is replaced wholesale so the
// hint cascade, draft and verdict can never refer to a stale
// challenge.
func present(s State, ch Challenge) State {
	s.Current = ch
	s.Draft = ""
	s.Verdict = ""
	s.ErrText = ""
	s.Hints = newHintCascade(ch)
	s.Phase = PhasePresenting
	return s
}
