package session

import "testing"

// drive applies msg and returns the new state, discarding the command.
func drive(t *testing.T, s State, msg Msg) State {
	t.Helper()
	next, _ := Reduce(s, msg)
	return next
}

// solveAndAdvance walks one challenge from Presenting through a graded
// outcome to the next AdvanceRequested, returning the resulting state
// and the command the advance produced.
func solveAndAdvance(t *testing.T, s State) (State, Command) {
	t.Helper()
	if s.Phase != PhasePresenting {
		t.Fatalf("phase = %v, want presenting", s.Phase)
	}
	s = drive(t, s, DraftAnswerChanged{Text: "answer"})
	s, cmd := Reduce(s, SubmitRequested{})
	if _, ok := cmd.(SubmitAnswer); !ok {
		t.Fatalf("SubmitRequested produced %T, want SubmitAnswer", cmd)
	}
	s = drive(t, s, VerdictReceived{Verdict: "Correct!"})
	return Reduce(s, AdvanceRequested{})
}

func TestReduce_FirstBatchPresents(t *testing.T) {
	s := NewState()
	s, cmd := Reduce(s, BatchFetched{Challenges: batchOf(2)})

	if cmd != nil {
		t.Errorf("BatchFetched produced command %T, want none", cmd)
	}
	if s.Phase != PhasePresenting {
		t.Fatalf("phase = %v, want presenting", s.Phase)
	}
	if s.Current.VocabID != 1 {
		t.Errorf("current VocabID = %d, want 1", s.Current.VocabID)
	}
	if s.Queue.Remaining() != 1 {
		t.Errorf("Remaining() = %d, want 1", s.Queue.Remaining())
	}
	if s.Draft != "" || s.ErrText != "" {
		t.Errorf("draft = %q, errText = %q, want both empty", s.Draft, s.ErrText)
	}
}

func TestReduce_EmptyBatchKeepsLoading(t *testing.T) {
	s := NewState()
	s, cmd := Reduce(s, BatchFetched{Challenges: nil})

	if s.Phase != PhaseLoading {
		t.Errorf("phase = %v, want loading", s.Phase)
	}
	if cmd != nil {
		t.Errorf("empty BatchFetched produced command %T, want none", cmd)
	}
	if !s.Current.IsZero() {
		t.Errorf("current = %+v, want zero value", s.Current)
	}
}

func TestReduce_ZeroValueNeverSurfaces(t *testing.T) {
	s := NewState()

	// Before the first batch, learner actions must not conjure up a
	// presentable challenge.
	s = drive(t, s, DraftAnswerChanged{Text: "hola"})
	if s.Draft != "" {
		t.Errorf("draft = %q before first batch, want empty", s.Draft)
	}

	next, cmd := Reduce(s, SubmitRequested{})
	if cmd != nil {
		t.Errorf("SubmitRequested before first batch produced %T", cmd)
	}
	if next.Phase != PhaseLoading {
		t.Errorf("phase = %v, want loading", next.Phase)
	}
}

func TestReduce_DraftEditsAreIdempotent(t *testing.T) {
	s := drive(t, NewState(), BatchFetched{Challenges: batchOf(1)})

	s = drive(t, s, DraftAnswerChanged{Text: "  gato "})
	first := s
	s = drive(t, s, DraftAnswerChanged{Text: "  gato "})

	if s.Draft != "  gato " {
		t.Errorf("draft = %q, want verbatim %q", s.Draft, "  gato ")
	}
	if s.Phase != first.Phase || s.Verdict != first.Verdict || s.ErrText != first.ErrText {
		t.Error("repeated identical draft edit changed observable state")
	}
}

func TestReduce_DraftEditLeavesErrorTextAlone(t *testing.T) {
	s := NewState()
	s = drive(t, s, BatchFetched{Challenges: batchOf(1)})
	s = drive(t, s, OperationFailed{Message: "network down"})

	s = drive(t, s, DraftAnswerChanged{Text: "gato"})

	if s.Draft != "gato" {
		t.Errorf("draft = %q, want %q", s.Draft, "gato")
	}
	if s.ErrText != "network down" {
		t.Errorf("errText = %q, want preserved until the next submit", s.ErrText)
	}
}

func TestReduce_SubmitWithEmptyDraftIsNoOp(t *testing.T) {
	s := drive(t, NewState(), BatchFetched{Challenges: batchOf(1)})

	next, cmd := Reduce(s, SubmitRequested{})
	if cmd != nil {
		t.Errorf("SubmitRequested with empty draft produced %T", cmd)
	}
	if next.Phase != PhasePresenting {
		t.Errorf("phase = %v, want presenting", next.Phase)
	}
}

func TestReduce_SubmitCarriesChallengeAndDraft(t *testing.T) {
	s := drive(t, NewState(), BatchFetched{Challenges: batchOf(2)})
	s = drive(t, s, DraftAnswerChanged{Text: "gato"})
	s = drive(t, s, OperationFailed{Message: "boom"})

	// Submitting is allowed out of Failed too; the draft survives.
	next, cmd := Reduce(s, SubmitRequested{})
	sub, ok := cmd.(SubmitAnswer)
	if !ok {
		t.Fatalf("command = %T, want SubmitAnswer", cmd)
	}
	if sub.Answer != "gato" {
		t.Errorf("submitted answer = %q, want %q", sub.Answer, "gato")
	}
	if sub.Challenge.VocabID != 1 {
		t.Errorf("submitted VocabID = %d, want 1", sub.Challenge.VocabID)
	}
	if next.ErrText != "" {
		t.Errorf("errText = %q after submit, want cleared", next.ErrText)
	}
}

func TestReduce_QueueExhaustionTriggersRefetch(t *testing.T) {
	const n = 4
	s := drive(t, NewState(), BatchFetched{Challenges: batchOf(n)})

	// The first challenge is current; n-1 advances walk the rest.
	for i := 2; i <= n; i++ {
		var cmd Command
		s, cmd = solveAndAdvance(t, s)
		if cmd != nil {
			t.Fatalf("advance to challenge %d produced command %T", i, cmd)
		}
		if s.Current.VocabID != i {
			t.Fatalf("current VocabID = %d, want %d", s.Current.VocabID, i)
		}
	}

	// The next advance finds the queue drained and schedules a fetch
	// instead of yielding a challenge.
	s, cmd := solveAndAdvance(t, s)
	if _, ok := cmd.(FetchBatch); !ok {
		t.Fatalf("advance on drained queue produced %T, want FetchBatch", cmd)
	}
	if s.Phase != PhaseLoading {
		t.Errorf("phase = %v, want loading", s.Phase)
	}
}

func TestReduce_AdvanceResetsHintCascade(t *testing.T) {
	batch := []Challenge{
		{VocabID: 1, Prompt: "p1", FirstLang: "f1", PartOfSpeech: "noun", Infinitive: "to be"},
		{VocabID: 2, Prompt: "p2", FirstLang: "f2", PartOfSpeech: "verb"},
	}
	s := drive(t, NewState(), BatchFetched{Challenges: batch})

	s = drive(t, s, HintRequested{})
	if len(s.Hints.Revealed()) != 1 {
		t.Fatalf("revealed = %d, want 1", len(s.Hints.Revealed()))
	}

	s, _ = solveAndAdvance(t, s)

	if len(s.Hints.Revealed()) != 0 {
		t.Errorf("revealed = %d after advance, want 0", len(s.Hints.Revealed()))
	}
	if s.Hints.Total() != 1 {
		t.Errorf("Total() = %d for second challenge, want 1", s.Hints.Total())
	}
}

func TestReduce_HintIgnoredOutsidePresenting(t *testing.T) {
	s := drive(t, NewState(), BatchFetched{Challenges: []Challenge{fullHintChallenge()}})
	s = drive(t, s, DraftAnswerChanged{Text: "x"})
	s, _ = Reduce(s, SubmitRequested{})
	s = drive(t, s, VerdictReceived{Verdict: "Close."})

	s = drive(t, s, HintRequested{})
	if len(s.Hints.Revealed()) != 0 {
		t.Errorf("hint revealed while showing outcome; revealed = %d", len(s.Hints.Revealed()))
	}
}

func TestReduce_OutOfOrderBatches(t *testing.T) {
	// Fetch A started first but resolves second; fetch B resolves
	// first. There is no sequence fencing: the last completion to
	// arrive wins and silently overwrites the queue. This test pins
	// the documented behavior; if request-id fencing is ever added it
	// must be updated deliberately.
	batchA := []Challenge{{VocabID: 10, Prompt: "a", FirstLang: "a"}}
	batchB := []Challenge{{VocabID: 20, Prompt: "b", FirstLang: "b"}, {VocabID: 21, Prompt: "b2", FirstLang: "b2"}}

	s := NewState()
	s = drive(t, s, BatchFetched{Challenges: batchB})
	s = drive(t, s, BatchFetched{Challenges: batchA})

	if s.Current.VocabID != 10 {
		t.Errorf("current VocabID = %d, want 10 (batch A arrived last)", s.Current.VocabID)
	}
	if s.Queue.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0 (batch B remainder discarded)", s.Queue.Remaining())
	}
}

func TestReduce_HappyPathScenario(t *testing.T) {
	batch := []Challenge{
		{VocabID: 1, Prompt: "cat", FirstLang: "cat"},
		{VocabID: 2, Prompt: "dog", FirstLang: "dog"},
	}

	s := drive(t, NewState(), BatchFetched{Challenges: batch})
	if s.Phase != PhasePresenting || s.Current.Prompt != "cat" {
		t.Fatalf("phase = %v, prompt = %q, want presenting/cat", s.Phase, s.Current.Prompt)
	}

	s = drive(t, s, DraftAnswerChanged{Text: "gato"})
	s, cmd := Reduce(s, SubmitRequested{})
	sub, ok := cmd.(SubmitAnswer)
	if !ok || sub.Answer != "gato" {
		t.Fatalf("command = %#v, want SubmitAnswer{gato}", cmd)
	}

	s = drive(t, s, VerdictReceived{Verdict: "Correct!"})
	if s.Phase != PhaseShowingOutcome || s.Verdict != "Correct!" {
		t.Fatalf("phase = %v, verdict = %q", s.Phase, s.Verdict)
	}

	s, cmd = Reduce(s, AdvanceRequested{})
	if cmd != nil {
		t.Fatalf("advance produced %T, want none", cmd)
	}
	if s.Phase != PhasePresenting || s.Current.Prompt != "dog" {
		t.Fatalf("phase = %v, prompt = %q, want presenting/dog", s.Phase, s.Current.Prompt)
	}

	s = drive(t, s, DraftAnswerChanged{Text: "perro"})
	s, _ = Reduce(s, SubmitRequested{})
	s = drive(t, s, VerdictReceived{Verdict: "Correct!"})

	s, cmd = Reduce(s, AdvanceRequested{})
	if _, ok := cmd.(FetchBatch); !ok {
		t.Fatalf("advance on empty queue produced %T, want FetchBatch", cmd)
	}
	if s.Phase != PhaseLoading {
		t.Errorf("phase = %v, want loading", s.Phase)
	}
}

func TestReduce_FailureAndRecoveryScenario(t *testing.T) {
	s := NewState()

	s = drive(t, s, OperationFailed{Message: "network down"})
	if s.Phase != PhaseFailed || s.ErrText != "network down" {
		t.Fatalf("phase = %v, errText = %q", s.Phase, s.ErrText)
	}

	// Advancing out of Failed retries the fetch.
	s, cmd := Reduce(s, AdvanceRequested{})
	if _, ok := cmd.(FetchBatch); !ok {
		t.Fatalf("retry produced %T, want FetchBatch", cmd)
	}
	if s.Phase != PhaseLoading {
		t.Fatalf("phase = %v, want loading", s.Phase)
	}

	s = drive(t, s, BatchFetched{Challenges: batchOf(1)})
	if s.Phase != PhasePresenting {
		t.Errorf("phase = %v after recovery, want presenting", s.Phase)
	}
	if s.ErrText != "" {
		t.Errorf("errText = %q after recovery, want empty", s.ErrText)
	}
}

func TestReduce_FailurePreservesCurrentChallenge(t *testing.T) {
	s := drive(t, NewState(), BatchFetched{Challenges: batchOf(1)})
	s = drive(t, s, DraftAnswerChanged{Text: "answer"})
	s = drive(t, s, OperationFailed{Message: "grading backend hiccup"})

	if s.Current.VocabID != 1 {
		t.Errorf("current VocabID = %d after failure, want 1", s.Current.VocabID)
	}
	if s.Draft != "answer" {
		t.Errorf("draft = %q after failure, want preserved", s.Draft)
	}
}
