// Package session implements the study-session state machine: a queue
// of vocabulary challenges, a hint cascade for the current challenge,
// and a pure reducer that turns messages into state transitions plus
// commands for the runtime to execute.
package session

// Challenge is one vocabulary prompt-and-grading unit issued to the
// learner. A challenge is built only by decoding a batch from the
// remote study service and is never mutated afterwards; when the
// session moves on, the whole record is replaced, never patched.
//
// The zero value is a valid placeholder that exists before the first
// batch arrives. It must never be shown to the learner as real
// content; the Loading phase covers the window where it is current.
type Challenge struct {
	VocabID      int
	VocabStudyID int

	// Prompt is the localized instruction shown to the learner.
	Prompt string

	// FirstLang is the text to translate, in the learner's first
	// language.
	FirstLang string

	// PartOfSpeech, Infinitive, Hint and UserNotes feed the hint
	// cascade. Any of them may be empty.
	PartOfSpeech string
	Infinitive   string
	Hint         string
	UserNotes    string

	// NumLearningWords is the number of words expected in the answer.
	NumLearningWords int
}

// IsZero reports whether c is the placeholder zero value.
func (c Challenge) IsZero() bool {
	return c == Challenge{}
}
