package session

import "fmt"

// HintCascade reveals precomputed hints for one challenge, one at a
// time. The hint list is computed exactly once, when the challenge
// becomes current, in a fixed precedence order: part of speech,
// infinitive, other hints, user notes. Empty fields are skipped.
//
// Hints are revealed front to back, least revealing first. The
// original client revealed them back to front, but that was an
// artifact of popping from the tail of its list rather than a design
// choice, so the order is corrected here.
type HintCascade struct {
	available []string
	revealed  []string
}

// newHintCascade builds the cascade for ch.
func newHintCascade(ch Challenge) HintCascade {
	var hints []string
	if ch.PartOfSpeech != "" {
		hints = append(hints, fmt.Sprintf("Part of speech: %s", ch.PartOfSpeech))
	}
	if ch.Infinitive != "" {
		hints = append(hints, fmt.Sprintf("Infinitive: %s", ch.Infinitive))
	}
	if ch.Hint != "" {
		hints = append(hints, fmt.Sprintf("Other hints: %s", ch.Hint))
	}
	if ch.UserNotes != "" {
		hints = append(hints, fmt.Sprintf("Your notes: %s", ch.UserNotes))
	}
	return HintCascade{available: hints}
}

// RevealNext moves the next available hint onto the revealed list and
// returns it. Once every hint has been revealed, further calls are
// no-ops returning false.
func (h *HintCascade) RevealNext() (string, bool) {
	if len(h.available) == 0 {
		return "", false
	}
	next := h.available[0]
	h.available = h.available[1:]
	h.revealed = append(h.revealed, next)
	return next, true
}

// More reports whether at least one hint remains unrevealed.
func (h *HintCascade) More() bool {
	return len(h.available) > 0
}

// Revealed returns the hints shown so far, in reveal order.
func (h *HintCascade) Revealed() []string {
	return h.revealed
}

// Total returns the number of hints the current challenge carries,
// revealed or not.
func (h *HintCascade) Total() int {
	return len(h.available) + len(h.revealed)
}
