package study

import (
	"github.com/abhisek/parlo/internal/session"
)

// batchFetchedMsg is sent when an async challenge fetch succeeds.
type batchFetchedMsg struct {
	challenges []session.Challenge
}

// verdictMsg is sent when an async answer submission succeeds.
type verdictMsg struct {
	verdict string
}

// opFailedMsg is sent when any async remote operation fails.
type opFailedMsg struct {
	err error
}
