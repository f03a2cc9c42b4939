// Package remote implements the client side of the remote study
// service: fetching challenge batches and submitting answers for
// grading through the service's GraphQL endpoint.
package remote

import (
	"context"

	"github.com/abhisek/parlo/internal/session"
)

// Service is the remote study service contract. Both operations block
// until the service responds and both can fail; callers run them off
// the UI loop and feed the result back as a single message. Failures
// carry only a human-readable message across that boundary — the
// session treats every error the same way.
type Service interface {
	// FetchBatch fetches up to limit challenges for the learner.
	// There is no pagination cursor; every call requests from the
	// start of the learner's pool.
	FetchBatch(ctx context.Context, learnerID, limit int) ([]session.Challenge, error)

	// SubmitAnswer submits one answer for grading and returns the
	// verdict text the service produced. The verdict is free text,
	// shown to the learner verbatim, not a structured score.
	SubmitAnswer(ctx context.Context, ch session.Challenge, answer string) (string, error)
}
