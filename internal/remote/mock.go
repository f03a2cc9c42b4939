package remote

import (
	"context"
	"errors"
	"sync"

	"github.com/abhisek/parlo/internal/session"
)

var errExhausted = errors.New("no canned results left")

// BatchResult is a canned FetchBatch result for the MockService.
type BatchResult struct {
	Challenges []session.Challenge
	Err        error
}

// VerdictResult is a canned SubmitAnswer result for the MockService.
type VerdictResult struct {
	Verdict string
	Err     error
}

// FetchCall records one FetchBatch invocation.
type FetchCall struct {
	LearnerID int
	Limit     int
}

// SubmitCall records one SubmitAnswer invocation.
type SubmitCall struct {
	Challenge session.Challenge
	Answer    string
}

// MockService is a deterministic Service for tests. It returns canned
// results in FIFO order and records every call.
type MockService struct {
	mu       sync.Mutex
	batches  []BatchResult
	verdicts []VerdictResult

	FetchCalls  []FetchCall
	SubmitCalls []SubmitCall
}

var _ Service = (*MockService)(nil)

// NewMockService creates an empty MockService; queue results with
// AddBatch and AddVerdict.
func NewMockService() *MockService {
	return &MockService{}
}

// AddBatch queues a canned FetchBatch result.
func (m *MockService) AddBatch(r BatchResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batches = append(m.batches, r)
}

// AddVerdict queues a canned SubmitAnswer result.
func (m *MockService) AddVerdict(r VerdictResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.verdicts = append(m.verdicts, r)
}

// FetchBatch returns the next canned batch, or an ErrTransport when
// the queue is empty.
func (m *MockService) FetchBatch(_ context.Context, learnerID, limit int) ([]session.Challenge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.FetchCalls = append(m.FetchCalls, FetchCall{LearnerID: learnerID, Limit: limit})

	if len(m.batches) == 0 {
		return nil, &ErrTransport{Err: errExhausted}
	}
	r := m.batches[0]
	m.batches = m.batches[1:]
	return r.Challenges, r.Err
}

// SubmitAnswer returns the next canned verdict, or an ErrTransport
// when the queue is empty.
func (m *MockService) SubmitAnswer(_ context.Context, ch session.Challenge, answer string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SubmitCalls = append(m.SubmitCalls, SubmitCall{Challenge: ch, Answer: answer})

	if len(m.verdicts) == 0 {
		return "", &ErrTransport{Err: errExhausted}
	}
	r := m.verdicts[0]
	m.verdicts = m.verdicts[1:]
	return r.Verdict, r.Err
}
