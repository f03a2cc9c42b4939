package remote

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/parlo/internal/session"
)

// LoggingService is a decorator that logs every remote call with its
// latency and outcome. Logging failures never affect the call itself.
type LoggingService struct {
	inner Service
	log   *zap.Logger
}

var _ Service = (*LoggingService)(nil)

// WithLogging wraps a Service with call logging.
func WithLogging(s Service, log *zap.Logger) Service {
	return &LoggingService{inner: s, log: log}
}

func (l *LoggingService) FetchBatch(ctx context.Context, learnerID, limit int) ([]session.Challenge, error) {
	start := time.Now()
	batch, err := l.inner.FetchBatch(ctx, learnerID, limit)

	fields := []zap.Field{
		zap.Int("learner_id", learnerID),
		zap.Int("limit", limit),
		zap.Duration("latency", time.Since(start)),
	}
	if err != nil {
		l.log.Warn("fetch batch failed", append(fields, zap.Error(err))...)
		return nil, err
	}
	l.log.Info("fetched challenge batch", append(fields, zap.Int("count", len(batch)))...)
	return batch, nil
}

func (l *LoggingService) SubmitAnswer(ctx context.Context, ch session.Challenge, answer string) (string, error) {
	start := time.Now()
	verdict, err := l.inner.SubmitAnswer(ctx, ch, answer)

	fields := []zap.Field{
		zap.Int("vocab_id", ch.VocabID),
		zap.Int("vocab_study_id", ch.VocabStudyID),
		zap.Duration("latency", time.Since(start)),
	}
	if err != nil {
		l.log.Warn("submit answer failed", append(fields, zap.Error(err))...)
		return "", err
	}
	l.log.Info("answer graded", fields...)
	return verdict, nil
}
