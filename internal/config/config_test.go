package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "http://127.0.0.1:3001/gql", cfg.Endpoint)
	assert.Equal(t, 1, cfg.LearnerID)
	assert.Equal(t, 5, cfg.BatchLimit)
	assert.Equal(t, "parlo.log", cfg.LogPath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PARLO_ENDPOINT", "http://study.example.com/gql")
	t.Setenv("PARLO_LEARNER_ID", "42")
	t.Setenv("PARLO_BATCH_LIMIT", "10")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://study.example.com/gql", cfg.Endpoint)
	assert.Equal(t, 42, cfg.LearnerID)
	assert.Equal(t, 10, cfg.BatchLimit)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	t.Setenv("PARLO_LEARNER_ID", "0")

	_, err := Load()
	assert.Error(t, err)
}
