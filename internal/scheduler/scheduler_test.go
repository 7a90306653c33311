package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddJobValidSchedule(t *testing.T) {
	s := New(zerolog.Nop())

	job := NewExperimentJob(func(ctx context.Context) error { return nil })
	assert.NoError(t, s.AddJob("@every 1h", job))
	assert.NoError(t, s.AddJob("0 0 * * * *", job))
}

func TestAddJobInvalidSchedule(t *testing.T) {
	s := New(zerolog.Nop())

	job := NewExperimentJob(func(ctx context.Context) error { return nil })
	assert.Error(t, s.AddJob("not a schedule", job))
}

func TestRunNow(t *testing.T) {
	s := New(zerolog.Nop())

	ran := false
	job := NewExperimentJob(func(ctx context.Context) error {
		ran = true
		return nil
	})

	require.NoError(t, s.RunNow(job))
	assert.True(t, ran)
}

func TestRunNowPropagatesError(t *testing.T) {
	s := New(zerolog.Nop())

	wantErr := errors.New("experiment failed")
	job := NewExperimentJob(func(ctx context.Context) error { return wantErr })

	assert.ErrorIs(t, s.RunNow(job), wantErr)
}

func TestExperimentJobName(t *testing.T) {
	job := NewExperimentJob(func(ctx context.Context) error { return nil })
	assert.Equal(t, "experiment", job.Name())
}

func TestStartStop(t *testing.T) {
	s := New(zerolog.Nop())
	s.Start()
	s.Stop()
}
