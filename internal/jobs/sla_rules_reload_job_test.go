package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"eta/internal/core/domain/model/sla"
	"eta/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReloader struct {
	mock.Mock
}

func (m *MockReloader) Reload(ctx context.Context) (*sla.RuleSet, error) {
	args := m.Called(ctx)
	set, _ := args.Get(0).(*sla.RuleSet)
	return set, args.Error(1)
}

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestSlaRulesReloadJob_Run_Success(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	reloader := new(MockReloader)
	reloader.On("Reload", mock.Anything).Return(sla.EmptyRuleSet(), nil).Once()
	job := jobs.NewSlaRulesReloadJob(reloader, "", newLogger(&buf))

	// Act
	job.Run()

	// Assert
	reloader.AssertExpectations(t)
	assert.Contains(t, buf.String(), "SLA rules reloaded")
	assert.Contains(t, buf.String(), "component=sla_rules_reload_job")
}

func TestSlaRulesReloadJob_Run_FailureIsLogged(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	reloader := new(MockReloader)
	reloader.On("Reload", mock.Anything).Return(nil, errors.New("yaml: line 3")).Once()
	job := jobs.NewSlaRulesReloadJob(reloader, "", newLogger(&buf))

	// Act
	job.Run()

	// Assert
	assert.Contains(t, buf.String(), "keeping previous rules")
	assert.Contains(t, buf.String(), "yaml: line 3")
}

func TestSlaRulesReloadJob_Start_InvalidSchedule(t *testing.T) {
	var buf bytes.Buffer
	job := jobs.NewSlaRulesReloadJob(new(MockReloader), "every minute", newLogger(&buf))

	require.Error(t, job.Start())
}

func TestJobManager_StartAndStop(t *testing.T) {
	var buf bytes.Buffer
	manager := jobs.NewJobManager(new(MockReloader), "0 0 0 1 1 *", newLogger(&buf))

	require.NoError(t, manager.StartAll())
	manager.StopAll()

	assert.Contains(t, buf.String(), "SLA rules reload job started")
	assert.Contains(t, buf.String(), "SLA rules reload job stopped")
}

func TestJobManager_StartAll_WrapsError(t *testing.T) {
	var buf bytes.Buffer
	manager := jobs.NewJobManager(new(MockReloader), "bogus", newLogger(&buf))

	err := manager.StartAll()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "sla rules reload job")
}
