package service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/tomato/internal/domain"
	"github.com/alexanderramin/tomato/internal/repository"
	"github.com/alexanderramin/tomato/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recordingObserver) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Name
	}
	return out
}

func setupTaskService(t *testing.T) (TaskService, *repository.SQLiteTaskRepo, *recordingObserver) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTaskRepo(database)
	obs := &recordingObserver{}
	return NewTaskService(repo, testutil.NewTestUoW(database), obs), repo, obs
}

func TestTaskService_CreateAppliesDefaults(t *testing.T) {
	svc, repo, obs := setupTaskService(t)
	ctx := context.Background()

	task := &domain.Task{Title: "Write report"}
	require.NoError(t, svc.Create(ctx, task))

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, domain.PriorityMedium, task.Priority)
	assert.Equal(t, domain.TaskPending, task.Status)
	assert.False(t, task.CreatedAt.IsZero())

	stored, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Write report", stored.Title)
	assert.Equal(t, []string{"task.create"}, obs.names())
}

func TestTaskService_CreateRejectsInvalid(t *testing.T) {
	svc, repo, obs := setupTaskService(t)
	ctx := context.Background()

	err := svc.Create(ctx, &domain.Task{Title: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidTask)

	err = svc.Create(ctx, &domain.Task{Title: "x", Priority: "urgent"})
	assert.ErrorIs(t, err, domain.ErrInvalidTask)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.Len(t, obs.events, 2)
	assert.False(t, obs.events[0].Success)
	assert.Error(t, obs.events[0].Err)
}

func TestTaskService_GetByPrefix(t *testing.T) {
	svc, repo, _ := setupTaskService(t)
	ctx := context.Background()

	task := testutil.NewTestTask("Prefix me")
	require.NoError(t, repo.Create(ctx, task))

	got, err := svc.Get(ctx, task.DisplayID())
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)

	got, err = svc.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)

	_, err = svc.Get(ctx, "zzzz")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Get(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidTask)
}

func TestTaskService_ListFilters(t *testing.T) {
	svc, repo, _ := setupTaskService(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	seed := []*domain.Task{
		testutil.NewTestTask("Old high", testutil.WithPriority(domain.PriorityHigh), testutil.WithCreatedAt(base)),
		testutil.NewTestTask("Done low", testutil.WithPriority(domain.PriorityLow),
			testutil.WithTaskStatus(domain.TaskCompleted), testutil.WithCreatedAt(base.Add(time.Hour))),
		testutil.NewTestTask("Doing", testutil.WithTaskStatus(domain.TaskInProgress),
			testutil.WithDescription("grocery run"), testutil.WithCreatedAt(base.Add(2*time.Hour))),
	}
	for _, task := range seed {
		require.NoError(t, repo.Create(ctx, task))
	}

	titles := func(f domain.TaskFilter) []string {
		tasks, err := svc.List(ctx, f)
		require.NoError(t, err)
		out := make([]string, len(tasks))
		for i, task := range tasks {
			out[i] = task.Title
		}
		return out
	}

	assert.Equal(t, []string{"Doing", "Done low", "Old high"}, titles(domain.TaskFilter{Kind: domain.FilterAll}))
	assert.Equal(t, []string{"Doing", "Old high"}, titles(domain.TaskFilter{Kind: domain.FilterPending}))
	assert.Equal(t, []string{"Done low"}, titles(domain.TaskFilter{Kind: domain.FilterCompleted}))
	assert.Equal(t, []string{"Old high"}, titles(domain.TaskFilter{Kind: domain.FilterHigh}))
	assert.Equal(t, []string{"Doing"}, titles(domain.TaskFilter{Kind: domain.FilterAll, Search: "GROCERY"}))
	assert.Empty(t, titles(domain.TaskFilter{Kind: domain.FilterCompleted, Search: "grocery"}))
}

func TestTaskService_UpdateBumpsTimestamp(t *testing.T) {
	svc, repo, _ := setupTaskService(t)
	ctx := context.Background()
	old := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	task := testutil.NewTestTask("Edit me", testutil.WithCreatedAt(old))
	require.NoError(t, repo.Create(ctx, task))

	task.Title = "Edited"
	task.Priority = domain.PriorityHigh
	require.NoError(t, svc.Update(ctx, task))

	stored, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Edited", stored.Title)
	assert.Equal(t, domain.PriorityHigh, stored.Priority)
	assert.True(t, stored.UpdatedAt.After(old))
	assert.True(t, stored.CreatedAt.Equal(old))

	task.Title = ""
	assert.ErrorIs(t, svc.Update(ctx, task), domain.ErrInvalidTask)
}

func TestTaskService_ToggleStatus(t *testing.T) {
	svc, repo, _ := setupTaskService(t)
	ctx := context.Background()

	task := testutil.NewTestTask("Toggle", testutil.WithTaskStatus(domain.TaskInProgress))
	require.NoError(t, repo.Create(ctx, task))

	toggled, err := svc.ToggleStatus(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskCompleted, toggled.Status)

	toggled, err = svc.ToggleStatus(ctx, task.DisplayID())
	require.NoError(t, err)
	assert.Equal(t, domain.TaskPending, toggled.Status)

	stored, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskPending, stored.Status)
}

func TestTaskService_ToggleStatusRollsBack(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	task := testutil.NewTestTask("Stay pending")
	require.NoError(t, repo.Create(ctx, task))

	failUoW := &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 1,
		Err:    fmt.Errorf("injected update failure"),
	}
	svc := NewTaskService(repo, failUoW)

	_, err := svc.ToggleStatus(ctx, task.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected update failure")

	stored, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskPending, stored.Status)
}

func TestTaskService_Delete(t *testing.T) {
	svc, repo, _ := setupTaskService(t)
	ctx := context.Background()

	task := testutil.NewTestTask("Remove me")
	require.NoError(t, repo.Create(ctx, task))

	deleted, err := svc.Delete(ctx, task.DisplayID())
	require.NoError(t, err)
	assert.Equal(t, task.ID, deleted.ID)

	_, err = repo.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Delete(ctx, task.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskService_Summary(t *testing.T) {
	svc, repo, _ := setupTaskService(t)
	ctx := context.Background()

	empty, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskSummary{}, empty)

	for _, task := range []*domain.Task{
		testutil.NewTestTask("a", testutil.WithPriority(domain.PriorityHigh)),
		testutil.NewTestTask("b", testutil.WithPriority(domain.PriorityHigh), testutil.WithTaskStatus(domain.TaskCompleted)),
		testutil.NewTestTask("c"),
		testutil.NewTestTask("d", testutil.WithTaskStatus(domain.TaskCompleted)),
	} {
		require.NoError(t, repo.Create(ctx, task))
	}

	s, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Completed)
	assert.Equal(t, 2, s.Outstanding)
	assert.Equal(t, 1, s.OutstandingHighPrio)
	assert.InDelta(t, 0.5, s.CompletionFraction, 1e-9)
}

func TestLogUseCaseObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	obs := NewLogUseCaseObserver(logger)
	ctx := context.Background()

	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "task.list", Success: true, Fields: map[string]any{"count": 3}})
	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "task.create", Err: fmt.Errorf("boom")})
	obs.ObserveUseCase(ctx, UseCaseEvent{Name: "checklist.toggle", Success: true})

	out := buf.String()
	assert.Contains(t, out, "use_case=task.list")
	assert.Contains(t, out, "count=3")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "error=boom")
	assert.Contains(t, out, "component=task ")
	assert.Contains(t, out, "component=checklist ")

	_, ok := NewLogUseCaseObserver(nil).(NoopUseCaseObserver)
	assert.True(t, ok)
}
