package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/tomato/internal/domain"
	"github.com/alexanderramin/tomato/internal/repository"
	"github.com/alexanderramin/tomato/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupChecklistService(t *testing.T) (ChecklistService, *repository.SQLiteKVRepo, *recordingObserver) {
	t.Helper()
	kv := repository.NewSQLiteKVRepo(testutil.NewTestDB(t))
	obs := &recordingObserver{}
	return NewChecklistService(kv, obs), kv, obs
}

func TestChecklistService_GetReturnsSeedWhenNothingSaved(t *testing.T) {
	svc, _, _ := setupChecklistService(t)

	c, err := svc.Get(context.Background(), "build")
	require.NoError(t, err)
	assert.Len(t, c.Items, 25)
	assert.Empty(t, c.CompletedIDs())
}

func TestChecklistService_TogglePersists(t *testing.T) {
	svc, kv, obs := setupChecklistService(t)
	ctx := context.Background()

	item, err := svc.Toggle(ctx, "qa", 5)
	require.NoError(t, err)
	assert.True(t, item.Completed)
	_, err = svc.Toggle(ctx, "qa", 9)
	require.NoError(t, err)

	// A fresh service over the same store sees the saved state.
	reloaded, err := NewChecklistService(kv).Get(ctx, "qa")
	require.NoError(t, err)
	assert.Equal(t, []int{5, 9}, reloaded.CompletedIDs())

	raw, ok, err := kv.Get(ctx, "gamify-qa-checklist")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, string(raw), `{"id":5,"completed":true}`)

	assert.Equal(t, []string{"checklist.toggle", "checklist.toggle"}, obs.names())
}

func TestChecklistService_ListsAreIndependent(t *testing.T) {
	svc, _, _ := setupChecklistService(t)
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "build", 1)
	require.NoError(t, err)

	tourism, err := svc.Get(ctx, "tourism")
	require.NoError(t, err)
	assert.Empty(t, tourism.CompletedIDs())
}

func TestChecklistService_ToggleTwiceClears(t *testing.T) {
	svc, _, _ := setupChecklistService(t)
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "build", 2)
	require.NoError(t, err)
	item, err := svc.Toggle(ctx, "build", 2)
	require.NoError(t, err)
	assert.False(t, item.Completed)

	c, err := svc.Get(ctx, "build")
	require.NoError(t, err)
	assert.Empty(t, c.CompletedIDs())
}

func TestChecklistService_ToggleErrors(t *testing.T) {
	svc, _, obs := setupChecklistService(t)
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "build", 99)
	assert.ErrorIs(t, err, domain.ErrUnknownChecklistItem)

	_, err = svc.Toggle(ctx, "nope", 1)
	assert.ErrorIs(t, err, domain.ErrUnknownChecklist)

	obs.mu.Lock()
	defer obs.mu.Unlock()
	require.Len(t, obs.events, 2)
	assert.False(t, obs.events[0].Success)
}

func TestChecklistService_ResetRestoresSeed(t *testing.T) {
	svc, kv, obs := setupChecklistService(t)
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "tourism", 1)
	require.NoError(t, err)
	require.NoError(t, svc.Reset(ctx, "tourism"))

	c, err := svc.Get(ctx, "tourism")
	require.NoError(t, err)
	assert.Empty(t, c.CompletedIDs())

	_, ok, err := kv.Get(ctx, "tourism-checklist-tasks")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, obs.names(), "checklist.reset")
}

func TestChecklistService_LoadsFullItemRecords(t *testing.T) {
	svc, kv, _ := setupChecklistService(t)
	ctx := context.Background()

	raw := `[{"id":1,"phase":"Setup & Planning","time":"25m","completed":true},{"id":2,"completed":false},{"id":77,"completed":true}]`
	require.NoError(t, kv.Put(ctx, "gamify-checklist-tasks", []byte(raw)))

	c, err := svc.Get(ctx, "build")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, c.CompletedIDs())
}

func TestChecklistService_CorruptRecord(t *testing.T) {
	svc, kv, _ := setupChecklistService(t)
	ctx := context.Background()
	require.NoError(t, kv.Put(ctx, "gamify-checklist-tasks", []byte("{not json")))

	_, err := svc.Get(ctx, "build")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding checklist build")

	require.NoError(t, svc.Reset(ctx, "build"))
	_, err = svc.Get(ctx, "build")
	assert.NoError(t, err)
}

func TestChecklistService_StoreFailure(t *testing.T) {
	svc := NewChecklistService(testutil.FailingKV{})

	_, err := svc.Get(context.Background(), "build")
	assert.ErrorIs(t, err, testutil.ErrKVUnavailable)

	_, err = svc.Toggle(context.Background(), "build", 1)
	assert.ErrorIs(t, err, testutil.ErrKVUnavailable)
}
