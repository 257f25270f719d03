package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/alexanderramin/tomato/internal/domain"
	"github.com/alexanderramin/tomato/internal/repository"
	"github.com/alexanderramin/tomato/internal/service"
	"github.com/alexanderramin/tomato/internal/testutil"
	"github.com/alexanderramin/tomato/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	app   *App
	repo  *repository.SQLiteTaskRepo
	sched *testutil.ManualScheduler
	kv    *testutil.MemoryKV
}

// testApp wires a full App backed by an in-memory DB and a manual clock.
func testApp(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTaskRepo(database)
	sched := testutil.NewManualScheduler()
	kv := testutil.NewMemoryKV()

	tm := timer.New(timer.Options{
		Durations: domain.Durations{WorkSeconds: 3, BreakSeconds: 2},
		Scheduler: sched,
		Notifier:  &testutil.RecordingNotifier{},
		Store:     timer.NewKVStatsStore(kv),
	})
	t.Cleanup(tm.Close)

	return &testEnv{
		app: &App{
			Tasks:      service.NewTaskService(repo, testutil.NewTestUoW(database)),
			Checklists: service.NewChecklistService(repository.NewSQLiteKVRepo(database)),
			Timer:      tm,
		},
		repo:  repo,
		sched: sched,
		kv:    kv,
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func seedTask(t *testing.T, env *testEnv, title string, opts ...testutil.TaskOption) *domain.Task {
	t.Helper()
	task := testutil.NewTestTask(title, opts...)
	require.NoError(t, env.repo.Create(context.Background(), task))
	return task
}

// --- task ---

func TestTaskAdd(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "task", "add", "Write", "report",
		"-p", "high", "-c", "work", "--estimate", "45", "--due", "2026-11-01", "-d", "quarterly numbers")
	require.NoError(t, err)
	assert.Contains(t, out, "Created task")
	assert.Contains(t, out, "Write report")

	tasks, err := env.repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	task := tasks[0]
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	assert.Equal(t, domain.TaskPending, task.Status)
	assert.Equal(t, "work", task.Category)
	assert.Equal(t, "quarterly numbers", task.Description)
	require.NotNil(t, task.EstimatedMin)
	assert.Equal(t, 45, *task.EstimatedMin)
	require.NotNil(t, task.DueDate)
	assert.Equal(t, "2026-11-01", task.DueDate.Format("2006-01-02"))
}

func TestTaskAdd_Invalid(t *testing.T) {
	env := testApp(t)

	_, err := executeCmd(t, env.app, "task", "add", "x", "-p", "urgent")
	assert.ErrorIs(t, err, domain.ErrInvalidTask)

	_, err = executeCmd(t, env.app, "task", "add", "x", "--due", "tomorrow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")

	_, err = executeCmd(t, env.app, "task", "add")
	assert.Error(t, err)
}

func TestTaskList_FilterAndSearch(t *testing.T) {
	env := testApp(t)
	seedTask(t, env, "Pay rent", testutil.WithPriority(domain.PriorityHigh))
	seedTask(t, env, "Call plumber", testutil.WithTaskStatus(domain.TaskCompleted))
	seedTask(t, env, "Read book", testutil.WithDescription("sci-fi"))

	out, err := executeCmd(t, env.app, "task", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Pay rent")
	assert.Contains(t, out, "plumber")
	assert.Contains(t, out, "Read book")

	out, err = executeCmd(t, env.app, "task", "list", "--filter", "completed")
	require.NoError(t, err)
	assert.Contains(t, out, "plumber")
	assert.NotContains(t, out, "Pay rent")

	out, err = executeCmd(t, env.app, "task", "list", "-s", "SCI")
	require.NoError(t, err)
	assert.Contains(t, out, "Read book")
	assert.NotContains(t, out, "Pay rent")

	out, err = executeCmd(t, env.app, "task", "list", "-f", "low")
	require.NoError(t, err)
	assert.Contains(t, out, "No tasks found")

	_, err = executeCmd(t, env.app, "task", "list", "--filter", "someday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid filter")
}

func TestTaskShow(t *testing.T) {
	env := testApp(t)
	task := seedTask(t, env, "Inspect me", testutil.WithDescription("details here"))

	out, err := executeCmd(t, env.app, "task", "show", task.DisplayID())
	require.NoError(t, err)
	assert.Contains(t, out, "INSPECT ME")
	assert.Contains(t, out, "details here")

	_, err = executeCmd(t, env.app, "task", "show", "nope")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskEdit_OnlyChangedFields(t *testing.T) {
	env := testApp(t)
	task := seedTask(t, env, "Draft", testutil.WithCategory("home"), testutil.WithEstimatedMin(30))

	_, err := executeCmd(t, env.app, "task", "edit", task.DisplayID(), "--title", "Final", "--status", "in_progress")
	require.NoError(t, err)

	got, err := env.repo.GetByID(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final", got.Title)
	assert.Equal(t, domain.TaskInProgress, got.Status)
	assert.Equal(t, "home", got.Category)
	require.NotNil(t, got.EstimatedMin)
	assert.Equal(t, 30, *got.EstimatedMin)
}

func TestTaskEdit_ClearDueDate(t *testing.T) {
	env := testApp(t)
	task := seedTask(t, env, "Due soon", testutil.WithDueDate(testNowDate()))

	_, err := executeCmd(t, env.app, "task", "edit", task.ID, "--due", "")
	require.NoError(t, err)

	got, err := env.repo.GetByID(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DueDate)
}

func TestTaskDone_Toggles(t *testing.T) {
	env := testApp(t)
	task := seedTask(t, env, "Ship it")

	out, err := executeCmd(t, env.app, "task", "done", task.DisplayID())
	require.NoError(t, err)
	assert.Contains(t, out, "Completed task")

	out, err = executeCmd(t, env.app, "task", "done", task.DisplayID())
	require.NoError(t, err)
	assert.Contains(t, out, "Reopened task")
}

func TestTaskRemove_Confirmation(t *testing.T) {
	env := testApp(t)
	task := seedTask(t, env, "Disposable")

	_, err := executeCmd(t, env.app, "task", "rm", task.DisplayID())
	assert.ErrorIs(t, err, errNeedsYes)

	var asked string
	env.app.IsInteractive = func() bool { return true }
	env.app.Confirm = func(title string) (bool, error) {
		asked = title
		return false, nil
	}
	out, err := executeCmd(t, env.app, "task", "rm", task.DisplayID())
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled")
	assert.Contains(t, asked, "Disposable")

	out, err = executeCmd(t, env.app, "task", "rm", task.DisplayID(), "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted task")

	_, err = env.repo.GetByID(context.Background(), task.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskSummary(t *testing.T) {
	env := testApp(t)
	seedTask(t, env, "a", testutil.WithPriority(domain.PriorityHigh))
	seedTask(t, env, "b", testutil.WithTaskStatus(domain.TaskCompleted))

	out, err := executeCmd(t, env.app, "task", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "total")
	assert.Contains(t, out, "2")
	assert.Contains(t, out, "50%")
}

// --- stats / sound ---

func TestStats_ShowsCounters(t *testing.T) {
	env := testApp(t)
	env.app.Timer.Start()
	env.sched.TickN(3)

	out, err := executeCmd(t, env.app, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "STATISTICS")
	assert.Contains(t, out, "Work intervals")
	assert.Contains(t, out, "1")
}

func TestStatsReset(t *testing.T) {
	env := testApp(t)
	env.app.Timer.Start()
	env.sched.TickN(3)
	require.Equal(t, 1, env.app.Timer.Snapshot().CompletedWorkIntervals)

	_, err := executeCmd(t, env.app, "stats", "reset")
	assert.ErrorIs(t, err, errNeedsYes)
	assert.Equal(t, 1, env.app.Timer.Snapshot().CompletedWorkIntervals)

	out, err := executeCmd(t, env.app, "stats", "reset", "-y")
	require.NoError(t, err)
	assert.Contains(t, out, "Statistics reset")
	assert.Zero(t, env.app.Timer.Snapshot().CompletedWorkIntervals)

	stored, err := timer.NewKVStatsStore(env.kv).Load()
	require.NoError(t, err)
	assert.Zero(t, stored.CompletedWorkIntervals)
}

func TestStatsReset_InteractiveDecline(t *testing.T) {
	env := testApp(t)
	env.app.Timer.Start()
	env.sched.TickN(3)
	env.app.IsInteractive = func() bool { return true }
	env.app.Confirm = func(string) (bool, error) { return false, nil }

	out, err := executeCmd(t, env.app, "stats", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled")
	assert.Equal(t, 1, env.app.Timer.Snapshot().CompletedWorkIntervals)
}

func TestSound(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "sound")
	require.NoError(t, err)
	assert.Contains(t, out, "Sound is on")

	out, err = executeCmd(t, env.app, "sound", "off")
	require.NoError(t, err)
	assert.Contains(t, out, "Sound is off")

	stored, err := timer.NewKVStatsStore(env.kv).Load()
	require.NoError(t, err)
	assert.False(t, stored.SoundEnabled)

	out, err = executeCmd(t, env.app, "sound", "toggle")
	require.NoError(t, err)
	assert.Contains(t, out, "Sound is on")

	_, err = executeCmd(t, env.app, "sound", "loud")
	assert.Error(t, err)
}

// --- timer ---

func TestTimerCmd_RunsModel(t *testing.T) {
	env := testApp(t)
	var ran tea.Model
	env.app.RunTUI = func(m tea.Model) error {
		ran = m
		return nil
	}

	out, err := executeCmd(t, env.app, "timer", "--mode", "break", "--start")
	require.NoError(t, err)
	require.IsType(t, &timerModel{}, ran)

	tm := ran.(*timerModel)
	assert.Equal(t, domain.ModeBreak, tm.snap.Mode)
	assert.Equal(t, domain.StatusRunning, tm.snap.Status)
	assert.Contains(t, out, "Completed 0 work and 0 break intervals")

	// The command closes the timer: the running countdown is paused.
	assert.Equal(t, domain.StatusPaused, env.app.Timer.Snapshot().Status)
	assert.Zero(t, env.sched.ActiveTickers())
}

func TestTimerCmd_InvalidMode(t *testing.T) {
	env := testApp(t)
	env.app.RunTUI = func(tea.Model) error { return nil }

	_, err := executeCmd(t, env.app, "timer", "--mode", "nap")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mode")
}

func TestRoot_PersistentFlags(t *testing.T) {
	env := testApp(t)
	var dbPath string
	fs := pflag.NewFlagSet("tomato", pflag.ContinueOnError)
	fs.StringVar(&dbPath, "db", "", "")
	env.app.Flags = fs

	_, err := executeCmd(t, env.app, "--db", "/tmp/other.db", "sound")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.db", dbPath)
}

// --- checklist ---

func TestChecklistNames(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "checklist", "names")
	require.NoError(t, err)
	assert.Contains(t, out, "build")
	assert.Contains(t, out, "QA Checklist")
	assert.Contains(t, out, "tourism")
}

func TestChecklistList(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "checklist", "list", "build")
	require.NoError(t, err)
	assert.Contains(t, out, "0/25")
	assert.Contains(t, out, "Scaffold Express.js app")
	assert.Contains(t, out, "Demo & feedback session")
}

func TestChecklistList_PhaseFilter(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "checklist", "list", "build", "-f", "Polish & Deploy")
	require.NoError(t, err)
	assert.Contains(t, out, "Deploy frontend on Vercel")
	assert.NotContains(t, out, "Scaffold Express.js app")

	_, err = executeCmd(t, env.app, "checklist", "list", "build", "-f", "gardening")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownFilter)
	assert.Contains(t, err.Error(), "Backend Setup")
}

func TestChecklistToggle_Persists(t *testing.T) {
	env := testApp(t)

	out, err := executeCmd(t, env.app, "checklist", "toggle", "build", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Completed step 1")
	assert.Contains(t, out, "Completed step 2")
	assert.Contains(t, out, "https://www.youtube.com/watch?v=RGOj5yH7evk")

	out, err = executeCmd(t, env.app, "checklist", "list", "build", "--filter", "completed")
	require.NoError(t, err)
	assert.Contains(t, out, "2/25")
	assert.Contains(t, out, "8.0%")
	assert.NotContains(t, out, "Setup .env files")

	out, err = executeCmd(t, env.app, "checklist", "toggle", "build", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Reopened step 1")
}

func TestChecklistToggle_BadArgs(t *testing.T) {
	env := testApp(t)

	_, err := executeCmd(t, env.app, "checklist", "toggle", "build", "one")
	assert.Error(t, err)

	_, err = executeCmd(t, env.app, "checklist", "toggle", "build", "404")
	assert.ErrorIs(t, err, domain.ErrUnknownChecklistItem)

	_, err = executeCmd(t, env.app, "checklist", "toggle", "chores", "1")
	assert.ErrorIs(t, err, domain.ErrUnknownChecklist)
}

func TestChecklistReset_Confirmation(t *testing.T) {
	env := testApp(t)
	_, err := executeCmd(t, env.app, "checklist", "toggle", "qa", "3")
	require.NoError(t, err)

	_, err = executeCmd(t, env.app, "checklist", "reset", "qa")
	assert.ErrorIs(t, err, errNeedsYes)

	var asked string
	env.app.IsInteractive = func() bool { return true }
	env.app.Confirm = func(title string) (bool, error) {
		asked = title
		return false, nil
	}
	out, err := executeCmd(t, env.app, "checklist", "reset", "qa")
	require.NoError(t, err)
	assert.Contains(t, out, "Cancelled")
	assert.Contains(t, asked, "QA Checklist")

	c, err := env.app.Checklists.Get(context.Background(), "qa")
	require.NoError(t, err)
	assert.Equal(t, []int{3}, c.CompletedIDs())

	env.app.Confirm = func(string) (bool, error) { return true, nil }
	out, err = executeCmd(t, env.app, "checklist", "reset", "qa")
	require.NoError(t, err)
	assert.Contains(t, out, "Reset QA Checklist")

	c, err = env.app.Checklists.Get(context.Background(), "qa")
	require.NoError(t, err)
	assert.Empty(t, c.CompletedIDs())
}
