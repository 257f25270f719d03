package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/tomato/internal/db"
	"github.com/alexanderramin/tomato/internal/domain"
	"github.com/alexanderramin/tomato/internal/repository"
	"github.com/google/uuid"
)

type taskService struct {
	tasks    repository.TaskRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

func NewTaskService(tasks repository.TaskRepo, uow db.UnitOfWork, observers ...UseCaseObserver) TaskService {
	return &taskService{
		tasks:    tasks,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) (err error) {
	started := s.now()
	defer func() {
		s.observe(ctx, "task.create", started, err, map[string]any{"priority": string(t.Priority)})
	}()

	t.ApplyDefaults()
	if err := t.Validate(); err != nil {
		return err
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.CreatedAt = started
	t.UpdatedAt = started
	return s.tasks.Create(ctx, t)
}

func (s *taskService) Get(ctx context.Context, idOrPrefix string) (*domain.Task, error) {
	return resolveTask(ctx, s.tasks, idOrPrefix)
}

func (s *taskService) List(ctx context.Context, filter domain.TaskFilter) (tasks []*domain.Task, err error) {
	started := s.now()
	defer func() {
		s.observe(ctx, "task.list", started, err, map[string]any{
			"filter": string(filter.Kind),
			"count":  len(tasks),
		})
	}()

	all, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Apply(all), nil
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) (err error) {
	started := s.now()
	defer func() {
		s.observe(ctx, "task.update", started, err, map[string]any{"task_id": t.ID})
	}()

	if err := t.Validate(); err != nil {
		return err
	}
	t.UpdatedAt = started
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Delete(ctx context.Context, idOrPrefix string) (deleted *domain.Task, err error) {
	started := s.now()
	defer func() {
		s.observe(ctx, "task.delete", started, err, nil)
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		t, err := resolveTask(ctx, txTasks, idOrPrefix)
		if err != nil {
			return err
		}
		if err := txTasks.Delete(ctx, t.ID); err != nil {
			return err
		}
		deleted = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// ToggleStatus flips completed tasks back to pending and everything else to
// completed. The read and write share one transaction.
func (s *taskService) ToggleStatus(ctx context.Context, idOrPrefix string) (toggled *domain.Task, err error) {
	started := s.now()
	defer func() {
		fields := map[string]any{}
		if toggled != nil {
			fields["status"] = string(toggled.Status)
		}
		s.observe(ctx, "task.toggle_status", started, err, fields)
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		t, err := resolveTask(ctx, txTasks, idOrPrefix)
		if err != nil {
			return err
		}
		t.ToggleStatus(s.now())
		if err := txTasks.Update(ctx, t); err != nil {
			return err
		}
		toggled = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toggled, nil
}

func (s *taskService) Summary(ctx context.Context) (domain.TaskSummary, error) {
	all, err := s.tasks.List(ctx)
	if err != nil {
		return domain.TaskSummary{}, err
	}
	return domain.SummarizeTasks(all), nil
}

func (s *taskService) observe(ctx context.Context, name string, started time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  s.now().Sub(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
}

// resolveTask tries an exact ID first, then a prefix match.
func resolveTask(ctx context.Context, tasks repository.TaskRepo, idOrPrefix string) (*domain.Task, error) {
	idOrPrefix = strings.TrimSpace(idOrPrefix)
	if idOrPrefix == "" {
		return nil, fmt.Errorf("%w: task id is required", domain.ErrInvalidTask)
	}
	t, err := tasks.GetByID(ctx, idOrPrefix)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return tasks.GetByPrefix(ctx, idOrPrefix)
}
