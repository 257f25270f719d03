package service

import (
	"context"

	"github.com/alexanderramin/tomato/internal/domain"
)

// TaskService is the task manager surface used by the CLI. Lookups accept a
// full ID or an unambiguous prefix.
type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	Get(ctx context.Context, idOrPrefix string) (*domain.Task, error)
	List(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, idOrPrefix string) (*domain.Task, error)
	ToggleStatus(ctx context.Context, idOrPrefix string) (*domain.Task, error)
	Summary(ctx context.Context) (domain.TaskSummary, error)
}
