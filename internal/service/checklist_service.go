package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/tomato/internal/domain"
	"github.com/alexanderramin/tomato/internal/repository"
)

// ChecklistService tracks completion of the seeded checklists. Each list is
// stored as one JSON record under its fixed key.
type ChecklistService interface {
	Get(ctx context.Context, name string) (*domain.Checklist, error)
	Toggle(ctx context.Context, name string, itemID int) (domain.ChecklistItem, error)
	Reset(ctx context.Context, name string) error
}

type checklistService struct {
	kv       repository.KVRepo
	observer UseCaseObserver
	now      func() time.Time
}

func NewChecklistService(kv repository.KVRepo, observers ...UseCaseObserver) ChecklistService {
	return &checklistService{
		kv:       kv,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// checklistRecord is the saved shape: one entry per item. Extra fields in
// older records are ignored.
type checklistRecord struct {
	ID        int  `json:"id"`
	Completed bool `json:"completed"`
}

func (s *checklistService) Get(ctx context.Context, name string) (*domain.Checklist, error) {
	return s.load(ctx, name)
}

func (s *checklistService) Toggle(ctx context.Context, name string, itemID int) (item domain.ChecklistItem, err error) {
	started := s.now()
	defer func() {
		s.observe(ctx, "checklist.toggle", started, err, map[string]any{
			"checklist": name,
			"item":      itemID,
			"completed": item.Completed,
		})
	}()

	c, err := s.load(ctx, name)
	if err != nil {
		return domain.ChecklistItem{}, err
	}
	item, err = c.Toggle(itemID)
	if err != nil {
		return domain.ChecklistItem{}, err
	}
	if err := s.save(ctx, c); err != nil {
		return domain.ChecklistItem{}, err
	}
	return item, nil
}

// Reset drops the saved record so the list reads as its seed again.
func (s *checklistService) Reset(ctx context.Context, name string) (err error) {
	started := s.now()
	defer func() {
		s.observe(ctx, "checklist.reset", started, err, map[string]any{"checklist": name})
	}()

	c, err := domain.NewChecklist(name)
	if err != nil {
		return err
	}
	return s.kv.Delete(ctx, c.Key)
}

func (s *checklistService) load(ctx context.Context, name string) (*domain.Checklist, error) {
	c, err := domain.NewChecklist(name)
	if err != nil {
		return nil, err
	}
	raw, ok, err := s.kv.Get(ctx, c.Key)
	if err != nil {
		return nil, fmt.Errorf("loading checklist %s: %w", name, err)
	}
	if !ok {
		return c, nil
	}

	var records []checklistRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decoding checklist %s (reset it to start over): %w", name, err)
	}
	var done []int
	for _, r := range records {
		if r.Completed {
			done = append(done, r.ID)
		}
	}
	c.MarkCompleted(done)
	return c, nil
}

func (s *checklistService) save(ctx context.Context, c *domain.Checklist) error {
	records := make([]checklistRecord, len(c.Items))
	for i, it := range c.Items {
		records[i] = checklistRecord{ID: it.ID, Completed: it.Completed}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encoding checklist %s: %w", c.Name, err)
	}
	if err := s.kv.Put(ctx, c.Key, raw); err != nil {
		return fmt.Errorf("saving checklist %s: %w", c.Name, err)
	}
	return nil
}

func (s *checklistService) observe(ctx context.Context, name string, started time.Time, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  s.now().Sub(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
}
