package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownChecklist     = errors.New("unknown checklist")
	ErrUnknownChecklistItem = errors.New("unknown checklist item")
	ErrUnknownFilter        = errors.New("unknown checklist filter")
)

type ChecklistPriority string

const (
	ChecklistHigh   ChecklistPriority = "High"
	ChecklistMedium ChecklistPriority = "Medium"
	ChecklistLow    ChecklistPriority = "Low"
)

// ChecklistItem is one step of a seeded checklist. Group is the phase or
// category the item belongs to. Minutes and Priority are zero when the list
// does not carry them.
type ChecklistItem struct {
	ID          int
	Group       string
	Description string
	Minutes     int
	Priority    ChecklistPriority
	Resource    string
	ResourceURL string
	Completed   bool
}

// Checklist is a fixed list of items whose completion is saved under Key.
type Checklist struct {
	Name       string
	Title      string
	Key        string
	GroupLabel string
	Items      []ChecklistItem
}

type checklistDef struct {
	title      string
	key        string
	groupLabel string
	seed       []ChecklistItem
}

var checklistDefs = map[string]checklistDef{
	"build":   {title: "GamifyMyLife Build Plan", key: "gamify-checklist-tasks", groupLabel: "phase", seed: buildPlanSeed},
	"qa":      {title: "QA Checklist", key: "gamify-qa-checklist", groupLabel: "category", seed: qaSeed},
	"tourism": {title: "Tourism Management Build Plan", key: "tourism-checklist-tasks", groupLabel: "phase", seed: tourismSeed},
}

// ChecklistNames lists the seeded checklists in display order.
func ChecklistNames() []string {
	return []string{"build", "qa", "tourism"}
}

// NewChecklist returns a fresh copy of the named seed list with nothing
// completed.
func NewChecklist(name string) (*Checklist, error) {
	def, ok := checklistDefs[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownChecklist, name, strings.Join(ChecklistNames(), ", "))
	}
	items := make([]ChecklistItem, len(def.seed))
	copy(items, def.seed)
	return &Checklist{
		Name:       name,
		Title:      def.title,
		Key:        def.key,
		GroupLabel: def.groupLabel,
		Items:      items,
	}, nil
}

// Toggle flips the completion of item id and returns the updated item.
func (c *Checklist) Toggle(id int) (ChecklistItem, error) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Completed = !c.Items[i].Completed
			return c.Items[i], nil
		}
	}
	return ChecklistItem{}, fmt.Errorf("%w: %s has no item %d", ErrUnknownChecklistItem, c.Name, id)
}

// Reset clears every completion mark.
func (c *Checklist) Reset() {
	for i := range c.Items {
		c.Items[i].Completed = false
	}
}

// CompletedIDs returns the IDs of completed items in list order.
func (c *Checklist) CompletedIDs() []int {
	var ids []int
	for _, it := range c.Items {
		if it.Completed {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// MarkCompleted sets completion from a saved ID set. IDs not in the list are
// ignored.
func (c *Checklist) MarkCompleted(ids []int) {
	done := make(map[int]bool, len(ids))
	for _, id := range ids {
		done[id] = true
	}
	for i := range c.Items {
		c.Items[i].Completed = done[c.Items[i].ID]
	}
}

// Groups returns the distinct groups in first-seen order.
func (c *Checklist) Groups() []string {
	seen := make(map[string]bool)
	var groups []string
	for _, it := range c.Items {
		if !seen[it.Group] {
			seen[it.Group] = true
			groups = append(groups, it.Group)
		}
	}
	return groups
}

// Filter selects items by "all", "completed", "pending", a priority
// ("high", "medium", "low") or a group name. Matching is case-insensitive
// and an empty filter means all.
func (c *Checklist) Filter(filter string) ([]ChecklistItem, error) {
	f := strings.ToLower(strings.TrimSpace(filter))
	var keep func(ChecklistItem) bool
	switch f {
	case "", "all":
		keep = func(ChecklistItem) bool { return true }
	case "completed", "done":
		keep = func(it ChecklistItem) bool { return it.Completed }
	case "pending":
		keep = func(it ChecklistItem) bool { return !it.Completed }
	case "high", "medium", "low":
		keep = func(it ChecklistItem) bool { return strings.EqualFold(string(it.Priority), f) }
	default:
		group := ""
		for _, g := range c.Groups() {
			if strings.EqualFold(g, f) {
				group = g
				break
			}
		}
		if group == "" {
			return nil, fmt.Errorf("%w %q for %s", ErrUnknownFilter, filter, c.Name)
		}
		keep = func(it ChecklistItem) bool { return it.Group == group }
	}

	var out []ChecklistItem
	for _, it := range c.Items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out, nil
}

// ChecklistProgress summarises completion over the whole list.
type ChecklistProgress struct {
	Completed        int
	Total            int
	Percent          float64
	CompletedMinutes int
	TotalMinutes     int
	HighCompleted    int
	HighTotal        int
}

// RemainingMinutes is the estimated time left on pending items.
func (p ChecklistProgress) RemainingMinutes() int {
	return p.TotalMinutes - p.CompletedMinutes
}

func (c *Checklist) Progress() ChecklistProgress {
	var p ChecklistProgress
	for _, it := range c.Items {
		p.Total++
		p.TotalMinutes += it.Minutes
		if it.Priority == ChecklistHigh {
			p.HighTotal++
		}
		if !it.Completed {
			continue
		}
		p.Completed++
		p.CompletedMinutes += it.Minutes
		if it.Priority == ChecklistHigh {
			p.HighCompleted++
		}
	}
	if p.Total > 0 {
		p.Percent = float64(p.Completed) / float64(p.Total) * 100
	}
	return p
}
