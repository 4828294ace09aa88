package store

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"sync"
	"time"

	"almanac/internal/api"
)

// Store keeps the merged in-memory list of events and tasks, mirroring the
// backend. Mutations go to the backend first; local state is reconciled only
// after the server confirms, so a failed call leaves the list untouched.
type Store struct {
	client *api.Client
	loc    *time.Location

	mu    sync.Mutex
	items []Item
}

func New(client *api.Client, loc *time.Location) *Store {
	if loc == nil {
		loc = time.Local
	}
	return &Store{client: client, loc: loc}
}

// Items returns a snapshot of the current list.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Load fetches both backend collections and replaces the list.
func (s *Store) Load(ctx context.Context) ([]Item, error) {
	events, err := s.client.GetEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch events: %w", err)
	}
	tasks, err := s.client.GetTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch tasks: %w", err)
	}

	items := make([]Item, 0, len(events)+len(tasks))
	for _, ev := range events {
		it, err := itemFromEvent(ev, s.loc)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	for _, task := range tasks {
		it, err := itemFromTask(task, s.loc)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return items, nil
}

// Create sends the item to the backend and appends the server's copy, which
// carries the assigned id. The caller's temporary identity is never kept.
func (s *Store) Create(ctx context.Context, it Item) (Item, error) {
	var created Item
	var err error
	switch it.Kind {
	case KindTask:
		var t api.Task
		t, err = s.client.CreateTask(ctx, it.toTask())
		if err == nil {
			created, err = itemFromTask(t, s.loc)
		}
	default:
		var ev api.Event
		ev, err = s.client.CreateEvent(ctx, it.toEvent())
		if err == nil {
			created, err = itemFromEvent(ev, s.loc)
		}
	}
	if err != nil {
		return Item{}, err
	}

	s.mu.Lock()
	s.items = append(s.items, created)
	s.mu.Unlock()
	return created, nil
}

// Update sends the item's fields to the backend and replaces the stored item
// by id with the server's copy.
func (s *Store) Update(ctx context.Context, id string, it Item) (Item, error) {
	numID, err := strconv.Atoi(id)
	if err != nil {
		return Item{}, fmt.Errorf("bad item id %q: %w", id, err)
	}

	var updated Item
	switch it.Kind {
	case KindTask:
		var t api.Task
		t, err = s.client.UpdateTask(ctx, numID, it.toTask())
		if err == nil {
			updated, err = itemFromTask(t, s.loc)
		}
	default:
		var ev api.Event
		ev, err = s.client.UpdateEvent(ctx, numID, it.toEvent())
		if err == nil {
			updated, err = itemFromEvent(ev, s.loc)
		}
	}
	if err != nil {
		return Item{}, err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// Remove deletes the item from the backend and filters it out of the list.
func (s *Store) Remove(ctx context.Context, id string, kind Kind) error {
	numID, err := strconv.Atoi(id)
	if err != nil {
		return fmt.Errorf("bad item id %q: %w", id, err)
	}

	if kind == KindTask {
		err = s.client.DeleteTask(ctx, numID)
	} else {
		err = s.client.DeleteEvent(ctx, numID)
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.mu.Unlock()
	return nil
}

// Get returns the stored item with the given id.
func (s *Store) Get(id string) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Upcoming returns items starting between now and now+window, sorted by start.
func (s *Store) Upcoming(now time.Time, window time.Duration) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Item
	limit := now.Add(window)
	for _, it := range s.items {
		if !it.Start.Before(now) && it.Start.Before(limit) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}
