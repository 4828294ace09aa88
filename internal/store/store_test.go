package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"almanac/internal/api"
)

type fakeBackend struct {
	events     []api.Event
	tasks      []api.Task
	nextID     int
	failPut    bool
	failDelete bool
}

func (b *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/events", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(b.events)
		case http.MethodPost:
			var ev api.Event
			json.NewDecoder(r.Body).Decode(&ev)
			b.nextID++
			ev.ID = b.nextID
			b.events = append(b.events, ev)
			json.NewEncoder(w).Encode(ev)
		}
	})
	mux.HandleFunc("/api/events/", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			if b.failPut {
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}
			var ev api.Event
			json.NewDecoder(r.Body).Decode(&ev)
			ev.ID = 1
			json.NewEncoder(w).Encode(ev)
		case http.MethodDelete:
			if b.failDelete {
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}
			json.NewEncoder(w).Encode(map[string]string{"status": "deleted"})
		}
	})
	mux.HandleFunc("/api/tasks", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(b.tasks)
		case http.MethodPost:
			var task api.Task
			json.NewDecoder(r.Body).Decode(&task)
			b.nextID++
			task.ID = b.nextID
			b.tasks = append(b.tasks, task)
			json.NewEncoder(w).Encode(task)
		}
	})
	return mux
}

func newTestStore(t *testing.T, b *fakeBackend) *Store {
	t.Helper()
	srv := httptest.NewServer(b.handler())
	t.Cleanup(srv.Close)
	return New(api.NewClient(srv.URL, ""), time.UTC)
}

func TestLoadMergesEventsAndTasks(t *testing.T) {
	b := &fakeBackend{
		events: []api.Event{
			{ID: 1, Title: "Standup", StartTime: "2025-06-05T09:00:00Z", EndTime: "2025-06-05T09:15:00Z"},
		},
		tasks: []api.Task{
			{ID: 2, Title: "File report", DueDate: "2025-06-05T17:00:00Z"},
		},
		nextID: 2,
	}
	s := newTestStore(t, b)

	items, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("loaded %d items, want 2", len(items))
	}
	if items[0].Kind != KindEvent || items[1].Kind != KindTask {
		t.Fatalf("kinds = %s/%s, want event/task", items[0].Kind, items[1].Kind)
	}
	if items[0].Color != ColorBlue || items[1].Color != ColorGreen {
		t.Fatalf("default colors = %s/%s, want blue/green", items[0].Color, items[1].Color)
	}
	if !items[1].Start.Equal(items[1].End) {
		t.Fatalf("task has a duration: %v - %v", items[1].Start, items[1].End)
	}
}

func TestCreateReconcilesServerID(t *testing.T) {
	b := &fakeBackend{nextID: 41}
	s := newTestStore(t, b)
	if _, err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	created, err := s.Create(context.Background(), Item{
		Kind:  KindEvent,
		Title: "Demo",
		Start: time.Date(2025, 6, 5, 14, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 5, 15, 0, 0, 0, time.UTC),
		Color: ColorPurple,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != "42" {
		t.Fatalf("created id = %q, want server-assigned 42", created.ID)
	}

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("store holds %d items after create, want 1 (no duplicates)", len(items))
	}
	if items[0].ID != "42" {
		t.Fatalf("stored id = %q, want 42", items[0].ID)
	}
}

func TestFailedUpdateLeavesListUnchanged(t *testing.T) {
	b := &fakeBackend{
		events: []api.Event{
			{ID: 1, Title: "Standup", StartTime: "2025-06-05T09:00:00Z", EndTime: "2025-06-05T09:15:00Z"},
		},
		nextID:  1,
		failPut: true,
	}
	s := newTestStore(t, b)
	before, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	changed := before[0]
	changed.Title = "Renamed"
	if _, err := s.Update(context.Background(), changed.ID, changed); err == nil {
		t.Fatalf("Update succeeded against a failing backend")
	}

	after := s.Items()
	if len(after) != 1 || after[0].Title != "Standup" {
		t.Fatalf("list changed after failed update: %+v", after)
	}
}

func TestRemoveFiltersItem(t *testing.T) {
	b := &fakeBackend{
		events: []api.Event{
			{ID: 1, Title: "Standup", StartTime: "2025-06-05T09:00:00Z", EndTime: "2025-06-05T09:15:00Z"},
			{ID: 2, Title: "Review", StartTime: "2025-06-05T11:00:00Z", EndTime: "2025-06-05T12:00:00Z"},
		},
		nextID: 2,
	}
	s := newTestStore(t, b)
	if _, err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := s.Remove(context.Background(), "1", KindEvent); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	items := s.Items()
	if len(items) != 1 || items[0].ID != "2" {
		t.Fatalf("after remove: %+v, want only id 2", items)
	}
}

func TestFailedRemoveKeepsItem(t *testing.T) {
	b := &fakeBackend{
		events: []api.Event{
			{ID: 1, Title: "Standup", StartTime: "2025-06-05T09:00:00Z", EndTime: "2025-06-05T09:15:00Z"},
		},
		nextID:     1,
		failDelete: true,
	}
	s := newTestStore(t, b)
	if _, err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := s.Remove(context.Background(), "1", KindEvent); err == nil {
		t.Fatalf("Remove succeeded against a failing backend")
	}
	if len(s.Items()) != 1 {
		t.Fatalf("item dropped locally after failed delete")
	}
}

func TestUpcomingSortsByStart(t *testing.T) {
	now := time.Date(2025, 6, 5, 8, 0, 0, 0, time.UTC)
	s := New(api.NewClient("http://unused", ""), time.UTC)
	s.items = []Item{
		{ID: "1", Title: "later", Start: now.Add(5 * time.Hour), Kind: KindEvent},
		{ID: "2", Title: "sooner", Start: now.Add(1 * time.Hour), Kind: KindTask},
		{ID: "3", Title: "past", Start: now.Add(-1 * time.Hour), Kind: KindEvent},
		{ID: "4", Title: "far", Start: now.Add(200 * time.Hour), Kind: KindEvent},
	}

	got := s.Upcoming(now, 7*24*time.Hour)
	if len(got) != 2 {
		t.Fatalf("Upcoming returned %d items, want 2", len(got))
	}
	if got[0].ID != "2" || got[1].ID != "1" {
		t.Fatalf("Upcoming order = %s,%s, want 2,1", got[0].ID, got[1].ID)
	}
}
