package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"almanac/internal/api"
	"almanac/internal/calendar"
	"almanac/internal/config"
	"almanac/internal/notify"
	"almanac/internal/prefs"
	"almanac/internal/push"
	"almanac/internal/store"
)

type dialog int

const (
	dialogNone dialog = iota
	dialogEvent
	dialogTask
	dialogChooser
)

type selectionKind int

const (
	selNone selectionKind = iota
	selItem
	selSlot
)

// selection tracks what the active dialog is editing: an existing item by id,
// or an empty slot by date.
type selection struct {
	kind selectionKind
	id   string
	slot time.Time
}

// calendarToggle is one sidebar calendar-list entry. Unchecking it hides items
// of its color from the grids.
type calendarToggle struct {
	name    string
	color   string
	checked bool
}

type Model struct {
	width, height int

	cfg       config.Config
	st        style
	loc       *time.Location
	weekStart time.Weekday

	store *store.Store
	prefs *prefs.DB

	// shell state
	view           calendar.View
	focused        time.Time
	cursor         time.Time // selected day cell within the visible range
	cursorHour     int       // selected hour in week/day views
	itemIdx        int       // -1 means no item selected on the cursor day
	sidebarVisible bool
	activeDialog   dialog
	sel            selection

	// data
	items   []store.Item
	loading bool

	// sidebar
	myCalendars    []calendarToggle
	otherCalendars []calendarToggle
	myExpanded     bool
	otherExpanded  bool

	// dialogs
	eventForm  eventForm
	taskForm   taskForm
	chooserIdx int

	// notifications
	notifier   *notify.Notifier
	reminders  chan push.Reminder
	cancelPush context.CancelFunc

	// time
	now time.Time

	status   string
	quitting bool
}

// New assembles the shell. The store and preference DB are owned by the caller
// and injected, never reached through globals.
func New(cfg config.Config, st *store.Store, pdb *prefs.DB) Model {
	loc := cfg.Location()
	now := time.Now().In(loc)

	focused := now
	view := calendar.ViewWeek
	if pdb != nil {
		focused = pdb.FocusedDate(loc)
		view = pdb.ViewMode()
	}

	return Model{
		cfg:            cfg,
		st:             newStyle(),
		loc:            loc,
		weekStart:      cfg.WeekStart(),
		store:          st,
		prefs:          pdb,
		view:           view,
		focused:        calendar.StartOfDay(focused),
		cursor:         calendar.StartOfDay(focused),
		cursorHour:     9,
		itemIdx:        -1,
		sidebarVisible: true,
		myExpanded:     true,
		otherExpanded:  false,
		myCalendars: []calendarToggle{
			{name: "My Calendar", color: store.ColorBlue, checked: true},
			{name: "Work", color: store.ColorGreen, checked: true},
			{name: "Personal", color: store.ColorRed, checked: true},
		},
		otherCalendars: []calendarToggle{
			{name: "Holidays", color: store.ColorYellow, checked: true},
			{name: "Birthdays", color: store.ColorPurple, checked: false},
		},
		notifier:  notify.New(cfg.Notify.Enabled),
		reminders: make(chan push.Reminder, 8),
		now:       now,
		loading:   true,
	}
}

// Run starts the program and blocks until the shell exits.
func Run(cfg config.Config) error {
	client := api.NewClient(cfg.Server.URL, cfg.Server.Token)
	st := store.New(client, cfg.Location())

	pdb, err := prefs.Open()
	if err != nil {
		// Preferences are a convenience; never block startup on them.
		pdb = nil
	}

	m := New(cfg, st, pdb)

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelPush = cancel
	go m.runPush(ctx, client)

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, runErr := p.Run()
	cancel()
	if pdb != nil {
		_ = pdb.Close()
	}
	return runErr
}

// runPush resolves the signed-in user and keeps the reminder subscription
// alive for the shell's lifetime.
func (m Model) runPush(ctx context.Context, client *api.Client) {
	user, err := client.GetUser(ctx)
	if err != nil {
		return // unauthenticated session gets no push channel
	}
	wsURL, err := push.URLFor(client.BaseURL(), user.ID)
	if err != nil {
		return
	}
	push.NewListener(wsURL).Listen(ctx, m.reminders)
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tickMinute(), m.loadItemsCmd(), m.waitReminder())
}

// ---------- messages & commands ----------

type tickMsg struct{ now time.Time }

type itemsLoadedMsg struct {
	items []store.Item
	err   error
}

type itemSavedMsg struct {
	item    store.Item
	created bool
	err     error
}

type itemDeletedMsg struct {
	title string
	err   error
}

type reminderMsg struct{ r push.Reminder }

func tickMinute() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg { return tickMsg{now: t} })
}

func (m Model) loadItemsCmd() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		items, err := s.Load(context.Background())
		return itemsLoadedMsg{items: items, err: err}
	}
}

func (m Model) createItemCmd(it store.Item) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		created, err := s.Create(context.Background(), it)
		return itemSavedMsg{item: created, created: true, err: err}
	}
}

func (m Model) updateItemCmd(id string, it store.Item) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		updated, err := s.Update(context.Background(), id, it)
		return itemSavedMsg{item: updated, err: err}
	}
}

func (m Model) deleteItemCmd(id string, kind store.Kind, title string) tea.Cmd {
	s := m.store
	return func() tea.Msg {
		err := s.Remove(context.Background(), id, kind)
		return itemDeletedMsg{title: title, err: err}
	}
}

// waitReminder re-arms after every reminderMsg so the channel keeps draining.
func (m Model) waitReminder() tea.Cmd {
	ch := m.reminders
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return reminderMsg{r: r}
	}
}

// ---------- shared helpers ----------

// visibleDays is the cell range for the current view.
func (m Model) visibleDays() []time.Time {
	return calendar.Range(m.focused, m.view, m.weekStart)
}

// hiddenColors collects the colors of unchecked sidebar calendars.
func (m Model) hiddenColors() map[string]bool {
	hidden := map[string]bool{}
	for _, c := range m.myCalendars {
		if !c.checked {
			hidden[c.color] = true
		}
	}
	for _, c := range m.otherCalendars {
		if !c.checked {
			hidden[c.color] = true
		}
	}
	return hidden
}

// itemsOn returns the visible items on a day, events before tasks, each sorted
// by start time.
func (m Model) itemsOn(day time.Time) []store.Item {
	hidden := m.hiddenColors()
	var out []store.Item
	for _, it := range m.items {
		if hidden[it.Color] {
			continue
		}
		if calendar.SameDay(it.Start, day) {
			out = append(out, it)
		}
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].Start.Before(out[j-1].Start); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

func (m *Model) setStatus(s string) { m.status = s }

func (m *Model) persistFocused() {
	if m.prefs != nil {
		_ = m.prefs.SetFocusedDate(m.focused)
	}
}

func (m *Model) persistView() {
	if m.prefs != nil {
		_ = m.prefs.SetViewMode(m.view)
	}
}
