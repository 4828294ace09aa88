package prefs

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"almanac/internal/calendar"
)

// Persisted keys. Values are plain strings; anything unparsable falls back to
// the defaults (today, week view) without blocking startup.
const (
	keyFocusedDate = "last_focused_date"
	keyViewMode    = "view_type"
)

//go:embed schema.sql
var schemaFS embed.FS

// DB stores durable view preferences in a local sqlite file.
type DB struct {
	db *sql.DB
}

func appDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	base := filepath.Join(home, ".local", "share", "almanac")
	if err := os.MkdirAll(base, 0o755); err != nil {
		return "", err
	}
	return base, nil
}

// Open opens the preference store in the user's data directory.
func Open() (*DB, error) {
	dir, err := appDataDir()
	if err != nil {
		return nil, err
	}
	return OpenPath(filepath.Join(dir, "almanac.db"))
}

// OpenPath opens the preference store at an explicit path.
func OpenPath(path string) (*DB, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)",
		path,
	)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &DB{db: db}, nil
}

func migrate(db *sql.DB) error {
	b, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	if _, err := db.Exec(string(b)); err != nil {
		return errors.Join(fmt.Errorf("schema apply failed"), err)
	}
	return nil
}

func (d *DB) Close() error { return d.db.Close() }

func (d *DB) get(key string) (string, bool) {
	var value string
	err := d.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

func (d *DB) set(key, value string) error {
	_, err := d.db.Exec(
		`INSERT INTO prefs(key, value) VALUES(?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

// ViewMode returns the persisted view mode, defaulting to week.
func (d *DB) ViewMode() calendar.View {
	if s, ok := d.get(keyViewMode); ok {
		if v, valid := calendar.ParseView(s); valid {
			return v
		}
	}
	return calendar.ViewWeek
}

// SetViewMode persists the view mode.
func (d *DB) SetViewMode(v calendar.View) error {
	return d.set(keyViewMode, string(v))
}

// FocusedDate returns the persisted focused date, defaulting to today in loc.
func (d *DB) FocusedDate(loc *time.Location) time.Time {
	if s, ok := d.get(keyFocusedDate); ok {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return calendar.StartOfDay(t.In(loc))
		}
	}
	return calendar.StartOfDay(time.Now().In(loc))
}

// SetFocusedDate persists the focused date.
func (d *DB) SetFocusedDate(t time.Time) error {
	return d.set(keyFocusedDate, t.Format(time.RFC3339))
}
