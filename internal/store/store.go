// Package store keeps small user preferences, such as the last mood, in a
// local SQLite key-value table.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/iburimskiy/mood-ambience/internal/mood"
)

const upsertPref = `
	INSERT INTO prefs (key, value, updated_at) VALUES (:key, :value, :updated_at)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

const (
	keyTime    = "mood.time"
	keyWeather = "mood.weather"
)

// Store wraps a SQLite connection.
type Store struct {
	conn *sqlx.DB
}

type entry struct {
	Key       string `db:"key"`
	Value     string `db:"value"`
	UpdatedAt int64  `db:"updated_at"`
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate store: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	_, err := s.conn.Exec(`
	CREATE TABLE IF NOT EXISTS prefs (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);`)
	return err
}

// Get returns the value stored under key, and whether it exists.
func (s *Store) Get(key string) (string, bool, error) {
	var e entry
	err := s.conn.Get(&e, `SELECT key, value, updated_at FROM prefs WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return e.Value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.conn.NamedExec(upsertPref,
		entry{Key: key, Value: value, UpdatedAt: time.Now().Unix()})
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// SaveMood records the time and weather of s.
func (s *Store) SaveMood(st mood.State) error {
	tx, err := s.conn.Beginx()
	if err != nil {
		return fmt.Errorf("save mood: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().Unix()
	for _, e := range []entry{
		{Key: keyTime, Value: strconv.FormatFloat(st.Time, 'g', -1, 64), UpdatedAt: now},
		{Key: keyWeather, Value: strconv.Itoa(int(st.Weather)), UpdatedAt: now},
	} {
		if _, err := tx.NamedExec(upsertPref, e); err != nil {
			return fmt.Errorf("save mood: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save mood: %w", err)
	}
	slog.Debug("mood saved", "time", st.Time, "weather", int(st.Weather))
	return nil
}

// LoadMood returns the saved time and weather. ok is false when nothing
// usable has been saved yet.
func (s *Store) LoadMood() (t float64, w mood.Weather, ok bool, err error) {
	tv, found, err := s.Get(keyTime)
	if err != nil || !found {
		return 0, 0, false, err
	}
	wv, found, err := s.Get(keyWeather)
	if err != nil || !found {
		return 0, 0, false, err
	}

	t, perr := strconv.ParseFloat(tv, 64)
	wi, werr := strconv.Atoi(wv)
	if perr != nil || werr != nil {
		slog.Warn("ignoring malformed saved mood", "time", tv, "weather", wv)
		return 0, 0, false, nil
	}
	return t, mood.Weather(wi), true, nil
}
