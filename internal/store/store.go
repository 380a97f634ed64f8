// Package store persists script globals in a SQLite database so a later
// run can pick up where the last one stopped.
package store

import (
	"context"
	"database/sql"
	"strconv"
	"unicode/utf8"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/peter-r-g/CodeItOut/internal/types"
	"github.com/peter-r-g/CodeItOut/script"
)

const schema = `CREATE TABLE IF NOT EXISTS globals (
	position INTEGER NOT NULL,
	name     TEXT PRIMARY KEY,
	kind     TEXT NOT NULL,
	value    TEXT NOT NULL
)`

type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "creating schema")
	}
	return &Store{db: db}, nil
}

func (st *Store) Close() error {
	return st.db.Close()
}

// Saved is one persisted global
type Saved struct {
	Name  string
	Value script.Value
}

func encode(v script.Value) (string, bool) {
	switch raw := v.Raw().(type) {
	case bool:
		return strconv.FormatBool(raw), true
	case rune:
		return string(raw), true
	case float64:
		return strconv.FormatFloat(raw, 'g', -1, 64), true
	case string:
		return raw, true
	}
	return "", false
}

func decode(kind, text string) (script.Value, error) {
	k, ok := types.ByIdentifier(kind)
	if !ok {
		return script.Value{}, errors.Errorf("unknown kind %q", kind)
	}

	switch k {
	case types.Boolean:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return script.Value{}, errors.Wrap(err, "decoding bool")
		}
		return script.From(b)
	case types.Character:
		r, size := utf8.DecodeRuneInString(text)
		if size == 0 || size != len(text) {
			return script.Value{}, errors.Errorf("decoding char %q", text)
		}
		return script.From(r)
	case types.Number:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return script.Value{}, errors.Wrap(err, "decoding number")
		}
		return script.From(f)
	case types.String:
		return script.From(text)
	}
	return script.Value{}, errors.Errorf("kind %q cannot be stored", kind)
}

// Save replaces the stored globals with the literal globals of s. Methods
// and host variables are not stored.
func (st *Store) Save(ctx context.Context, s *script.Script) (int, error) {
	tx, err := st.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "saving globals")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM globals"); err != nil {
		return 0, errors.Wrap(err, "saving globals")
	}

	globals := s.Globals()
	saved := 0
	for i, name := range s.GlobalNames() {
		v := globals[name]
		if v.IsVariable() {
			continue
		}
		text, ok := encode(v)
		if !ok {
			continue
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO globals (position, name, kind, value) VALUES (?, ?, ?, ?)",
			i, name, v.Type().Identifier(), text)
		if err != nil {
			return 0, errors.Wrapf(err, "saving %s", name)
		}
		saved++
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "saving globals")
	}
	return saved, nil
}

// Load returns the stored globals in their original order
func (st *Store) Load(ctx context.Context) ([]Saved, error) {
	rows, err := st.db.QueryContext(ctx, "SELECT name, kind, value FROM globals ORDER BY position")
	if err != nil {
		return nil, errors.Wrap(err, "loading globals")
	}
	defer rows.Close()

	var result []Saved
	for rows.Next() {
		var name, kind, text string
		if err := rows.Scan(&name, &kind, &text); err != nil {
			return nil, errors.Wrap(err, "loading globals")
		}
		v, err := decode(kind, text)
		if err != nil {
			return nil, errors.Wrapf(err, "loading %s", name)
		}
		result = append(result, Saved{Name: name, Value: v})
	}
	return result, errors.Wrap(rows.Err(), "loading globals")
}

// Restore adds every stored global to s. Names s already defines are skipped.
func (st *Store) Restore(ctx context.Context, s *script.Script) (int, error) {
	saved, err := st.Load(ctx)
	if err != nil {
		return 0, err
	}

	restored := 0
	for _, g := range saved {
		err := s.AddGlobal(g.Name, g.Value)
		if errors.Cause(err) == script.ErrGlobalRedefined {
			continue
		}
		if err != nil {
			return restored, err
		}
		restored++
	}
	return restored, nil
}
