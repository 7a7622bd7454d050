package library

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// Prefs stores JSON-encoded preference values in the library database.
type Prefs struct {
	db *sql.DB
}

// Get decodes the value stored under key. Missing or undecodable values
// yield def.
func (p *Prefs) Get(key string, def any) any {
	var raw string
	if err := p.db.QueryRow(`SELECT val FROM preferences WHERE key = ?`, key).Scan(&raw); err != nil {
		return def
	}

	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return def
	}
	return value
}

func (p *Prefs) Set(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("library: encode preference %q: %w", key, err)
	}

	_, err = p.db.Exec(
		`INSERT INTO preferences (key, val) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET val = excluded.val`,
		key, string(data),
	)
	if err != nil {
		return fmt.Errorf("library: store preference %q: %w", key, err)
	}
	return nil
}

func (p *Prefs) Contains(key string) bool {
	var n int
	if err := p.db.QueryRow(`SELECT COUNT(1) FROM preferences WHERE key = ?`, key).Scan(&n); err != nil {
		return false
	}
	return n > 0
}

// Keys lists every stored preference key in order.
func (p *Prefs) Keys() ([]string, error) {
	rows, err := p.db.Query(`SELECT key FROM preferences ORDER BY key`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}
