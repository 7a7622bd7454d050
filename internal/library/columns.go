package library

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Column is a user-defined metadata column. Its field key is the label
// prefixed with '#'.
type Column struct {
	Label    string
	Name     string
	Datatype string
}

func (c Column) Key() string {
	return "#" + c.Label
}

var labelPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

var ValidDatatypes = map[string]bool{
	"text":        true,
	"enumeration": true,
	"series":      true,
	"rating":      true,
	"comments":    true,
	"datetime":    true,
	"int":         true,
	"float":       true,
	"bool":        true,
}

func (db *DB) AddColumn(ctx context.Context, col Column) error {
	col.Label = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(col.Label), "#"))
	if !labelPattern.MatchString(col.Label) {
		return fmt.Errorf("invalid column label %q: use lower-case letters, digits and underscores", col.Label)
	}
	if !ValidDatatypes[col.Datatype] {
		return fmt.Errorf("invalid column datatype %q", col.Datatype)
	}
	if strings.TrimSpace(col.Name) == "" {
		col.Name = col.Label
	}

	_, err := db.sql.ExecContext(ctx,
		`INSERT INTO custom_columns (label, name, datatype) VALUES (?, ?, ?)`,
		col.Label, col.Name, col.Datatype,
	)
	if err != nil {
		return fmt.Errorf("library: add column %q: %w", col.Label, err)
	}
	return nil
}

func (db *DB) Columns(ctx context.Context) ([]Column, error) {
	rows, err := db.sql.QueryContext(ctx, `SELECT label, name, datatype FROM custom_columns ORDER BY label`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cols []Column
	for rows.Next() {
		var c Column
		if err := rows.Scan(&c.Label, &c.Name, &c.Datatype); err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	return cols, rows.Err()
}
