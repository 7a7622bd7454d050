package library

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Book is a library record. Fields holds every multi-valued column keyed by
// field key (for example "authors" or "#genre"); title and uuid are kept on
// the book itself.
type Book struct {
	ID     int64
	UUID   string
	Title  string
	Fields map[string][]string
}

// Values returns the values a book holds for key.
func (b Book) Values(key string) []string {
	switch key {
	case "title":
		return []string{b.Title}
	case "uuid":
		return []string{b.UUID}
	}
	return b.Fields[key]
}

// AddBook inserts a book with a fresh uuid.
func (db *DB) AddBook(ctx context.Context, title string, fields map[string][]string) (Book, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Book{}, fmt.Errorf("book title cannot be empty")
	}

	book := Book{UUID: uuid.NewString(), Title: title, Fields: make(map[string][]string)}

	err := db.WithTx(func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `INSERT INTO books (uuid, title) VALUES (?, ?)`, book.UUID, book.Title)
		if err != nil {
			return err
		}
		book.ID, err = res.LastInsertId()
		if err != nil {
			return err
		}

		keys := make([]string, 0, len(fields))
		for key := range fields {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			field := strings.TrimSpace(key)
			if field == "" || field == "title" || field == "uuid" {
				continue
			}
			position := 0
			for _, value := range fields[key] {
				value = strings.TrimSpace(value)
				if value == "" {
					continue
				}
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO book_fields (book_id, field, position, value) VALUES (?, ?, ?, ?)`,
					book.ID, field, position, value,
				); err != nil {
					return err
				}
				book.Fields[field] = append(book.Fields[field], value)
				position++
			}
		}
		return nil
	})
	if err != nil {
		return Book{}, fmt.Errorf("library: add book %q: %w", title, err)
	}

	return book, nil
}

// Books loads every book ordered by id.
func (db *DB) Books(ctx context.Context) ([]Book, error) {
	rows, err := db.sql.QueryContext(ctx, `SELECT id, uuid, title FROM books ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []Book
	byID := make(map[int64]int)
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.UUID, &b.Title); err != nil {
			return nil, err
		}
		b.Fields = make(map[string][]string)
		byID[b.ID] = len(books)
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	fieldRows, err := db.sql.QueryContext(ctx,
		`SELECT book_id, field, value FROM book_fields ORDER BY book_id, field, position`)
	if err != nil {
		return nil, err
	}
	defer fieldRows.Close()

	for fieldRows.Next() {
		var (
			id           int64
			field, value string
		)
		if err := fieldRows.Scan(&id, &field, &value); err != nil {
			return nil, err
		}
		if i, ok := byID[id]; ok {
			books[i].Fields[field] = append(books[i].Fields[field], value)
		}
	}

	return books, fieldRows.Err()
}
