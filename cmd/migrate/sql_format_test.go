package main

import (
	"io/fs"
	"strings"
	"testing"

	migrations "bookstore/db/migrations"
)

func TestSQLMigrations_HaveGooseDirectives(t *testing.T) {
	entries, err := fs.ReadDir(migrations.FS, ".")
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		b, err := fs.ReadFile(migrations.FS, e.Name())
		if err != nil {
			t.Fatalf("ReadFile(%s): %v", e.Name(), err)
		}
		s := string(b)
		if !strings.Contains(s, "-- +goose Up") {
			t.Fatalf("%s missing '-- +goose Up'", e.Name())
		}
		if !strings.Contains(s, "-- +goose Down") {
			t.Fatalf("%s missing '-- +goose Down'", e.Name())
		}
	}
}

func TestSQLMigrations_CreateBooksTable(t *testing.T) {
	b, err := fs.ReadFile(migrations.FS, "00001_create_books.sql")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	for _, col := range []string{"isbn", "amazon_url", "author", "language", "pages", "publisher", "title", "year"} {
		if !strings.Contains(string(b), col) {
			t.Errorf("books migration missing column %q", col)
		}
	}
}

func TestSQLMigrations_AddInsertionSequence(t *testing.T) {
	b, err := fs.ReadFile(migrations.FS, "00002_add_books_seq.sql")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(b), "seq BIGINT GENERATED ALWAYS AS IDENTITY") {
		t.Error("books migration must add an identity seq column")
	}
}
