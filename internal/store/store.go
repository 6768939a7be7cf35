// Package store persists the last fetched article batch and small
// pieces of session state (bookmarks, theme, last refresh) in a local
// sqlite database.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/srikar0313/TechPulse/internal/news"
)

type Store struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating store dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	s := &Store{readDB: readDB, writeDB: writeDB}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS articles (
			position    INTEGER PRIMARY KEY,
			id          TEXT NOT NULL,
			title       TEXT NOT NULL,
			image       TEXT NOT NULL DEFAULT '',
			source      TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			published   TEXT NOT NULL,
			link        TEXT NOT NULL,
			category    TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	var errs []error
	if s.readDB != nil {
		errs = append(errs, s.readDB.Close())
	}
	if s.writeDB != nil {
		errs = append(errs, s.writeDB.Close())
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// ReplaceArticles swaps the stored batch for a new one in a single
// transaction. Each refresh fully replaces the previous batch; there
// is no incremental merge.
func (s *Store) ReplaceArticles(articles []news.Article) error {
	tx, err := s.writeDB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM articles`); err != nil {
		return fmt.Errorf("clearing previous batch: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO articles (position, id, title, image, source, description, published, link, category)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, a := range articles {
		_, err := stmt.Exec(i, a.ID, a.Title, a.Image, a.Source, a.Description, a.PublishedAt, a.Link, a.Category)
		if err != nil {
			return fmt.Errorf("storing article %s: %w", a.ID, err)
		}
	}

	return tx.Commit()
}

// Articles returns the stored batch in its original order.
func (s *Store) Articles() ([]news.Article, error) {
	rows, err := s.readDB.Query(`
		SELECT id, title, image, source, description, published, link, category
		FROM articles ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying articles: %w", err)
	}
	defer rows.Close()

	var articles []news.Article
	for rows.Next() {
		var a news.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Image, &a.Source, &a.Description, &a.PublishedAt, &a.Link, &a.Category); err != nil {
			return nil, fmt.Errorf("scanning article: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// Count reports how many articles the stored batch holds.
func (s *Store) Count() (int, error) {
	var n int
	err := s.readDB.QueryRow(`SELECT COUNT(*) FROM articles`).Scan(&n)
	return n, err
}

// Meta returns the value for key, or "" when absent.
func (s *Store) Meta(key string) (string, error) {
	var value string
	err := s.readDB.QueryRow(`SELECT value FROM meta WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

func (s *Store) SetMeta(key, value string) error {
	_, err := s.writeDB.Exec(`
		INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

// SetLastRefresh records the completion time of a refresh.
func (s *Store) SetLastRefresh(t time.Time) error {
	return s.SetMeta("last_refresh", t.Format(time.RFC3339))
}

// LastRefresh returns the recorded refresh time, or the zero time when
// none has happened yet or the value does not parse.
func (s *Store) LastRefresh() time.Time {
	value, err := s.Meta("last_refresh")
	if err != nil || value == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Size reports the database file size in bytes.
func (s *Store) Size(dbPath string) (int64, error) {
	info, err := os.Stat(dbPath)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
