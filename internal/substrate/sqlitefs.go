package substrate

import (
	"context"
	"crypto/sha256"
	"database/sql"
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteFS keeps documents and their history as rows in one SQLite
// database, for deployments that prefer a single file over a git work tree.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode (balance durability/performance)
//   - 5-second busy timeout for lock contention
//   - a single writer connection to avoid SQLITE_BUSY errors
//
// Commit refs are content digests over (path, message, content, time), so
// they stay opaque and collision-free for practical purposes.
type SQLiteFS struct {
	// Author is recorded on commits. Defaults to DefaultAuthorName.
	Author string

	db *sql.DB
}

// OpenSQLite creates or opens a SQLite-backed substrate at the given path.
// Applies required pragmas and the schema automatically. Idempotent.
func OpenSQLite(path string) (*SQLiteFS, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &SQLiteFS{Author: DefaultAuthorName, db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteFS) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// EnsureDir is a no-op: folders are implicit in row paths.
func (s *SQLiteFS) EnsureDir(ctx context.Context, folder string) error {
	return ctx.Err()
}

// ReadFile returns the current content of path, or ErrNotFound.
func (s *SQLiteFS) ReadFile(ctx context.Context, path string) (string, error) {
	var content string
	err := s.db.QueryRowContext(ctx, `SELECT content FROM files WHERE path = ?`, path).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return content, nil
}

// WriteFile replaces the content of path.
func (s *SQLiteFS) WriteFile(ctx context.Context, path, content string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO files (path, content) VALUES (?, ?)
		ON CONFLICT(path) DO UPDATE SET content = excluded.content
	`, path, content)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// DeleteFile removes path. ErrNotFound if it does not exist.
func (s *SQLiteFS) DeleteFile(ctx context.Context, path string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM files WHERE path = ?`, path)
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// likeEscape escapes LIKE wildcards so a folder prefix matches literally.
func likeEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// ListFiles returns the file names directly inside folder, sorted.
func (s *SQLiteFS) ListFiles(ctx context.Context, folder string) ([]string, error) {
	prefix := folder + "/"
	rows, err := s.db.QueryContext(ctx, `SELECT path FROM files WHERE path LIKE ? ESCAPE '\'`, likeEscape(prefix)+"%")
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", folder, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, fmt.Errorf("list %s: %w", folder, err)
		}
		rest := strings.TrimPrefix(path, prefix)
		// Only direct children; deeper paths belong to nested folders.
		if strings.Contains(rest, "/") {
			continue
		}
		names = append(names, rest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", folder, err)
	}
	sort.Strings(names)
	return names, nil
}

// CommitFile appends a history row for path, snapshotting its current
// content (empty when the file was deleted).
func (s *SQLiteFS) CommitFile(ctx context.Context, path, message string) (Commit, error) {
	content, err := s.ReadFile(ctx, path)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return Commit{}, fmt.Errorf("commit %s: %w", path, err)
	}

	now := time.Now()
	digest := sha256.Sum256([]byte(path + "\x00" + message + "\x00" + content + "\x00" + now.Format(time.RFC3339Nano)))
	c := Commit{
		Ref:       hex.EncodeToString(digest[:]),
		Message:   message,
		Author:    s.Author,
		Timestamp: now.UnixMilli(),
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO commits (ref, path, message, author, content, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)
	`, c.Ref, path, c.Message, c.Author, content, c.Timestamp)
	if err != nil {
		return Commit{}, fmt.Errorf("commit %s: %w", path, err)
	}
	return c, nil
}

// Log returns path's commits, newest first.
func (s *SQLiteFS) Log(ctx context.Context, path string) ([]Commit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT ref, message, author, timestamp FROM commits
		WHERE path = ?
		ORDER BY seq DESC
	`, path)
	if err != nil {
		return nil, fmt.Errorf("log %s: %w", path, err)
	}
	defer rows.Close()

	var commits []Commit
	for rows.Next() {
		var c Commit
		if err := rows.Scan(&c.Ref, &c.Message, &c.Author, &c.Timestamp); err != nil {
			return nil, fmt.Errorf("log %s: %w", path, err)
		}
		commits = append(commits, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("log %s: %w", path, err)
	}
	return commits, nil
}

// FileAt returns the content snapshotted in the commit identified by ref.
func (s *SQLiteFS) FileAt(ctx context.Context, ref, path string) (string, error) {
	var content string
	err := s.db.QueryRowContext(ctx, `
		SELECT content FROM commits WHERE ref = ? AND path = ?
	`, ref, path).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("file %s at %s: %w", path, ref, err)
	}
	return content, nil
}
