package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/fieldreport-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/fieldreport-cli/internal/core/domain"
	"github.com/custodia-labs/fieldreport-cli/internal/core/ports/driven"
)

// Store is the SQLite database holding the report archive.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.fieldreport/data/reports.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".fieldreport", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "reports.db")

	// Foreign keys are set per connection so cells cascade on every pooled conn.
	db, err := sql.Open("sqlite",
		dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// ReportStore returns a ReportStore interface backed by this store.
func (s *Store) ReportStore() driven.ReportStore {
	return &reportStore{store: s}
}

// migrate applies every embedded *.up.sql newer than the recorded version.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_reports.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if err := s.applyMigration(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

func (s *Store) applyMigration(version int, content string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(content); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		return err
	}
	return tx.Commit()
}

// ==================== Report Store ====================

// reportStore implements driven.ReportStore.
type reportStore struct {
	store *Store
}

var _ driven.ReportStore = (*reportStore)(nil)

// Save inserts or replaces a report and all of its cells.
func (s *reportStore) Save(ctx context.Context, report *domain.Report) error {
	createdAt := report.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.ExecContext(ctx, `
		INSERT INTO reports (session_id, date, location, weather, output_path, published_to, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			date = excluded.date,
			location = excluded.location,
			weather = excluded.weather,
			output_path = excluded.output_path,
			published_to = excluded.published_to,
			created_at = excluded.created_at
	`, report.SessionID, report.Date, report.Location, report.Weather,
		nullString(report.OutputPath), nullString(report.PublishedTo), createdAt.UTC())
	if err != nil {
		return fmt.Errorf("saving report: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM report_cells WHERE session_id = ?", report.SessionID); err != nil {
		return fmt.Errorf("clearing cells: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO report_cells (session_id, coordinate, value) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing cell insert: %w", err)
	}
	defer stmt.Close()

	for _, coord := range report.Coordinates() {
		if _, err := stmt.ExecContext(ctx, report.SessionID, string(coord), report.Cells[coord]); err != nil {
			return fmt.Errorf("saving cell %s: %w", coord, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing report: %w", err)
	}
	return nil
}

// Get retrieves a report and its cells by session ID.
func (s *reportStore) Get(ctx context.Context, sessionID string) (*domain.Report, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT session_id, date, location, weather, output_path, published_to, created_at
		FROM reports WHERE session_id = ?
	`, sessionID)

	var report domain.Report
	var outputPath, publishedTo sql.NullString
	var createdAt sql.NullTime
	if err := row.Scan(&report.SessionID, &report.Date, &report.Location, &report.Weather,
		&outputPath, &publishedTo, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning report: %w", err)
	}
	report.OutputPath = outputPath.String
	report.PublishedTo = publishedTo.String
	if createdAt.Valid {
		report.CreatedAt = createdAt.Time
	}

	cells, err := s.cells(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	report.Cells = cells

	return &report, nil
}

func (s *reportStore) cells(ctx context.Context, sessionID string) (map[domain.Coordinate]string, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT coordinate, value FROM report_cells WHERE session_id = ?", sessionID)
	if err != nil {
		return nil, fmt.Errorf("querying cells: %w", err)
	}
	defer rows.Close()

	cells := make(map[domain.Coordinate]string)
	for rows.Next() {
		var coord, value string
		if err := rows.Scan(&coord, &value); err != nil {
			return nil, fmt.Errorf("scanning cell: %w", err)
		}
		cells[domain.Coordinate(coord)] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cells: %w", err)
	}
	return cells, nil
}

// List returns report summaries, newest first.
func (s *reportStore) List(ctx context.Context) ([]domain.ReportSummary, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT r.session_id, r.date, r.location, r.output_path, r.created_at,
			(SELECT COUNT(*) FROM report_cells c WHERE c.session_id = r.session_id)
		FROM reports r
		ORDER BY r.created_at DESC, r.session_id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying reports: %w", err)
	}
	defer rows.Close()

	var summaries []domain.ReportSummary //nolint:prealloc // size unknown from query
	for rows.Next() {
		var summary domain.ReportSummary
		var outputPath sql.NullString
		var createdAt sql.NullTime
		if err := rows.Scan(&summary.SessionID, &summary.Date, &summary.Location,
			&outputPath, &createdAt, &summary.CellCount); err != nil {
			return nil, fmt.Errorf("scanning report: %w", err)
		}
		summary.OutputPath = outputPath.String
		if createdAt.Valid {
			summary.CreatedAt = createdAt.Time
		}
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reports: %w", err)
	}

	return summaries, nil
}

// Delete removes a report; its cells cascade.
func (s *reportStore) Delete(ctx context.Context, sessionID string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM reports WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	return nil
}

// nullString converts empty strings to NULL.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
