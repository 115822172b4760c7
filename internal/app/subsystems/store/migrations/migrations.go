package migrations

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/statcalc/statcalc/internal/migrationfiles"
)

var ErrPendingMigrations = errors.New("pending migrations exist")

var filenameRegexp = regexp.MustCompile(`^(\d{3})_(.+)\.sql$`)

// MigrationStore defines the database specific parts of running migrations.
type MigrationStore interface {
	// DB returns the database the migrations are applied to
	DB() *sql.DB

	// Dir returns the embedded directory holding this store's migrations
	Dir() string

	// InsertMigrationSQL returns the statement recording an applied
	// migration, using the placeholder syntax of the driver
	InsertMigrationSQL() string

	String() string
}

// Migration represents a single database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

func (m Migration) String() string {
	return fmt.Sprintf("%03d_%s.sql", m.Version, m.Name)
}

// MigrationError represents an error during migration execution
type MigrationError struct {
	Version int
	Name    string
	Err     error
}

func (e *MigrationError) Error() string {
	return fmt.Sprintf("migration %03d_%s failed: %v", e.Version, e.Name, e.Err)
}

func (e *MigrationError) Unwrap() error {
	return e.Err
}

func ParseMigrationFilename(filename string) (version int, name string, err error) {
	matches := filenameRegexp.FindStringSubmatch(filename)
	if len(matches) != 3 {
		return 0, "", fmt.Errorf("invalid migration filename format: %s", filename)
	}

	version, err = strconv.Atoi(matches[1])
	if err != nil {
		return 0, "", fmt.Errorf("invalid version number in filename: %s", filename)
	}

	return version, matches[2], nil
}

func LoadMigrations(store MigrationStore) ([]Migration, error) {
	files, err := migrationfiles.GetMigrationFiles(store.Dir())
	if err != nil {
		return nil, err
	}

	migrations := make([]Migration, 0, len(files))
	for _, file := range files {
		version, name, err := ParseMigrationFilename(filepath.Base(file))
		if err != nil {
			return nil, err
		}

		content, err := migrationfiles.GetMigrationContent(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %w", file, err)
		}

		migrations = append(migrations, Migration{
			Version: version,
			Name:    name,
			SQL:     content,
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

// CurrentVersion returns the highest applied migration, 0 for a fresh
// database. The migrations table is created if it does not exist.
func CurrentVersion(store MigrationStore) (int, error) {
	db := store.DB()

	if _, err := db.Exec("CREATE TABLE IF NOT EXISTS migrations (id INTEGER PRIMARY KEY)"); err != nil {
		return 0, fmt.Errorf("failed to create migrations table: %w", err)
	}

	var version int
	if err := db.QueryRow("SELECT COALESCE(MAX(id), 0) FROM migrations").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to read migration version: %w", err)
	}

	return version, nil
}

// GetPendingMigrations returns migrations that need to be applied
func GetPendingMigrations(currentVersion int, store MigrationStore) ([]Migration, error) {
	all, err := LoadMigrations(store)
	if err != nil {
		return nil, err
	}

	return Pending(all, currentVersion), nil
}

func Pending(all []Migration, currentVersion int) []Migration {
	pending := make([]Migration, 0)
	for _, m := range all {
		if m.Version > currentVersion {
			pending = append(pending, m)
		}
	}
	return pending
}

// ValidateMigrationSequence ensures migrations are sequential with no gaps
func ValidateMigrationSequence(migrations []Migration, startVersion int) error {
	expectedVersion := startVersion + 1
	for _, m := range migrations {
		if m.Version != expectedVersion {
			return fmt.Errorf("migration sequence gap: expected version %d, found %d", expectedVersion, m.Version)
		}
		expectedVersion++
	}
	return nil
}

// ApplyMigrations executes migrations in a single transaction, progress
// is written to w when it is not nil.
func ApplyMigrations(migrations []Migration, store MigrationStore, w io.Writer) error {
	if len(migrations) == 0 {
		return nil
	}

	tx, err := store.DB().Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, m := range migrations {
		if w != nil {
			fmt.Fprintf(w, "Applying migration %s... ", m)
		}

		if _, err := tx.Exec(m.SQL); err != nil {
			if w != nil {
				fmt.Fprintln(w, "failed")
			}
			return &MigrationError{Version: m.Version, Name: m.Name, Err: err}
		}

		if _, err := tx.Exec(store.InsertMigrationSQL(), m.Version); err != nil {
			if w != nil {
				fmt.Fprintln(w, "failed")
			}
			return fmt.Errorf("failed to update migrations table: %w", err)
		}

		if w != nil {
			fmt.Fprintln(w, "done")
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Start brings a fresh database to the latest version and refuses to
// run against a database with pending migrations, those must be
// applied explicitly with `statcalc migrate up`.
func Start(store MigrationStore) error {
	all, err := LoadMigrations(store)
	if err != nil {
		return err
	}

	return start(store, all)
}

func start(store MigrationStore, all []Migration) error {
	current, err := CurrentVersion(store)
	if err != nil {
		return err
	}

	pending := Pending(all, current)
	if len(pending) == 0 {
		return nil
	}

	if current == 0 {
		if err := ValidateMigrationSequence(pending, current); err != nil {
			return err
		}
		return ApplyMigrations(pending, store, nil)
	}

	return &MigrationError{
		Version: pending[0].Version,
		Name:    pending[0].Name,
		Err:     ErrPendingMigrations,
	}
}

// Store

type sqliteStore struct {
	db *sql.DB
}

func NewSqliteMigrationStore(db *sql.DB) MigrationStore {
	return &sqliteStore{db: db}
}

func (s *sqliteStore) DB() *sql.DB {
	return s.db
}

func (s *sqliteStore) Dir() string {
	return migrationfiles.SQLiteDir
}

func (s *sqliteStore) InsertMigrationSQL() string {
	return "INSERT INTO migrations (id) VALUES (?) ON CONFLICT(id) DO NOTHING"
}

func (s *sqliteStore) String() string {
	return "sqlite"
}

type postgresStore struct {
	db *sql.DB
}

func NewPostgresMigrationStore(db *sql.DB) MigrationStore {
	return &postgresStore{db: db}
}

func (s *postgresStore) DB() *sql.DB {
	return s.db
}

func (s *postgresStore) Dir() string {
	return migrationfiles.PostgresDir
}

func (s *postgresStore) InsertMigrationSQL() string {
	return "INSERT INTO migrations (id) VALUES ($1) ON CONFLICT(id) DO NOTHING"
}

func (s *postgresStore) String() string {
	return "postgres"
}
