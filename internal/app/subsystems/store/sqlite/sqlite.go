package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/statcalc/statcalc/internal/app/subsystems/store/migrations"
	"github.com/statcalc/statcalc/internal/util"
	"github.com/statcalc/statcalc/pkg/history"

	_ "github.com/mattn/go-sqlite3"
)

const (
	SAMPLE_SELECT_STATEMENT = `
	SELECT
		value
	FROM
		samples
	ORDER BY
		id ASC`

	SAMPLE_DELETE_STATEMENT = `
	DELETE FROM samples`

	SAMPLE_INSERT_STATEMENT = `
	INSERT INTO samples
		(value)
	VALUES
		(?)`

	HISTORY_SELECT_STATEMENT = `
	SELECT
		op, res
	FROM
		history
	ORDER BY
		position ASC`

	HISTORY_DELETE_STATEMENT = `
	DELETE FROM history`

	HISTORY_INSERT_STATEMENT = `
	INSERT INTO history
		(position, op, res)
	VALUES
		(?, ?, ?)`
)

// Config

type Config struct {
	Path      string        `flag:"path" desc:"sqlite database path" default:"statcalc.db"`
	TxTimeout time.Duration `flag:"tx-timeout" desc:"sqlite transaction timeout" default:"10s"`
	Reset     bool          `flag:"reset" desc:"reset sqlite db on shutdown" default:"false"`
}

// Store

type SqliteStore struct {
	config *Config
	db     *sql.DB
}

func New(config *Config) (*SqliteStore, error) {
	db, err := sql.Open("sqlite3", config.Path)
	if err != nil {
		return nil, err
	}

	// an in memory database lives and dies with its connection
	db.SetMaxOpenConns(1)

	return &SqliteStore{
		config: config,
		db:     db,
	}, nil
}

func (s *SqliteStore) String() string {
	return fmt.Sprintf("store:sqlite(path=%s)", s.config.Path)
}

func (s *SqliteStore) Start() error {
	return migrations.Start(migrations.NewSqliteMigrationStore(s.db))
}

func (s *SqliteStore) Stop() error {
	if err := s.db.Close(); err != nil {
		return err
	}

	if s.config.Reset {
		return s.Reset()
	}

	return nil
}

func (s *SqliteStore) Reset() error {
	if s.config.Path == ":memory:" {
		return nil
	}

	if _, err := os.Stat(s.config.Path); err != nil {
		return nil
	}

	return os.Remove(s.config.Path)
}

func (s *SqliteStore) DB() *sql.DB {
	return s.db
}

func (s *SqliteStore) LoadDataset() ([]float64, error) {
	rows, err := s.db.Query(SAMPLE_SELECT_STATEMENT)
	if err != nil {
		return nil, err
	}
	defer util.DeferAndLog(rows.Close)

	values := []float64{}
	for rows.Next() {
		var value float64
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	return values, rows.Err()
}

func (s *SqliteStore) SaveDataset(values []float64) error {
	return s.execute(func(tx *sql.Tx) error {
		if _, err := tx.Exec(SAMPLE_DELETE_STATEMENT); err != nil {
			return err
		}

		stmt, err := tx.Prepare(SAMPLE_INSERT_STATEMENT)
		if err != nil {
			return err
		}
		defer util.DeferAndLog(stmt.Close)

		for _, value := range values {
			if _, err := stmt.Exec(value); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *SqliteStore) LoadHistory() ([]history.Entry, error) {
	rows, err := s.db.Query(HISTORY_SELECT_STATEMENT)
	if err != nil {
		return nil, err
	}
	defer util.DeferAndLog(rows.Close)

	entries := []history.Entry{}
	for rows.Next() {
		var entry history.Entry
		if err := rows.Scan(&entry.Op, &entry.Res); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (s *SqliteStore) SaveHistory(entries []history.Entry) error {
	return s.execute(func(tx *sql.Tx) error {
		if _, err := tx.Exec(HISTORY_DELETE_STATEMENT); err != nil {
			return err
		}

		stmt, err := tx.Prepare(HISTORY_INSERT_STATEMENT)
		if err != nil {
			return err
		}
		defer util.DeferAndLog(stmt.Close)

		for i, entry := range entries {
			if _, err := stmt.Exec(i, entry.Op, entry.Res); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *SqliteStore) execute(f func(*sql.Tx) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.TxTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := f(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			err = fmt.Errorf("tx failed: %v, unable to rollback: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}
