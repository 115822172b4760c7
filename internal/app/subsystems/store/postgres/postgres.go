package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/statcalc/statcalc/internal/app/subsystems/store/migrations"
	"github.com/statcalc/statcalc/internal/util"
	"github.com/statcalc/statcalc/pkg/history"

	_ "github.com/lib/pq"
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
		($1)`

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
		($1, $2, $3)`

	DROP_TABLE_STATEMENT = `
	DROP TABLE IF EXISTS samples;
	DROP TABLE IF EXISTS history;
	DROP TABLE IF EXISTS migrations;`
)

// Config

type Config struct {
	Host      string            `flag:"host" desc:"postgres host" default:"localhost"`
	Port      string            `flag:"port" desc:"postgres port" default:"5432"`
	Username  string            `flag:"username" desc:"postgres username"`
	Password  string            `flag:"password" desc:"postgres password"`
	Database  string            `flag:"database" desc:"postgres database" default:"statcalc"`
	Query     map[string]string `flag:"query" desc:"postgres query options" default:"{\"sslmode\":\"disable\"}"`
	MaxConns  int               `flag:"max-conns" desc:"maximum number of open connections" default:"4"`
	TxTimeout time.Duration     `flag:"tx-timeout" desc:"postgres transaction timeout" default:"10s"`
	Reset     bool              `flag:"reset" desc:"drop all tables on shutdown" default:"false"`
}

func (c *Config) URL() *url.URL {
	rawQuery := url.Values{}
	for k, v := range c.Query {
		rawQuery.Set(k, v)
	}

	return &url.URL{
		User:     url.UserPassword(c.Username, c.Password),
		Host:     fmt.Sprintf("%s:%s", c.Host, c.Port),
		Path:     c.Database,
		Scheme:   "postgres",
		RawQuery: rawQuery.Encode(),
	}
}

// Store

type PostgresStore struct {
	config *Config
	db     *sql.DB
}

func New(config *Config) (*PostgresStore, error) {
	db, err := sql.Open("postgres", config.URL().String())
	if err != nil {
		return nil, err
	}

	if config.MaxConns > 0 {
		db.SetMaxOpenConns(config.MaxConns)
		db.SetMaxIdleConns(config.MaxConns)
	}
	db.SetConnMaxIdleTime(0)

	return &PostgresStore{
		config: config,
		db:     db,
	}, nil
}

func (s *PostgresStore) String() string {
	return fmt.Sprintf("store:postgres(host=%s, database=%s)", s.config.Host, s.config.Database)
}

func (s *PostgresStore) Start() error {
	return migrations.Start(migrations.NewPostgresMigrationStore(s.db))
}

func (s *PostgresStore) Stop() error {
	if s.config.Reset {
		if err := s.Reset(); err != nil {
			return err
		}
	}

	return s.db.Close()
}

func (s *PostgresStore) Reset() error {
	if _, err := s.db.Exec(DROP_TABLE_STATEMENT); err != nil {
		return err
	}

	return nil
}

func (s *PostgresStore) DB() *sql.DB {
	return s.db
}

func (s *PostgresStore) LoadDataset() ([]float64, error) {
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

func (s *PostgresStore) SaveDataset(values []float64) error {
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

func (s *PostgresStore) LoadHistory() ([]history.Entry, error) {
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

func (s *PostgresStore) SaveHistory(entries []history.Entry) error {
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

func (s *PostgresStore) execute(f func(*sql.Tx) error) error {
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
