package store

import (
	"github.com/statcalc/statcalc/pkg/history"
)

//go:generate mockgen -source=store.go -destination=mock_store.go -package=store

// Store persists the dataset and the history log. Every save replaces
// what was previously stored, loads of a store that has never been
// saved to return empty values.
type Store interface {
	String() string
	Start() error
	Stop() error

	LoadDataset() ([]float64, error)
	SaveDataset([]float64) error

	LoadHistory() ([]history.Entry, error)
	SaveHistory([]history.Entry) error
}

type Kind string

const (
	File     Kind = "file"
	Sqlite   Kind = "sqlite"
	Postgres Kind = "postgres"
)
