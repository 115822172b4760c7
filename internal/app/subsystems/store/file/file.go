package file

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/statcalc/statcalc/internal/util"
	"github.com/statcalc/statcalc/pkg/history"
)

// Config

type Config struct {
	Dir     string `flag:"dir" desc:"directory holding the json files" default:"."`
	Dataset string `flag:"dataset" desc:"dataset file name" default:"dataset.json"`
	History string `flag:"history" desc:"history file name" default:"history.json"`
}

// Store

type FileStore struct {
	config *Config
	mu     sync.Mutex
}

func New(config *Config) (*FileStore, error) {
	if config.Dataset == "" || config.History == "" {
		return nil, fmt.Errorf("dataset and history file names must be set")
	}
	if config.Dataset == config.History {
		return nil, fmt.Errorf("dataset and history must be different files, got %s", config.Dataset)
	}

	return &FileStore{config: config}, nil
}

func (s *FileStore) String() string {
	return fmt.Sprintf("store:file(dir=%s)", s.config.Dir)
}

func (s *FileStore) Start() error {
	if s.config.Dir == "" {
		return nil
	}
	return os.MkdirAll(s.config.Dir, 0o755)
}

func (s *FileStore) Stop() error {
	return nil
}

func (s *FileStore) LoadDataset() ([]float64, error) {
	values := []float64{}
	if err := s.read(s.config.Dataset, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func (s *FileStore) SaveDataset(values []float64) error {
	if values == nil {
		values = []float64{}
	}
	return s.write(s.config.Dataset, values)
}

func (s *FileStore) LoadHistory() ([]history.Entry, error) {
	entries := []history.Entry{}
	if err := s.read(s.config.History, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *FileStore) SaveHistory(entries []history.Entry) error {
	if entries == nil {
		entries = []history.Entry{}
	}
	return s.write(s.config.History, entries)
}

func (s *FileStore) Path(name string) string {
	return filepath.Join(s.config.Dir, name)
}

func (s *FileStore) read(name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.Path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}

	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}

	return nil
}

func (s *FileStore) write(name string, v any) error {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.Path(name)

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		// no-op once renamed
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(b); err != nil {
		util.DeferAndLog(tmp.Close)
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
