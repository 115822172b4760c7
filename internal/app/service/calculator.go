package service

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/statcalc/statcalc/internal/app/subsystems/store"
	"github.com/statcalc/statcalc/internal/metrics"
	"github.com/statcalc/statcalc/pkg/dataset"
	"github.com/statcalc/statcalc/pkg/history"
	"github.com/statcalc/statcalc/pkg/stats"
)

// History labels
const (
	OpMean     = "Mean"
	OpMedian   = "Median"
	OpMode     = "Mode"
	OpStdDev   = "Std Dev"
	OpNCr      = "nCr"
	OpNPr      = "nPr"
	OpBinomial = "Binomial"
)

type Config struct {
	HistoryCapacity int `flag:"capacity" desc:"maximum number of history entries" default:"20"`
}

// Calculator owns the dataset and the history log. Every operation
// holds the lock for its whole duration, including the write to the
// store, so operations are applied one at a time in arrival order.
type Calculator struct {
	mu      sync.Mutex
	store   store.Store
	metrics *metrics.Metrics
	dataset *dataset.Tree
	history *history.Log
}

func New(store store.Store, metrics *metrics.Metrics, config *Config) *Calculator {
	return &Calculator{
		store:   store,
		metrics: metrics,
		dataset: dataset.New(),
		history: history.New(config.HistoryCapacity),
	}
}

func (c *Calculator) String() string {
	return fmt.Sprintf("Calculator(store=%s, dataset=%d, history=%d)", c.store, c.dataset.Len(), c.history.Len())
}

// Load replaces the in memory state with what the store holds.
func (c *Calculator) Load() error {
	values, err := c.store.LoadDataset()
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	entries, err := c.store.LoadHistory()
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.dataset = dataset.FromValues(values)
	c.history.Restore(entries)
	c.observe()

	slog.Info("loaded state", "store", c.store, "dataset", c.dataset.Len(), "history", c.history.Len())
	return nil
}

// Dataset

func (c *Calculator) AddData(value float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dataset.Add(value)
	c.saveDataset()
}

func (c *Calculator) Dataset() []float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.dataset.Snapshot()
}

func (c *Calculator) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dataset.Clear()
	c.saveDataset()
}

// Statistics

func (c *Calculator) Mean() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := stats.Mean(c.dataset.Snapshot())
	c.record(OpMean, v)
	return v
}

func (c *Calculator) Median() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := stats.Median(c.dataset.Snapshot())
	c.record(OpMedian, v)
	return v
}

// Mode returns the smallest mode, which is what gets recorded, along
// with every mode in ascending order. An empty dataset has a mode of 0.
func (c *Calculator) Mode() (float64, []float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	modes := stats.Mode(c.dataset.Snapshot())

	var v float64
	if len(modes) > 0 {
		v = modes[0]
	}

	c.record(OpMode, v)
	return v, modes
}

func (c *Calculator) StandardDeviation() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := stats.StandardDeviation(c.dataset.Snapshot())
	c.record(OpStdDev, v)
	return v
}

func (c *Calculator) NCr(n, r int64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := float64(stats.NCr(n, r))
	c.record(OpNCr, v)
	return v
}

func (c *Calculator) NPr(n, r int64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := float64(stats.NPr(n, r))
	c.record(OpNPr, v)
	return v
}

func (c *Calculator) Binomial(n, k int64, p float64) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := stats.BinomialProbability(n, k, p)
	c.record(OpBinomial, v)
	return v
}

// EventOp solves op over the given probabilities, nothing is recorded
// when the solver fails.
func (c *Calculator) EventOp(op stats.EventOp, in stats.EventInput) (*stats.Outcome, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	outcome, err := stats.Solve(op, in)
	if err != nil {
		slog.Debug("event op failed", "op", op, "input", in, "err", err)
		return nil, err
	}

	c.record(outcome.Label, outcome.Result)
	return outcome, nil
}

// History

func (c *Calculator) History() []history.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.history.Entries()
}

// Undo reports whether an entry was undone, the store is only written
// when something changed.
func (c *Calculator) Undo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.history.Undo() {
		return false
	}

	c.saveHistory()
	return true
}

func (c *Calculator) Redo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.history.Redo() {
		return false
	}

	c.saveHistory()
	return true
}

// Helper functions, must be called with the lock held

// Results that are not finite numbers are never recorded.
func (c *Calculator) record(op string, res float64) {
	if !stats.Finite(res) {
		slog.Warn("result not recorded", "op", op, "res", res, "err", stats.ErrNotFinite)
		return
	}

	c.history.Record(op, res)
	c.metrics.HistoryRecorded.WithLabelValues(op).Inc()
	c.saveHistory()
}

func (c *Calculator) saveDataset() {
	err := c.store.SaveDataset(c.dataset.Snapshot())
	c.saved("dataset", err)
}

func (c *Calculator) saveHistory() {
	err := c.store.SaveHistory(c.history.Entries())
	c.saved("history", err)
}

// saved logs and counts a write, a failed write leaves the in memory
// state as is.
func (c *Calculator) saved(kind string, err error) {
	status := "success"
	if err != nil {
		status = "failure"
		slog.Error("failed to persist", "store", c.store, "kind", kind, "err", err)
	}

	c.metrics.StoreTotal.WithLabelValues(c.store.String(), kind, status).Inc()
	c.observe()
}

func (c *Calculator) observe() {
	c.metrics.DatasetSamples.Set(float64(c.dataset.Len()))
	c.metrics.HistoryEntries.Set(float64(c.history.Len()))
}
