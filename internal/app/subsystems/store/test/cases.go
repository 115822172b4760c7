package test

import (
	"testing"

	"github.com/statcalc/statcalc/internal/app/subsystems/store"
	"github.com/statcalc/statcalc/pkg/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name     string
	datasets [][]float64
	logs     [][]history.Entry
	dataset  []float64
	history  []history.Entry
}

// Run saves every dataset and history in order and expects the last
// of each to be what loads back.
func (c *testCase) Run(t *testing.T, store store.Store) {
	t.Run(c.name, func(t *testing.T) {
		for _, values := range c.datasets {
			require.NoError(t, store.SaveDataset(values))
		}
		for _, entries := range c.logs {
			require.NoError(t, store.SaveHistory(entries))
		}

		dataset, err := store.LoadDataset()
		require.NoError(t, err)
		assert.Equal(t, c.dataset, dataset)

		history, err := store.LoadHistory()
		require.NoError(t, err)
		assert.Equal(t, c.history, history)
	})
}

var TestCases = []*testCase{
	{
		name:    "Empty",
		dataset: []float64{},
		history: []history.Entry{},
	},
	{
		name:     "SaveDataset",
		datasets: [][]float64{{1, 2, 2, 3.5, 10}},
		dataset:  []float64{1, 2, 2, 3.5, 10},
		history:  []history.Entry{},
	},
	{
		name:     "SaveDatasetNegativeAndFractional",
		datasets: [][]float64{{-273.15, -1, 0, 0.1, 1e9}},
		dataset:  []float64{-273.15, -1, 0, 0.1, 1e9},
		history:  []history.Entry{},
	},
	{
		name:     "SaveDatasetOverwrites",
		datasets: [][]float64{{1, 2, 3}, {4, 5}},
		dataset:  []float64{4, 5},
		history:  []history.Entry{},
	},
	{
		name:     "SaveDatasetEmpty",
		datasets: [][]float64{{1, 2, 3}, {}},
		dataset:  []float64{},
		history:  []history.Entry{},
	},
	{
		name: "SaveHistory",
		logs: [][]history.Entry{{
			{Op: "Mean", Res: 2},
			{Op: "Median", Res: 2},
			{Op: "P(AuB)", Res: 0.68},
		}},
		dataset: []float64{},
		history: []history.Entry{
			{Op: "Mean", Res: 2},
			{Op: "Median", Res: 2},
			{Op: "P(AuB)", Res: 0.68},
		},
	},
	{
		name: "SaveHistoryOverwrites",
		logs: [][]history.Entry{
			{{Op: "Mean", Res: 2}, {Op: "Mode", Res: 3}},
			{{Op: "nCr", Res: 10}},
		},
		dataset: []float64{},
		history: []history.Entry{{Op: "nCr", Res: 10}},
	},
	{
		name: "SaveHistoryKeepsDuplicates",
		logs: [][]history.Entry{{
			{Op: "Mean", Res: 1},
			{Op: "Mean", Res: 1},
		}},
		dataset: []float64{},
		history: []history.Entry{
			{Op: "Mean", Res: 1},
			{Op: "Mean", Res: 1},
		},
	},
	{
		name:     "SaveBoth",
		datasets: [][]float64{{1, 2, 3, 4}},
		logs:     [][]history.Entry{{{Op: "Std Dev", Res: 1.118033988749895}}},
		dataset:  []float64{1, 2, 3, 4},
		history:  []history.Entry{{Op: "Std Dev", Res: 1.118033988749895}},
	},
}
