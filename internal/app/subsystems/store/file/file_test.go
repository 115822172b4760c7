package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/statcalc/statcalc/internal/app/subsystems/store/test"
	"github.com/statcalc/statcalc/pkg/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	for _, tc := range test.TestCases {
		store, err := New(&Config{Dir: t.TempDir(), Dataset: "dataset.json", History: "history.json"})
		if err != nil {
			t.Fatal(err)
		}
		if err := store.Start(); err != nil {
			t.Fatal(err)
		}

		tc.Run(t, store)

		if err := store.Stop(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestFileStoreFormat(t *testing.T) {
	dir := t.TempDir()

	store, err := New(&Config{Dir: dir, Dataset: "dataset.json", History: "history.json"})
	require.NoError(t, err)
	require.NoError(t, store.Start())

	require.NoError(t, store.SaveDataset([]float64{1, 2.5}))
	require.NoError(t, store.SaveHistory([]history.Entry{{Op: "Mean", Res: 1.75}}))

	dataset, err := os.ReadFile(filepath.Join(dir, "dataset.json"))
	require.NoError(t, err)
	assert.Equal(t, "[\n    1,\n    2.5\n]", string(dataset))

	history, err := os.ReadFile(filepath.Join(dir, "history.json"))
	require.NoError(t, err)
	assert.Equal(t, "[\n    {\n        \"op\": \"Mean\",\n        \"res\": 1.75\n    }\n]", string(history))

	// only the two files remain, temp files are renamed into place
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestFileStoreEmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dataset.json"), []byte("  \n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "history.json"), nil, 0o644))

	store, err := New(&Config{Dir: dir, Dataset: "dataset.json", History: "history.json"})
	require.NoError(t, err)

	values, err := store.LoadDataset()
	require.NoError(t, err)
	assert.Empty(t, values)

	entries, err := store.LoadHistory()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFileStoreCorrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dataset.json"), []byte("[1, 2"), 0o644))

	store, err := New(&Config{Dir: dir, Dataset: "dataset.json", History: "history.json"})
	require.NoError(t, err)

	_, err = store.LoadDataset()
	assert.Error(t, err)
}

func TestFileStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	store, err := New(&Config{Dir: dir, Dataset: "dataset.json", History: "history.json"})
	require.NoError(t, err)
	require.NoError(t, store.Start())
	require.NoError(t, store.SaveDataset([]float64{7}))

	assert.FileExists(t, filepath.Join(dir, "dataset.json"))
}

func TestNewInvalidConfig(t *testing.T) {
	_, err := New(&Config{Dir: ".", Dataset: "same.json", History: "same.json"})
	assert.Error(t, err)

	_, err = New(&Config{Dir: ".", Dataset: "", History: "history.json"})
	assert.Error(t, err)
}
