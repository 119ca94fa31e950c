// Package dataset implements file persistence for the detector collections.
// Every exporter and loader follows the same contract: empty collections are
// never exported, overwriting an existing file raises a warning advisory, and
// files that do not hold the requested collection are rejected on import.
package dataset

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowscope/core/internal/datagen"
	"github.com/flowscope/core/internal/models"
)

func TestExportOutputFlowDataSet(t *testing.T) {
	t.Run("creates the file", func(t *testing.T) {
		path := tempPath(t, "output"+FileExt)

		require.NoError(t, ExportOutputFlowDataSet(datagen.OutputFlowDataSet(1, 2021), path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	})

	t.Run("refuses an empty collection", func(t *testing.T) {
		path := tempPath(t, "output"+FileExt)

		err := ExportOutputFlowDataSet(models.NewOutputFlowDataSet(nil, 2021), path)

		assert.ErrorIs(t, err, ErrNoData)
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "no file may be created for an empty collection")
	})

	t.Run("warns once when overwriting", func(t *testing.T) {
		capture := captureLogs(t)
		path := tempPath(t, "output"+FileExt)
		set := datagen.OutputFlowDataSet(5, 2021)

		require.NoError(t, ExportOutputFlowDataSet(set, path))
		assert.Equal(t, 0, capture.warnings())

		require.NoError(t, ExportOutputFlowDataSet(set, path))
		assert.Equal(t, 1, capture.warnings())
	})
}

func TestLoadOutputFlowDataSet(t *testing.T) {
	t.Run("import equals export", func(t *testing.T) {
		path := tempPath(t, "output"+FileExt)
		original := datagen.OutputFlowDataSet(10, 2021)
		require.NoError(t, ExportOutputFlowDataSet(original, path))

		loaded, err := LoadOutputFlowDataSet(path)

		require.NoError(t, err)
		assert.True(t, loaded.Equal(original))
		assert.True(t, original.Equal(loaded))
	})

	t.Run("loaded set carries no year annotation", func(t *testing.T) {
		path := tempPath(t, "output"+FileExt)
		require.NoError(t, ExportOutputFlowDataSet(datagen.OutputFlowDataSet(3, 2021), path))

		loaded, err := LoadOutputFlowDataSet(path)

		require.NoError(t, err)
		assert.Equal(t, 0, loaded.Year)
	})

	t.Run("random collection of the same size differs", func(t *testing.T) {
		path := tempPath(t, "output"+FileExt)
		require.NoError(t, ExportOutputFlowDataSet(datagen.OutputFlowDataSet(10, 2021), path))

		loaded, err := LoadOutputFlowDataSet(path)

		require.NoError(t, err)
		assert.False(t, loaded.Equal(datagen.OutputFlowDataSet(10, 2021)))
	})

	t.Run("rejects a file of another kind", func(t *testing.T) {
		path := tempPath(t, "ground"+FileExt)
		require.NoError(t, ExportGroundFlowData(datagen.GroundFlowData(5, 2021), path))

		_, err := LoadOutputFlowDataSet(path)

		assert.ErrorIs(t, err, ErrWrongDataType)
	})

	t.Run("rejects a plain text file", func(t *testing.T) {
		path := tempPath(t, "bogus"+FileExt)
		require.NoError(t, os.WriteFile(path, []byte("This is not a serialized detector dataset"), 0o644))

		_, err := LoadOutputFlowDataSet(path)

		assert.ErrorIs(t, err, ErrWrongDataType)
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		_, err := LoadOutputFlowDataSet(tempPath(t, "absent"+FileExt))

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrWrongDataType)
	})
}
