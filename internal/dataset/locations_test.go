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

func TestExportDetectorsLocation(t *testing.T) {
	t.Run("creates the file", func(t *testing.T) {
		path := tempPath(t, "locations"+FileExt)

		require.NoError(t, ExportDetectorsLocation(datagen.DetectorsLocation(1, 2021), path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	})

	t.Run("refuses an empty collection", func(t *testing.T) {
		path := tempPath(t, "locations"+FileExt)

		err := ExportDetectorsLocation(models.NewDetectorsLocation(2021), path)

		assert.ErrorIs(t, err, ErrNoData)
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "no file may be created for an empty collection")
	})

	t.Run("warns once when overwriting", func(t *testing.T) {
		capture := captureLogs(t)
		path := tempPath(t, "locations"+FileExt)
		loc := datagen.DetectorsLocation(5, 2021)

		require.NoError(t, ExportDetectorsLocation(loc, path))
		assert.Equal(t, 0, capture.warnings())

		require.NoError(t, ExportDetectorsLocation(loc, path))
		assert.Equal(t, 1, capture.warnings())
	})
}

func TestLoadDetectorsLocation(t *testing.T) {
	t.Run("import equals export", func(t *testing.T) {
		path := tempPath(t, "locations"+FileExt)
		original := datagen.DetectorsLocation(10, 2021)
		require.NoError(t, ExportDetectorsLocation(original, path))

		loaded, err := LoadDetectorsLocation(path)

		require.NoError(t, err)
		assert.True(t, loaded.Equal(original))
		assert.True(t, original.Equal(loaded))
	})

	t.Run("random collection of the same size differs", func(t *testing.T) {
		path := tempPath(t, "locations"+FileExt)
		require.NoError(t, ExportDetectorsLocation(datagen.DetectorsLocation(10, 2021), path))

		loaded, err := LoadDetectorsLocation(path)

		require.NoError(t, err)
		assert.False(t, loaded.Equal(datagen.DetectorsLocation(10, 2021)))
	})

	t.Run("rejects a file of another kind", func(t *testing.T) {
		path := tempPath(t, "sections"+FileExt)
		require.NoError(t, ExportDetectorSections(datagen.DetectorSections(5), path))

		_, err := LoadDetectorsLocation(path)

		assert.ErrorIs(t, err, ErrWrongDataType)
	})

	t.Run("rejects a plain text file", func(t *testing.T) {
		path := tempPath(t, "bogus"+FileExt)
		require.NoError(t, os.WriteFile(path, []byte("This is not a serialized detector dataset"), 0o644))

		_, err := LoadDetectorsLocation(path)

		assert.ErrorIs(t, err, ErrWrongDataType)
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		_, err := LoadDetectorsLocation(tempPath(t, "absent"+FileExt))

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrWrongDataType)
	})
}
