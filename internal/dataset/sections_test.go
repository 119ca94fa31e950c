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

func TestExportDetectorSections(t *testing.T) {
	t.Run("creates the file", func(t *testing.T) {
		path := tempPath(t, "sections"+FileExt)

		require.NoError(t, ExportDetectorSections(datagen.DetectorSections(1), path))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
	})

	t.Run("refuses an empty collection", func(t *testing.T) {
		path := tempPath(t, "sections"+FileExt)

		err := ExportDetectorSections(models.NewDetectorSections(nil), path)

		assert.ErrorIs(t, err, ErrNoData)
		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr), "no file may be created for an empty collection")
	})

	t.Run("warns once when overwriting", func(t *testing.T) {
		capture := captureLogs(t)
		path := tempPath(t, "sections"+FileExt)
		sections := datagen.DetectorSections(5)

		require.NoError(t, ExportDetectorSections(sections, path))
		assert.Equal(t, 0, capture.warnings())

		require.NoError(t, ExportDetectorSections(sections, path))
		assert.Equal(t, 1, capture.warnings())
	})
}

func TestLoadDetectorSections(t *testing.T) {
	t.Run("import equals export", func(t *testing.T) {
		path := tempPath(t, "sections"+FileExt)
		original := datagen.DetectorSections(10)
		require.NoError(t, ExportDetectorSections(original, path))

		loaded, err := LoadDetectorSections(path)

		require.NoError(t, err)
		assert.True(t, loaded.Equal(original))
		assert.True(t, original.Equal(loaded))
	})

	t.Run("random collection of the same size differs", func(t *testing.T) {
		path := tempPath(t, "sections"+FileExt)
		require.NoError(t, ExportDetectorSections(datagen.DetectorSections(10), path))

		loaded, err := LoadDetectorSections(path)

		require.NoError(t, err)
		assert.False(t, loaded.Equal(datagen.DetectorSections(10)))
	})

	t.Run("rejects a file of another kind", func(t *testing.T) {
		path := tempPath(t, "locations"+FileExt)
		require.NoError(t, ExportDetectorsLocation(datagen.DetectorsLocation(5, 2021), path))

		_, err := LoadDetectorSections(path)

		assert.ErrorIs(t, err, ErrWrongDataType)
	})

	t.Run("rejects a plain text file", func(t *testing.T) {
		path := tempPath(t, "bogus"+FileExt)
		require.NoError(t, os.WriteFile(path, []byte("This is not a serialized detector dataset"), 0o644))

		_, err := LoadDetectorSections(path)

		assert.ErrorIs(t, err, ErrWrongDataType)
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		_, err := LoadDetectorSections(tempPath(t, "absent"+FileExt))

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrWrongDataType)
	})
}
