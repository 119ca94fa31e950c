// Package dataset implements file persistence for the detector collections.
// Every exporter and loader follows the same contract: empty collections are
// never exported, overwriting an existing file raises a warning advisory, and
// files that do not hold the requested collection are rejected on import.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/flowscope/core/internal/codec"
)

// ErrNoData signals an export of a collection that holds no records.
var ErrNoData = errors.New("dataset has no data, export aborted")

// ErrWrongDataType signals an import of a file that does not hold the
// requested collection.
var ErrWrongDataType = errors.New("file has incorrect data type, import aborted")

// FileExt is the conventional extension for dataset files.
const FileExt = ".fds"

// Dataset kinds as reported by Inspect and recorded in catalogs.
const (
	KindLocations = "locations"
	KindGround    = "ground"
	KindSections  = "sections"
	KindOutput    = "output"
)

// Summary describes the contents of a dataset file.
type Summary struct {
	Kind    string `json:"kind"`
	Records int    `json:"records"`
	Year    int    `json:"year,omitempty"`
}

// createFile opens path for writing, truncating any previous content. An
// existing file is overwritten after a warning advisory.
func createFile(path string) (*os.File, error) {
	if _, err := os.Stat(path); err == nil {
		slog.Warn("overwriting existing dataset file", "path", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return f, nil
}

// exportFile runs write against a buffered writer on a freshly created file
// and makes sure the data reaches disk before reporting success.
func exportFile(path string, write func(w io.Writer) error) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := write(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func wrongType(path string, cause error) error {
	return fmt.Errorf("%s: %w: %v", path, ErrWrongDataType, cause)
}

// sniff reports the kind of collection stored at path from its first value tag.
func sniff(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	if err := codec.ReadHeader(r); err != nil {
		return "", wrongType(path, err)
	}
	tag, err := codec.PeekTag(r)
	if err != nil {
		return "", wrongType(path, err)
	}
	switch tag {
	case codec.TagLocationMap:
		return KindLocations, nil
	case codec.TagGroundList:
		return KindGround, nil
	case codec.TagSectionList:
		return KindSections, nil
	case codec.TagOutputList:
		return KindOutput, nil
	}
	return "", wrongType(path, fmt.Errorf("unknown value tag 0x%02x", tag))
}

// Inspect identifies the collection stored at path, fully decodes it, and
// returns its summary. Files that fail to decode as their announced kind are
// rejected with ErrWrongDataType.
func Inspect(path string) (*Summary, error) {
	kind, err := sniff(path)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindLocations:
		loc, err := LoadDetectorsLocation(path)
		if err != nil {
			return nil, err
		}
		return &Summary{Kind: kind, Records: loc.Len(), Year: loc.Year}, nil
	case KindGround:
		ground, err := LoadGroundFlowData(path)
		if err != nil {
			return nil, err
		}
		return &Summary{Kind: kind, Records: ground.Len(), Year: ground.Detectors[0].Year}, nil
	case KindSections:
		sections, err := LoadDetectorSections(path)
		if err != nil {
			return nil, err
		}
		return &Summary{Kind: kind, Records: sections.Len()}, nil
	default:
		set, err := LoadOutputFlowDataSet(path)
		if err != nil {
			return nil, err
		}
		return &Summary{Kind: kind, Records: set.Len()}, nil
	}
}
