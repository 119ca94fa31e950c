// Package codec implements the binary stream format for detector dataset files.
// A file starts with a fixed magic-and-version header followed by tagged,
// length-prefixed values, all encoded big endian.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/flowscope/core/internal/models"
)

// ReadHeader consumes and checks the stream magic and format version.
func ReadHeader(r io.Reader) error {
	var m [3]byte
	if _, err := io.ReadFull(r, m[:]); err != nil {
		return fmt.Errorf("reading magic: %w", err)
	}
	if m != magic {
		return errors.New("stream is not a flow dataset")
	}
	var v uint8
	if err := binary.Read(r, binary.BigEndian, &v); err != nil {
		return fmt.Errorf("reading version: %w", err)
	}
	if v != version {
		return fmt.Errorf("unsupported format version %d", v)
	}
	return nil
}

func expectTag(r io.Reader, want uint8) error {
	var got uint8
	if err := binary.Read(r, binary.BigEndian, &got); err != nil {
		return fmt.Errorf("reading value tag: %w", err)
	}
	if got != want {
		return fmt.Errorf("unexpected value tag 0x%02x", got)
	}
	return nil
}

// ReadLocationMap reads a detector location map written by WriteLocationMap.
func ReadLocationMap(r io.Reader) (map[models.DetectorID]models.DetectorSite, error) {
	if err := expectTag(r, TagLocationMap); err != nil {
		return nil, err
	}
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, fmt.Errorf("reading location count: %w", err)
	}
	locations := make(map[models.DetectorID]models.DetectorSite, min(n, initAlloc))
	for range n {
		var (
			id        int64
			direction uint8
			x, y      float64
		)
		if err := readFields(r, &id, &direction, &x, &y); err != nil {
			return nil, fmt.Errorf("reading location entry: %w", err)
		}
		d := models.Direction(direction)
		if !d.Valid() {
			return nil, fmt.Errorf("invalid direction %d for detector %d", direction, id)
		}
		locations[models.DetectorID(id)] = models.DetectorSite{
			Direction: d,
			Position:  models.Point{X: x, Y: y},
		}
	}
	return locations, nil
}

// ReadInt reads an integer written by WriteInt.
func ReadInt(r io.Reader) (int64, error) {
	if err := expectTag(r, TagInt); err != nil {
		return 0, err
	}
	var v int64
	if err := binary.Read(r, binary.BigEndian, &v); err != nil {
		return 0, fmt.Errorf("reading int value: %w", err)
	}
	return v, nil
}

// ReadGroundList reads a list of measured detector flow records written by
// WriteGroundList.
func ReadGroundList(r io.Reader) ([]models.DetectorFlowData, error) {
	if err := expectTag(r, TagGroundList); err != nil {
		return nil, err
	}
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, fmt.Errorf("reading ground count: %w", err)
	}
	detectors := make([]models.DetectorFlowData, 0, min(n, initAlloc))
	for range n {
		var (
			id        int64
			direction uint8
		)
		if err := readFields(r, &id, &direction); err != nil {
			return nil, fmt.Errorf("reading ground record: %w", err)
		}
		d := models.Direction(direction)
		if !d.Valid() {
			return nil, fmt.Errorf("invalid direction %d for detector %d", direction, id)
		}
		name, err := readString(r)
		if err != nil {
			return nil, fmt.Errorf("reading ground record name: %w", err)
		}
		var year int64
		if err := binary.Read(r, binary.BigEndian, &year); err != nil {
			return nil, fmt.Errorf("reading ground record year: %w", err)
		}
		flow, err := readFlowMap(r)
		if err != nil {
			return nil, fmt.Errorf("reading ground record flow: %w", err)
		}
		detectors = append(detectors, models.DetectorFlowData{
			DetectorID: models.DetectorID(id),
			Direction:  d,
			FlowData:   flow,
			Name:       name,
			Year:       int(year),
		})
	}
	return detectors, nil
}

// ReadSectionList reads a list of detector-to-section links written by
// WriteSectionList.
func ReadSectionList(r io.Reader) ([]models.DetectorSection, error) {
	if err := expectTag(r, TagSectionList); err != nil {
		return nil, err
	}
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, fmt.Errorf("reading section count: %w", err)
	}
	sections := make([]models.DetectorSection, 0, min(n, initAlloc))
	for range n {
		var detectorID, sectionID int64
		if err := readFields(r, &detectorID, &sectionID); err != nil {
			return nil, fmt.Errorf("reading section record: %w", err)
		}
		sections = append(sections, models.DetectorSection{
			DetectorID: models.DetectorID(detectorID),
			SectionID:  models.SectionID(sectionID),
		})
	}
	return sections, nil
}

// ReadOutputList reads a list of simulated detector flow records written by
// WriteOutputList.
func ReadOutputList(r io.Reader) ([]models.OutputFlowData, error) {
	if err := expectTag(r, TagOutputList); err != nil {
		return nil, err
	}
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, fmt.Errorf("reading output count: %w", err)
	}
	flows := make([]models.OutputFlowData, 0, min(n, initAlloc))
	for range n {
		var detectorID, sectionID int64
		if err := readFields(r, &detectorID, &sectionID); err != nil {
			return nil, fmt.Errorf("reading output record: %w", err)
		}
		flow, err := readFlowMap(r)
		if err != nil {
			return nil, fmt.Errorf("reading output record flow: %w", err)
		}
		flows = append(flows, models.OutputFlowData{
			DetectorID: models.DetectorID(detectorID),
			FlowData:   flow,
			SectionID:  models.SectionID(sectionID),
		})
	}
	return flows, nil
}
