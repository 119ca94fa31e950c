// Package codec implements the binary stream format for detector dataset files.
// A file starts with a fixed magic-and-version header followed by tagged,
// length-prefixed values, all encoded big endian.
package codec

import (
	"encoding/binary"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/flowscope/core/internal/models"
)

// WriteHeader writes the stream magic and format version.
func WriteHeader(w io.Writer) error {
	if _, err := w.Write(magic[:]); err != nil {
		return fmt.Errorf("writing magic: %w", err)
	}
	if err := binary.Write(w, binary.BigEndian, version); err != nil {
		return fmt.Errorf("writing version: %w", err)
	}
	return nil
}

// WriteLocationMap writes a detector location map as a tagged value.
// Entries are written in detector id order so identical maps always produce
// identical bytes.
func WriteLocationMap(w io.Writer, locations map[models.DetectorID]models.DetectorSite) error {
	if err := writeFields(w, TagLocationMap, uint32(len(locations))); err != nil {
		return fmt.Errorf("writing location header: %w", err)
	}
	for _, id := range slices.Sorted(maps.Keys(locations)) {
		site := locations[id]
		err := writeFields(w, int64(id), uint8(site.Direction), site.Position.X, site.Position.Y)
		if err != nil {
			return fmt.Errorf("writing location entry: %w", err)
		}
	}
	return nil
}

// WriteInt writes a single integer as a tagged value.
func WriteInt(w io.Writer, v int64) error {
	if err := writeFields(w, TagInt, v); err != nil {
		return fmt.Errorf("writing int value: %w", err)
	}
	return nil
}

// WriteGroundList writes a list of measured detector flow records as a
// tagged value.
func WriteGroundList(w io.Writer, detectors []models.DetectorFlowData) error {
	if err := writeFields(w, TagGroundList, uint32(len(detectors))); err != nil {
		return fmt.Errorf("writing ground header: %w", err)
	}
	for _, d := range detectors {
		if err := writeFields(w, int64(d.DetectorID), uint8(d.Direction)); err != nil {
			return fmt.Errorf("writing ground record: %w", err)
		}
		if err := writeString(w, d.Name); err != nil {
			return fmt.Errorf("writing ground record name: %w", err)
		}
		if err := binary.Write(w, binary.BigEndian, int64(d.Year)); err != nil {
			return fmt.Errorf("writing ground record year: %w", err)
		}
		if err := writeFlowMap(w, d.FlowData); err != nil {
			return fmt.Errorf("writing ground record flow: %w", err)
		}
	}
	return nil
}

// WriteSectionList writes a list of detector-to-section links as a tagged value.
func WriteSectionList(w io.Writer, sections []models.DetectorSection) error {
	if err := writeFields(w, TagSectionList, uint32(len(sections))); err != nil {
		return fmt.Errorf("writing section header: %w", err)
	}
	for _, s := range sections {
		if err := writeFields(w, int64(s.DetectorID), int64(s.SectionID)); err != nil {
			return fmt.Errorf("writing section record: %w", err)
		}
	}
	return nil
}

// WriteOutputList writes a list of simulated detector flow records as a
// tagged value.
func WriteOutputList(w io.Writer, flows []models.OutputFlowData) error {
	if err := writeFields(w, TagOutputList, uint32(len(flows))); err != nil {
		return fmt.Errorf("writing output header: %w", err)
	}
	for _, f := range flows {
		if err := writeFields(w, int64(f.DetectorID), int64(f.SectionID)); err != nil {
			return fmt.Errorf("writing output record: %w", err)
		}
		if err := writeFlowMap(w, f.FlowData); err != nil {
			return fmt.Errorf("writing output record flow: %w", err)
		}
	}
	return nil
}
