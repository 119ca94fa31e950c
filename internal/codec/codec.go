// Package codec implements the binary stream format for detector dataset files.
// A file starts with a fixed magic-and-version header followed by tagged,
// length-prefixed values, all encoded big endian.
package codec

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"maps"
	"slices"
)

// magic identifies a flow dataset stream.
var magic = [3]byte{'F', 'D', 'S'}

// version is the only format revision this codec reads and writes.
const version uint8 = 1

// initAlloc caps pre-allocation from counts and lengths read out of the
// stream, which a corrupt file controls. Collections and strings still grow
// to their real size.
const initAlloc = 4096

// Value tags. Each top-level value in a stream is introduced by one of these.
const (
	TagLocationMap uint8 = 0x01
	TagInt         uint8 = 0x02
	TagGroundList  uint8 = 0x03
	TagSectionList uint8 = 0x04
	TagOutputList  uint8 = 0x05
)

// PeekTag reports the tag of the next value without consuming it.
func PeekTag(r *bufio.Reader) (uint8, error) {
	b, err := r.Peek(1)
	if err != nil {
		return 0, fmt.Errorf("peeking value tag: %w", err)
	}
	return b[0], nil
}

func writeFields(w io.Writer, fields ...any) error {
	for _, f := range fields {
		if err := binary.Write(w, binary.BigEndian, f); err != nil {
			return err
		}
	}
	return nil
}

func readFields(r io.Reader, fields ...any) error {
	for _, f := range fields {
		if err := binary.Read(r, binary.BigEndian, f); err != nil {
			return err
		}
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.BigEndian, uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return "", err
	}
	var b bytes.Buffer
	b.Grow(int(min(n, initAlloc)))
	if _, err := io.CopyN(&b, r, int64(n)); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Flow series are written in timestamp order so identical datasets always
// produce identical files.
func writeFlowMap(w io.Writer, flow map[int64]float64) error {
	if err := binary.Write(w, binary.BigEndian, uint32(len(flow))); err != nil {
		return err
	}
	for _, ts := range slices.Sorted(maps.Keys(flow)) {
		if err := writeFields(w, ts, flow[ts]); err != nil {
			return err
		}
	}
	return nil
}

func readFlowMap(r io.Reader) (map[int64]float64, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, err
	}
	flow := make(map[int64]float64, min(n, initAlloc))
	for range n {
		var (
			ts     int64
			volume float64
		)
		if err := readFields(r, &ts, &volume); err != nil {
			return nil, err
		}
		flow[ts] = volume
	}
	return flow, nil
}
