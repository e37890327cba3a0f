// Package calcstate holds the durable snapshot of an interpreter session
// and the codec that turns it into an opaque storage blob and back.
package calcstate

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrCorruptState is returned by Decode when the blob is truncated, has an
// unrecognised magic/version, or otherwise cannot be parsed. Callers treat
// this identically to an empty blob: start a fresh session.
var ErrCorruptState = errors.New("calcstate: corrupt state blob")

// magic tags the blob so an empty or foreign byte sequence is rejected
// outright rather than partially decoded. version allows the framing to
// evolve without having to special-case old blobs - none currently exist
// to be compatible with, but the field costs two bytes and buys room to
// grow.
const (
	magic          uint32 = 0x43414c43 // "CALC"
	currentVersion uint16 = 1
)

// Encode serializes s into a self-describing, length-prefixed binary blob.
// Encode never fails: every field is already in a representable shape.
func Encode(s *SessionState) []byte {
	var buf bytes.Buffer

	_ = binary.Write(&buf, binary.BigEndian, magic)
	_ = binary.Write(&buf, binary.BigEndian, currentVersion)

	writeString(&buf, s.Tag)
	writeStringSlice(&buf, s.LoadedQueries)
	writeStringSlice(&buf, s.QueriesSoFar)
	_ = binary.Write(&buf, binary.BigEndian, s.LinesToSkip)
	_ = binary.Write(&buf, binary.BigEndian, s.LinesSoFar)

	if s.LastRandomNumber != nil {
		_ = buf.WriteByte(1)
		_ = binary.Write(&buf, binary.BigEndian, *s.LastRandomNumber)
	} else {
		_ = buf.WriteByte(0)
	}

	return buf.Bytes()
}

// Decode is the partial inverse of Encode. Anything that fails to parse,
// including an empty blob, returns ErrCorruptState; callers that treat an
// empty blob as a fresh session check for it before calling Decode (see
// LoadOrDefault).
func Decode(data []byte) (*SessionState, error) {
	r := bytes.NewReader(data)

	var gotMagic uint32
	if err := binary.Read(r, binary.BigEndian, &gotMagic); err != nil {
		return nil, fmt.Errorf("%w: reading magic: %v", ErrCorruptState, err)
	}
	if gotMagic != magic {
		return nil, fmt.Errorf("%w: unrecognised magic %#x", ErrCorruptState, gotMagic)
	}

	var version uint16
	if err := binary.Read(r, binary.BigEndian, &version); err != nil {
		return nil, fmt.Errorf("%w: reading version: %v", ErrCorruptState, err)
	}
	if version != currentVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptState, version)
	}

	tag, err := readString(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading tag: %v", ErrCorruptState, err)
	}

	loaded, err := readStringSlice(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading loaded_queries: %v", ErrCorruptState, err)
	}

	soFar, err := readStringSlice(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading queries_so_far: %v", ErrCorruptState, err)
	}

	var linesToSkip, linesSoFar uint32
	if err := binary.Read(r, binary.BigEndian, &linesToSkip); err != nil {
		return nil, fmt.Errorf("%w: reading lines_to_skip: %v", ErrCorruptState, err)
	}
	if err := binary.Read(r, binary.BigEndian, &linesSoFar); err != nil {
		return nil, fmt.Errorf("%w: reading lines_so_far: %v", ErrCorruptState, err)
	}

	present, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("%w: reading random-number presence tag: %v", ErrCorruptState, err)
	}

	var lastRandom *int64
	switch present {
	case 0:
		// absent, leave nil
	case 1:
		var v int64
		if err := binary.Read(r, binary.BigEndian, &v); err != nil {
			return nil, fmt.Errorf("%w: reading last_random_number: %v", ErrCorruptState, err)
		}
		lastRandom = &v
	default:
		return nil, fmt.Errorf("%w: unknown presence tag %d", ErrCorruptState, present)
	}

	return &SessionState{
		Tag:              tag,
		LoadedQueries:    loaded,
		QueriesSoFar:     soFar,
		LinesToSkip:      linesToSkip,
		LinesSoFar:       linesSoFar,
		LastRandomNumber: lastRandom,
	}, nil
}

func writeString(buf *bytes.Buffer, s string) {
	_ = binary.Write(buf, binary.BigEndian, uint32(len(s)))
	buf.WriteString(s)
}

func readString(r *bytes.Reader) (string, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return "", err
	}
	if uint64(n) > uint64(r.Len()) {
		return "", io.ErrUnexpectedEOF
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return "", err
	}
	return string(b), nil
}

func writeStringSlice(buf *bytes.Buffer, ss []string) {
	_ = binary.Write(buf, binary.BigEndian, uint32(len(ss)))
	for _, s := range ss {
		writeString(buf, s)
	}
}

func readStringSlice(r *bytes.Reader) ([]string, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return nil, err
	}
	// A corrupt/huge count would otherwise drive an enormous allocation
	// before the first ReadFull ever fails.
	if uint64(n) > uint64(r.Len()) {
		return nil, io.ErrUnexpectedEOF
	}
	out := make([]string, 0, n)
	for i := uint32(0); i < n; i++ {
		s, err := readString(r)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
