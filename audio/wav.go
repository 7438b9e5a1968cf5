// Package audio handles the WAV data returned by speech engines: parsing,
// concatenating segments, measuring duration and transcoding through ffmpeg.
package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

const pcmFormat = 1

var (
	ErrNotWAV         = errors.New("not a wav file")
	ErrFormatMismatch = errors.New("wav segments have different formats")
)

type Format struct {
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// WAV is a decoded RIFF/WAVE file with its sample data kept as raw bytes.
type WAV struct {
	Format Format
	Data   []byte
}

func ParseWAV(b []byte) (*WAV, error) {
	if len(b) < 12 || string(b[0:4]) != "RIFF" || string(b[8:12]) != "WAVE" {
		return nil, ErrNotWAV
	}
	w := &WAV{}
	haveFmt, haveData := false, false
	pos := 12
	for pos+8 <= len(b) && !haveData {
		id := string(b[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(b[pos+4 : pos+8]))
		body := pos + 8
		// Streaming servers write a placeholder size for data.
		if size < 0 || body+size > len(b) {
			size = len(b) - body
		}
		switch id {
		case "fmt ":
			if size < 16 {
				return nil, fmt.Errorf("%w: short fmt chunk", ErrNotWAV)
			}
			c := b[body : body+16]
			w.Format = Format{
				AudioFormat:   binary.LittleEndian.Uint16(c[0:2]),
				Channels:      binary.LittleEndian.Uint16(c[2:4]),
				SampleRate:    binary.LittleEndian.Uint32(c[4:8]),
				ByteRate:      binary.LittleEndian.Uint32(c[8:12]),
				BlockAlign:    binary.LittleEndian.Uint16(c[12:14]),
				BitsPerSample: binary.LittleEndian.Uint16(c[14:16]),
			}
			haveFmt = true
		case "data":
			w.Data = b[body : body+size]
			haveData = true
		}
		pos = body + size + size%2
	}
	if !haveFmt || !haveData {
		return nil, fmt.Errorf("%w: missing fmt or data chunk", ErrNotWAV)
	}
	return w, nil
}

// Seconds is the playing time of the sample data.
func (w *WAV) Seconds() float64 {
	if w.Format.ByteRate == 0 {
		return 0
	}
	return float64(len(w.Data)) / float64(w.Format.ByteRate)
}

// Bytes encodes w with a canonical 44-byte header.
func (w *WAV) Bytes() []byte {
	var buf bytes.Buffer
	buf.Grow(44 + len(w.Data))
	le := binary.LittleEndian
	buf.WriteString("RIFF")
	binary.Write(&buf, le, uint32(36+len(w.Data)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	binary.Write(&buf, le, uint32(16))
	binary.Write(&buf, le, w.Format)
	buf.WriteString("data")
	binary.Write(&buf, le, uint32(len(w.Data)))
	buf.Write(w.Data)
	return buf.Bytes()
}

// Concat joins WAV files that share one format into a single file.
func Concat(parts [][]byte) ([]byte, error) {
	if len(parts) == 0 {
		return nil, errors.New("no wav segments to join")
	}
	first, err := ParseWAV(parts[0])
	if err != nil {
		return nil, fmt.Errorf("segment 1: %w", err)
	}
	if len(parts) == 1 {
		return first.Bytes(), nil
	}
	out := &WAV{Format: first.Format, Data: append([]byte(nil), first.Data...)}
	for i, p := range parts[1:] {
		w, err := ParseWAV(p)
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i+2, err)
		}
		if w.Format != first.Format {
			return nil, fmt.Errorf("segment %d: %w", i+2, ErrFormatMismatch)
		}
		out.Data = append(out.Data, w.Data...)
	}
	return out.Bytes(), nil
}

// Duration returns the playing time in seconds of an encoded WAV file.
func Duration(b []byte) (float64, error) {
	w, err := ParseWAV(b)
	if err != nil {
		return 0, err
	}
	return w.Seconds(), nil
}

// Silence returns PCM WAV of the given length, mostly for tests and samples.
func Silence(seconds float64, sampleRate uint32) []byte {
	f := Format{
		AudioFormat:   pcmFormat,
		Channels:      1,
		SampleRate:    sampleRate,
		ByteRate:      sampleRate * 2,
		BlockAlign:    2,
		BitsPerSample: 16,
	}
	n := int(seconds*float64(sampleRate)) * 2
	return (&WAV{Format: f, Data: make([]byte, n)}).Bytes()
}
