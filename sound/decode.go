package sound

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/go-mp3"
)

// PCM holds decoded 16-bit audio ready for playback.
type PCM struct {
	SampleRate int
	Channels   int
	Samples    []int16
}

// DecodeFile decodes a rendered audio file into PCM. WAV and MP3 are
// supported; other containers can be synthesized but not played back.
func DecodeFile(path string) (*PCM, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return decodeWAV(path)
	case ".mp3":
		return decodeMP3(path)
	default:
		return nil, fmt.Errorf("playback not supported for %s files", filepath.Ext(path))
	}
}

func decodeWAV(path string) (*PCM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, fmt.Errorf("%s: not a RIFF/WAVE file", path)
	}

	var (
		channels   int
		sampleRate int
		bits       int
		pcmData    []byte
		haveFmt    bool
	)
	offset := 12
	for offset+8 <= len(data) {
		id := string(data[offset : offset+4])
		size := int(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
		body := offset + 8
		if body+size > len(data) {
			size = len(data) - body
		}
		switch id {
		case "fmt ":
			if size < 16 {
				return nil, fmt.Errorf("%s: malformed fmt chunk", path)
			}
			if format := binary.LittleEndian.Uint16(data[body:]); format != 1 {
				return nil, fmt.Errorf("%s: unsupported WAV encoding %d", path, format)
			}
			channels = int(binary.LittleEndian.Uint16(data[body+2:]))
			sampleRate = int(binary.LittleEndian.Uint32(data[body+4:]))
			bits = int(binary.LittleEndian.Uint16(data[body+14:]))
			haveFmt = true
		case "data":
			pcmData = data[body : body+size]
		}
		offset = body + size
		if size%2 == 1 {
			offset++ // chunks are word-aligned
		}
	}

	if !haveFmt || pcmData == nil {
		return nil, fmt.Errorf("%s: missing fmt or data chunk", path)
	}
	if bits != 16 {
		return nil, fmt.Errorf("%s: unsupported bit depth %d", path, bits)
	}
	return &PCM{
		SampleRate: sampleRate,
		Channels:   channels,
		Samples:    bytesToSamples(pcmData),
	}, nil
}

func decodeMP3(path string) (*PCM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	raw, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	// go-mp3 always emits 16-bit stereo
	return &PCM{
		SampleRate: decoder.SampleRate(),
		Channels:   2,
		Samples:    bytesToSamples(raw),
	}, nil
}

func bytesToSamples(audioBytes []byte) []int16 {
	samples := make([]int16, len(audioBytes)/2)
	for i := 0; i < len(samples); i++ {
		// Convert little-endian bytes to int16
		samples[i] = int16(binary.LittleEndian.Uint16(audioBytes[i*2 : i*2+2]))
	}
	return samples
}
