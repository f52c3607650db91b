package tts

import (
	"context"
	"fmt"
)

// Synthesizer defines the interface for text-to-speech engines. One call
// renders one audio file; the engine itself is opaque.
type Synthesizer interface {
	// Name identifies the engine in logs.
	Name() string

	// SynthesizeToFile renders text into an audio file at path. On error or
	// cancellation no file is left at path.
	SynthesizeToFile(ctx context.Context, text string, options Options, path string) error

	Close() error
}

// Container is the output audio container format.
type Container int

const (
	ContainerWAV Container = iota
	ContainerMP3
	ContainerOGG
)

// Ext returns the file extension for the container, without the dot.
func (c Container) Ext() string {
	switch c {
	case ContainerMP3:
		return "mp3"
	case ContainerOGG:
		return "ogg"
	default:
		return "wav"
	}
}

func (c Container) String() string { return c.Ext() }

// ParseContainer parses a container name as given on the command line.
func ParseContainer(s string) (Container, error) {
	switch s {
	case "wav":
		return ContainerWAV, nil
	case "mp3":
		return ContainerMP3, nil
	case "ogg":
		return ContainerOGG, nil
	default:
		return ContainerWAV, fmt.Errorf("unknown audio format %q (want wav, mp3 or ogg)", s)
	}
}

// Options represents the configuration for speech synthesis.
type Options struct {
	Voice     string
	Speed     float64
	Model     string
	Container Container
}

// DefaultOptions returns the synthesis settings used when nothing is
// configured.
func DefaultOptions() Options {
	return Options{
		Voice:     "marina",
		Speed:     1.0,
		Model:     "general",
		Container: ContainerWAV,
	}
}
