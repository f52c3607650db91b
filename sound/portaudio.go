package sound

import (
	"context"
	"fmt"

	"github.com/gordonklaus/portaudio"
)

type PlayerConfig struct {
	FramesPerBuffer int
}

type PortaudioPlayer struct {
	config PlayerConfig
}

var _ Player = (*PortaudioPlayer)(nil)

func NewPortaudioPlayer(config PlayerConfig) *PortaudioPlayer {
	return &PortaudioPlayer{config: config}
}

func GetDefaultConfig() PlayerConfig {
	return PlayerConfig{
		FramesPerBuffer: 1024,
	}
}

// Play decodes the file and streams its samples to the default output
// device.
func (p *PortaudioPlayer) Play(ctx context.Context, path string) error {
	pcm, err := DecodeFile(path)
	if err != nil {
		return err
	}

	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize portaudio: %w", err)
	}
	defer portaudio.Terminate()

	buffer := make([]int16, p.config.FramesPerBuffer*pcm.Channels)
	stream, err := portaudio.OpenDefaultStream(0, pcm.Channels, float64(pcm.SampleRate), p.config.FramesPerBuffer, buffer)
	if err != nil {
		return fmt.Errorf("failed to open audio stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return err
	}
	defer stream.Stop()

	for offset := 0; offset < len(pcm.Samples); offset += len(buffer) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n := copy(buffer, pcm.Samples[offset:])
		// Zero-fill the tail of the last buffer
		for i := n; i < len(buffer); i++ {
			buffer[i] = 0
		}

		if err := stream.Write(); err != nil {
			return fmt.Errorf("failed to write audio: %w", err)
		}
	}
	return nil
}
