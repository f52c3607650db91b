package sound

import "context"

// Player defines the interface for audio playback
type Player interface {
	// Play plays a rendered audio file on the local output device. It blocks
	// until playback finishes or the context is cancelled.
	Play(ctx context.Context, path string) error
}
