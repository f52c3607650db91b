package tts

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Preference narrows the engine probe.
type Preference int

const (
	// PreferAuto probes for a local engine and falls back to the cloud.
	PreferAuto Preference = iota
	// PreferLocal requires a local engine.
	PreferLocal
	// PreferCloud skips the local probe entirely.
	PreferCloud
)

// Resolve picks a synthesis engine once at startup. A local piper install is
// preferred when it can serve the requested container; otherwise the Yandex
// cloud engine is used. The choice affects speed and locality, not output
// correctness.
func Resolve(pref Preference, yandex YandexConfig, piperModel string, container Container, log zerolog.Logger) (Synthesizer, error) {
	if pref != PreferCloud {
		if container == ContainerWAV {
			if binary, ok := LookupPiper(); ok {
				log.Debug().Str("binary", binary).Msg("using local piper engine")
				return NewPiperClient(binary, piperModel), nil
			}
		}
		if pref == PreferLocal {
			return nil, fmt.Errorf("local synthesis requested but no piper binary on PATH (wav output required)")
		}
	}

	log.Debug().Str("endpoint", yandex.Endpoint).Msg("using yandex cloud engine")
	return NewYandexClient(yandex)
}
