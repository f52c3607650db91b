// Package engine orchestrates one text-to-speech run: resolve the input
// text, prepare it, synthesize exactly once, optionally play the result.
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/d1nch8g/narrate/sound"
	"github.com/d1nch8g/narrate/text"
	"github.com/d1nch8g/narrate/tts"
)

// ExampleText is spoken when no input file is given or the given one cannot
// be read.
const ExampleText = `This is a longer English text to demonstrate the text-to-speech capabilities.
The system can handle multiple sentences and will generate natural-sounding speech.
You can use this tool to convert any text file to speech, or run it without arguments to hear this example.
The text processing function will automatically split long texts into optimal chunks for better speech synthesis.`

const fallbackBaseName = "example_output"

// ErrEmptyText reports input that normalizes to nothing speakable.
var ErrEmptyText = errors.New("no content to synthesize")

// Config holds the per-invocation settings for the engine.
type Config struct {
	MinChars int
	MaxChars int
	Options  tts.Options
	// OutPath overrides the derived output file path when set.
	OutPath string
	Play    bool
}

// Engine runs the synthesis pipeline.
type Engine struct {
	config Config
	synth  tts.Synthesizer
	player sound.Player
	log    zerolog.Logger
}

func New(config Config, synth tts.Synthesizer, player sound.Player, log zerolog.Logger) *Engine {
	if config.MinChars == 0 {
		config.MinChars = text.MinChars
	}
	if config.MaxChars == 0 {
		config.MaxChars = text.MaxChars
	}
	return &Engine{
		config: config,
		synth:  synth,
		player: player,
		log:    log,
	}
}

// Run converts one input into one audio file and returns the output path.
// An empty inputPath means the built-in example text.
func (e *Engine) Run(ctx context.Context, inputPath string) (string, error) {
	raw, baseName := e.resolveInput(inputPath)

	processed, err := text.Prepare(raw, e.config.MinChars, e.config.MaxChars)
	if err != nil {
		return "", err
	}
	if processed == "" {
		return "", ErrEmptyText
	}
	e.log.Debug().Int("chars", len(processed)).Msg("text prepared")

	outPath := e.config.OutPath
	if outPath == "" {
		outPath = baseName + "." + e.config.Options.Container.Ext()
	}

	e.log.Info().Str("engine", e.synth.Name()).Str("output", outPath).Msg("generating speech audio")
	if err := e.synth.SynthesizeToFile(ctx, processed, e.config.Options, outPath); err != nil {
		return "", fmt.Errorf("synthesis failed: %w", err)
	}

	if e.config.Play {
		e.log.Info().Str("file", outPath).Msg("playing")
		if err := e.player.Play(ctx, outPath); err != nil {
			return outPath, fmt.Errorf("playback failed: %w", err)
		}
	}
	return outPath, nil
}

// resolveInput returns the raw text to synthesize and the base name for the
// output file. Any read failure falls back to the example text.
func (e *Engine) resolveInput(path string) (raw, baseName string) {
	if path == "" {
		e.log.Info().Msg("no input file, using example text")
		return ExampleText, fallbackBaseName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		e.log.Warn().Err(err).Str("path", path).Msg("cannot read input, using example text")
		return ExampleText, fallbackBaseName
	}
	if !utf8.Valid(data) {
		e.log.Warn().Str("path", path).Msg("input is not valid UTF-8, using example text")
		return ExampleText, fallbackBaseName
	}

	e.log.Info().Str("path", path).Msg("processing file")
	base := filepath.Base(path)
	return string(data), strings.TrimSuffix(base, filepath.Ext(base))
}
