package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/d1nch8g/narrate/config"
	"github.com/d1nch8g/narrate/engine"
	"github.com/d1nch8g/narrate/sound"
	"github.com/d1nch8g/narrate/text"
	"github.com/d1nch8g/narrate/tts"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if ctx.Err() != nil || errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "\nCancelled.")
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		voice    string
		speed    float64
		format   string
		outPath  string
		minChars int
		maxChars int
		play     bool
		local    bool
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "narrate [file]",
		Short: "Convert a text file to synthesized speech audio",
		Long: `Narrate reads a UTF-8 text file, normalizes and chunks it for
speech synthesis, and renders it to a single audio file named after the
input. Without an argument (or when the file cannot be read) a built-in
example text is spoken and written to example_output.wav.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(verbose)

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			opts := tts.DefaultOptions()
			if cfg.Voice != "" {
				opts.Voice = cfg.Voice
			}
			if cfg.Speed > 0 {
				opts.Speed = cfg.Speed
			}
			if cfg.Model != "" {
				opts.Model = cfg.Model
			}
			// Flags override the environment
			if cmd.Flags().Changed("voice") {
				opts.Voice = voice
			}
			if cmd.Flags().Changed("speed") {
				opts.Speed = speed
			}
			opts.Container, err = tts.ParseContainer(format)
			if err != nil {
				return err
			}

			engineCfg := engine.Config{
				MinChars: cfg.MinChars,
				MaxChars: cfg.MaxChars,
				Options:  opts,
				OutPath:  outPath,
				Play:     play,
			}
			if cmd.Flags().Changed("min-chars") {
				engineCfg.MinChars = minChars
			}
			if cmd.Flags().Changed("max-chars") {
				engineCfg.MaxChars = maxChars
			}

			pref := tts.PreferAuto
			if cmd.Flags().Changed("local") {
				if local {
					pref = tts.PreferLocal
				} else {
					pref = tts.PreferCloud
				}
			}
			yandexCfg := tts.YandexConfig{
				Endpoint: cfg.Endpoint,
				APIKey:   cfg.APIKey,
				FolderID: cfg.FolderID,
			}
			synth, err := tts.Resolve(pref, yandexCfg, cfg.PiperModel, opts.Container, log)
			if err != nil {
				return err
			}
			defer synth.Close()

			var inputPath string
			if len(args) == 1 {
				inputPath = args[0]
			}

			eng := engine.New(engineCfg, synth, sound.NewPortaudioPlayer(sound.GetDefaultConfig()), log)
			out, err := eng.Run(cmd.Context(), inputPath)
			if err != nil {
				return err
			}

			log.Info().Str("file", out).Msg("audio saved")
			return nil
		},
	}

	cmd.Flags().StringVar(&voice, "voice", "", "synthesis voice")
	cmd.Flags().Float64Var(&speed, "speed", 1.0, "speech rate multiplier")
	cmd.Flags().StringVar(&format, "format", "wav", "audio container: wav, mp3 or ogg")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file path (default: <input basename>.<format>)")
	cmd.Flags().IntVar(&minChars, "min-chars", text.MinChars, "minimum characters per synthesis chunk")
	cmd.Flags().IntVar(&maxChars, "max-chars", text.MaxChars, "maximum characters per synthesis chunk")
	cmd.Flags().BoolVar(&play, "play", false, "play the audio after rendering")
	cmd.Flags().BoolVar(&local, "local", false, "force the local piper engine (--local=false forces the cloud engine)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}
