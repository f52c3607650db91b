package tts

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// PiperClient synthesizes speech with a locally installed piper binary.
// Unlike the cloud engine it needs no credentials or network, but it only
// produces WAV output.
type PiperClient struct {
	binary string
	model  string
}

var _ Synthesizer = (*PiperClient)(nil)

// LookupPiper reports the path of a piper binary on PATH, if any.
func LookupPiper() (string, bool) {
	path, err := exec.LookPath("piper")
	if err != nil {
		return "", false
	}
	return path, true
}

// NewPiperClient wraps the piper binary at the given path. model is the
// .onnx voice model path passed through to piper; empty means piper's
// default.
func NewPiperClient(binary, model string) *PiperClient {
	return &PiperClient{binary: binary, model: model}
}

func (p *PiperClient) Name() string { return "piper" }

func (p *PiperClient) SynthesizeToFile(ctx context.Context, text string, options Options, path string) error {
	if options.Container != ContainerWAV {
		return fmt.Errorf("piper produces wav only, not %s", options.Container)
	}

	tmp := path + ".part"
	cmd := exec.CommandContext(ctx, p.binary, p.args(options, tmp)...)
	cmd.Stdin = strings.NewReader(text)

	if out, err := cmd.CombinedOutput(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("piper failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return os.Rename(tmp, path)
}

func (p *PiperClient) args(options Options, outPath string) []string {
	args := []string{"--output_file", outPath}
	if p.model != "" {
		args = append(args, "--model", p.model)
	}
	if options.Speed > 0 && options.Speed != 1.0 {
		// piper expresses speed as an inverse length scale
		args = append(args, "--length_scale", strconv.FormatFloat(1/options.Speed, 'f', 3, 64))
	}
	return args
}

func (p *PiperClient) Close() error { return nil }
