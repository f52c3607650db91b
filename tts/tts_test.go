package tts

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseContainer(t *testing.T) {
	tests := []struct {
		input   string
		want    Container
		wantErr bool
	}{
		{input: "wav", want: ContainerWAV},
		{input: "mp3", want: ContainerMP3},
		{input: "ogg", want: ContainerOGG},
		{input: "flac", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseContainer(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContainerExt(t *testing.T) {
	assert.Equal(t, "wav", ContainerWAV.Ext())
	assert.Equal(t, "mp3", ContainerMP3.Ext())
	assert.Equal(t, "ogg", ContainerOGG.Ext())
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, "marina", opts.Voice)
	assert.Equal(t, 1.0, opts.Speed)
	assert.Equal(t, ContainerWAV, opts.Container)
}

func TestPiperArgs(t *testing.T) {
	p := NewPiperClient("piper", "/models/en_US-ryan.onnx")
	args := p.args(Options{Speed: 2.0, Container: ContainerWAV}, "out.wav.part")
	assert.Equal(t, []string{
		"--output_file", "out.wav.part",
		"--model", "/models/en_US-ryan.onnx",
		"--length_scale", "0.500",
	}, args)

	// default speed and model add nothing
	p = NewPiperClient("piper", "")
	assert.Equal(t, []string{"--output_file", "x.part"}, p.args(Options{Speed: 1.0}, "x.part"))
}

func TestPiperRejectsNonWAV(t *testing.T) {
	p := NewPiperClient("piper", "")
	opts := DefaultOptions()
	opts.Container = ContainerMP3
	err := p.SynthesizeToFile(context.Background(), "hi", opts, "out.mp3")
	assert.ErrorContains(t, err, "wav only")
}

func TestNewYandexClientRequiresCredentials(t *testing.T) {
	_, err := NewYandexClient(YandexConfig{})
	assert.Error(t, err)
	_, err = NewYandexClient(YandexConfig{APIKey: "key"})
	assert.Error(t, err)
}

func TestResolvePrefersCloudWithoutPiper(t *testing.T) {
	t.Setenv("PATH", t.TempDir()) // no piper binary anywhere

	synth, err := Resolve(PreferAuto, YandexConfig{APIKey: "key", FolderID: "folder"}, "", ContainerWAV, zerolog.Nop())
	require.NoError(t, err)
	defer synth.Close()
	assert.Equal(t, "yandex", synth.Name())
}

func TestResolvePrefersLocalPiper(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "piper")
	require.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\nexit 0\n"), 0o755))
	t.Setenv("PATH", dir)

	synth, err := Resolve(PreferAuto, YandexConfig{}, "", ContainerWAV, zerolog.Nop())
	require.NoError(t, err)
	defer synth.Close()
	assert.Equal(t, "piper", synth.Name())

	// a non-wav container cannot be served locally, so the probe is skipped
	_, err = Resolve(PreferAuto, YandexConfig{}, "", ContainerMP3, zerolog.Nop())
	assert.Error(t, err) // cloud engine rejects the empty credentials
}

func TestResolveLocalWithoutPiperFails(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := Resolve(PreferLocal, YandexConfig{}, "", ContainerWAV, zerolog.Nop())
	assert.Error(t, err)
}

func TestResolveCloudSkipsProbe(t *testing.T) {
	synth, err := Resolve(PreferCloud, YandexConfig{APIKey: "key", FolderID: "folder"}, "", ContainerWAV, zerolog.Nop())
	require.NoError(t, err)
	defer synth.Close()
	assert.Equal(t, "yandex", synth.Name())
}
