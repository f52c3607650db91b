package tts

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"os"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/metadata"

	ttsv3 "github.com/yandex-cloud/go-genproto/yandex/cloud/ai/tts/v3"
)

const (
	YandexTTSEndpoint = "tts.api.cloud.yandex.net:443"
)

type YandexConfig struct {
	Endpoint string
	APIKey   string
	FolderID string
}

// YandexClient synthesizes speech through the Yandex SpeechKit TTS v3 gRPC
// API.
type YandexClient struct {
	client   ttsv3.SynthesizerClient
	conn     *grpc.ClientConn
	apiKey   string
	folderID string
}

// Ensure YandexClient implements Synthesizer interface
var _ Synthesizer = (*YandexClient)(nil)

func NewYandexClient(config YandexConfig) (*YandexClient, error) {
	if config.APIKey == "" || config.FolderID == "" {
		return nil, fmt.Errorf("yandex tts requires NARRATE_API_KEY and NARRATE_FOLDER_ID")
	}

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = YandexTTSEndpoint
	}

	// Create gRPC connection with TLS credentials
	creds := credentials.NewTLS(&tls.Config{})
	conn, err := grpc.Dial(endpoint, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to TTS service: %w", err)
	}

	return &YandexClient{
		client:   ttsv3.NewSynthesizerClient(conn),
		conn:     conn,
		apiKey:   config.APIKey,
		folderID: config.FolderID,
	}, nil
}

func (c *YandexClient) Name() string { return "yandex" }

// SynthesizeToFile streams the synthesized audio into path. Audio is written
// to a .part file and renamed into place only after the stream completes, so
// a cancelled or failed run never leaves a partial file at path.
func (c *YandexClient) SynthesizeToFile(ctx context.Context, text string, options Options, path string) error {
	ctx = metadata.AppendToOutgoingContext(ctx, "authorization", "Api-Key "+c.apiKey)
	ctx = metadata.AppendToOutgoingContext(ctx, "x-folder-id", c.folderID)

	stream, err := c.client.UtteranceSynthesis(ctx, c.buildRequest(text, options))
	if err != nil {
		return fmt.Errorf("failed to start synthesis: %w", err)
	}

	tmp := path + ".part"
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := c.receiveAudio(stream, out); err != nil {
		out.Close()
		os.Remove(tmp)
		return err
	}

	if err := out.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return os.Rename(tmp, path)
}

func (c *YandexClient) receiveAudio(stream ttsv3.Synthesizer_UtteranceSynthesisClient, out io.Writer) error {
	for {
		resp, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to receive audio data: %w", err)
		}
		if audioChunk := resp.GetAudioChunk(); audioChunk != nil {
			if _, err := out.Write(audioChunk.GetData()); err != nil {
				return fmt.Errorf("failed to write audio data: %w", err)
			}
		}
	}
}

func (c *YandexClient) buildRequest(text string, options Options) *ttsv3.UtteranceSynthesisRequest {
	req := &ttsv3.UtteranceSynthesisRequest{}
	req.SetModel(options.Model)
	req.SetText(text)

	// Voice and speed hints
	voiceHint := &ttsv3.Hints{}
	voiceHint.SetVoice(options.Voice)
	speedHint := &ttsv3.Hints{}
	speedHint.SetSpeed(options.Speed)
	req.SetHints([]*ttsv3.Hints{voiceHint, speedHint})

	// Output audio container
	containerAudio := &ttsv3.ContainerAudio{}
	containerAudio.SetContainerAudioType(yandexContainer(options.Container))
	audioSpec := &ttsv3.AudioFormatOptions{}
	audioSpec.SetContainerAudio(containerAudio)
	req.SetOutputAudioSpec(audioSpec)

	req.SetLoudnessNormalizationType(ttsv3.UtteranceSynthesisRequest_LUFS)

	return req
}

func yandexContainer(c Container) ttsv3.ContainerAudio_ContainerAudioType {
	switch c {
	case ContainerMP3:
		return ttsv3.ContainerAudio_MP3
	case ContainerOGG:
		return ttsv3.ContainerAudio_OGG_OPUS
	default:
		return ttsv3.ContainerAudio_WAV
	}
}

func (c *YandexClient) Close() error {
	return c.conn.Close()
}
