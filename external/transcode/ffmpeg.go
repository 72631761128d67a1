package transcode

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/sobeslab/intervox/internal/transcode"
)

const (
	pcmSampleRate = 48000
	pcmChannels   = 1
)

// FFmpegTranscoder shells out to ffmpeg through a per-call temp directory
// that is removed on every exit path.
type FFmpegTranscoder struct {
	binaryPath string
	timeout    time.Duration
	tempRoot   string // "" means the OS default
}

func NewFFmpegTranscoder(binaryPath string, timeout time.Duration) transcode.Transcoder {
	return &FFmpegTranscoder{binaryPath: binaryPath, timeout: timeout}
}

func (t *FFmpegTranscoder) Transcode(ctx context.Context, compressed []byte) ([]byte, error) {
	dir, err := os.MkdirTemp(t.tempRoot, "intervox-transcode-*")
	if err != nil {
		return nil, &transcode.Error{Err: err}
	}
	defer os.RemoveAll(dir)

	inputPath := filepath.Join(dir, "input.webm")
	outputPath := filepath.Join(dir, "output.pcm")
	if err := os.WriteFile(inputPath, compressed, 0o600); err != nil {
		return nil, &transcode.Error{Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, t.binaryPath,
		"-i", inputPath,
		"-f", "s16le",
		"-acodec", "pcm_s16le",
		"-ar", strconv.Itoa(pcmSampleRate),
		"-ac", strconv.Itoa(pcmChannels),
		"-y", outputPath,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, &transcode.Error{Output: stderr.String(), Err: err}
	}

	pcm, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, &transcode.Error{Output: stderr.String(), Err: err}
	}
	return pcm, nil
}
