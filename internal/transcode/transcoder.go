package transcode

import (
	"context"
	"fmt"
	"strings"
)

// Transcoder converts a compressed audio container into single-channel
// 16-bit little-endian PCM at 48 kHz.
type Transcoder interface {
	Transcode(ctx context.Context, compressed []byte) ([]byte, error)
}

// Error carries the external tool's diagnostic output. Malformed input
// always surfaces as an Error, never as a panic.
type Error struct {
	Output string
	Err    error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("transcode failed: %v", e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += ": " + out
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}
