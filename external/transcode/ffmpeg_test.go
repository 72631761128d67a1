package transcode

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sobeslab/intervox/internal/transcode"
)

func writeFakeBinary(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-ffmpeg")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake binary: %v", err)
	}
	return path
}

// The fake copies its input file to the (last-argument) output file,
// standing in for a successful ffmpeg run.
const fakeSuccessScript = `#!/bin/sh
for last; do :; done
cp "$2" "$last"
`

const fakeFailureScript = `#!/bin/sh
echo "Invalid data found when processing input" >&2
exit 1
`

func assertNoLeftoverTempDirs(t *testing.T, root string) {
	t.Helper()
	leftovers, err := filepath.Glob(filepath.Join(root, "intervox-transcode-*"))
	if err != nil {
		t.Fatalf("scan temp root: %v", err)
	}
	if len(leftovers) != 0 {
		t.Fatalf("expected no leftover temp dirs, found %v", leftovers)
	}
}

func TestTranscode_Success(t *testing.T) {
	tempRoot := t.TempDir()
	tr := &FFmpegTranscoder{
		binaryPath: writeFakeBinary(t, fakeSuccessScript),
		timeout:    5 * time.Second,
		tempRoot:   tempRoot,
	}

	pcm, err := tr.Transcode(context.Background(), []byte("compressed-bytes"))
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if string(pcm) != "compressed-bytes" {
		t.Fatalf("unexpected output: %q", pcm)
	}
	assertNoLeftoverTempDirs(t, tempRoot)
}

func TestTranscode_FailureCarriesDiagnosticOutput(t *testing.T) {
	tempRoot := t.TempDir()
	tr := &FFmpegTranscoder{
		binaryPath: writeFakeBinary(t, fakeFailureScript),
		timeout:    5 * time.Second,
		tempRoot:   tempRoot,
	}

	_, err := tr.Transcode(context.Background(), []byte("garbage"))
	if err == nil {
		t.Fatal("expected error for failing tool")
	}
	var terr *transcode.Error
	if !errors.As(err, &terr) {
		t.Fatalf("expected *transcode.Error, got %T", err)
	}
	if !strings.Contains(terr.Output, "Invalid data found") {
		t.Fatalf("expected tool stderr in error output, got %q", terr.Output)
	}
	assertNoLeftoverTempDirs(t, tempRoot)
}

func TestTranscode_MissingBinary(t *testing.T) {
	tempRoot := t.TempDir()
	tr := &FFmpegTranscoder{
		binaryPath: filepath.Join(t.TempDir(), "absent"),
		timeout:    5 * time.Second,
		tempRoot:   tempRoot,
	}

	_, err := tr.Transcode(context.Background(), []byte("bytes"))
	if err == nil {
		t.Fatal("expected error for missing binary")
	}
	var terr *transcode.Error
	if !errors.As(err, &terr) {
		t.Fatalf("expected *transcode.Error, got %T", err)
	}
	assertNoLeftoverTempDirs(t, tempRoot)
}
