package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/riffwav"
)

func TestRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sine.wav")

	err := run([]string{"-output", path, "-frequency", "1000", "-length", "0.01"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read generated file: %v", err)
	}

	w, err := riffwav.Decode(data)
	if err != nil {
		t.Fatalf("decode generated file: %v", err)
	}

	c := w.FormatChunk()
	if c == nil || c.FormatTag != 1 || c.NumChannels != 1 || c.SampleRate != 48000 || c.BitsPerSample != 16 {
		t.Fatalf("format chunk mismatch: %+v", c)
	}

	if got := w.SampleCount(); got != 480 {
		t.Fatalf("expected 480 sample frames, got %d", got)
	}
}

func TestRunBadFlag(t *testing.T) {
	if err := run([]string{"-no-such-flag"}); err == nil {
		t.Fatal("expected an error for an unknown flag")
	}
}
