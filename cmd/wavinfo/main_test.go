package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/riffwav"
)

func writeTestFile(t *testing.T) string {
	t.Helper()

	w := &riffwav.Wave{}
	w.AddChunk(&riffwav.FmtChunk{
		FormatTag: 1, NumChannels: 2, SampleRate: 44100,
		AvgBytesPerSec: 176400, BlockAlign: 4, BitsPerSample: 16,
	})
	w.AddChunk(&riffwav.DataChunk{Data: make([]byte, 400)})
	w.AddChunk(&riffwav.CueChunk{Points: []riffwav.CuePoint{{ID: 1, SampleOffset: 50}}})
	w.AddChunk(&riffwav.ListChunk{Body: &riffwav.ADTLChunk{
		Items: []riffwav.Chunk{riffwav.NewLabelChunk(1, "verse")},
	}})

	data, err := w.Encode()
	if err != nil {
		t.Fatalf("encode test file: %v", err)
	}

	path := filepath.Join(t.TempDir(), "info.wav")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write test file: %v", err)
	}

	return path
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer

	err := run([]string{writeTestFile(t)}, &buf)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	out := buf.String()

	for _, want := range []string{
		"fmt : format 1, 2 channel(s), 44100 Hz, 16 bit",
		"data: 400 bytes",
		"cue : 1 point(s)",
		"LIST/adtl: 1 item(s)",
		"labl cue 1: verse",
		"Duration:",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunMissingPath(t *testing.T) {
	err := run(nil, &bytes.Buffer{})
	if !errors.Is(err, errMissingPath) {
		t.Fatalf("expected missing path error, got %v", err)
	}
}
