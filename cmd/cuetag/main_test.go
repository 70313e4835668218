package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/riffwav"
)

func writeTestFile(t *testing.T) string {
	t.Helper()

	w := &riffwav.Wave{}
	w.AddChunk(&riffwav.FmtChunk{
		FormatTag: 1, NumChannels: 1, SampleRate: 8000,
		AvgBytesPerSec: 16000, BlockAlign: 2, BitsPerSample: 16,
	})
	w.AddChunk(&riffwav.DataChunk{Data: make([]byte, 64)})

	data, err := w.Encode()
	if err != nil {
		t.Fatalf("encode test file: %v", err)
	}

	path := filepath.Join(t.TempDir(), "plain.wav")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write test file: %v", err)
	}

	return path
}

func TestRun(t *testing.T) {
	in := writeTestFile(t)
	out := filepath.Join(filepath.Dir(in), "tagged.wav")

	err := run([]string{"-file", in, "-output", out, "-id", "3", "-frame", "16", "-label", "chorus"})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read tagged file: %v", err)
	}

	w, err := riffwav.Decode(data)
	if err != nil {
		t.Fatalf("decode tagged file: %v", err)
	}

	cue, ok := w.GetChunk(riffwav.TagCue).(*riffwav.CueChunk)
	if !ok || len(cue.Points) != 1 {
		t.Fatalf("cue chunk mismatch: %+v", cue)
	}

	if cue.Points[0].ID != 3 || cue.Points[0].SampleOffset != 16 {
		t.Fatalf("cue point mismatch: %+v", cue.Points[0])
	}

	adtl := findADTL(w)
	if adtl == nil || len(adtl.Items) != 1 {
		t.Fatalf("adtl chunk mismatch: %+v", adtl)
	}

	label := adtl.Items[0].(*riffwav.LabelChunk)
	if label.CueID != 3 || label.Label != "chorus" {
		t.Fatalf("label mismatch: %+v", label)
	}
}

func TestRunAppendsToExistingChunks(t *testing.T) {
	path := writeTestFile(t)

	err := run([]string{"-file", path, "-id", "1", "-frame", "8", "-label", "first"})
	if err != nil {
		t.Fatalf("first run: %v", err)
	}

	err = run([]string{"-file", path, "-id", "2", "-frame", "32", "-label", "second"})
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read tagged file: %v", err)
	}

	w, err := riffwav.Decode(data)
	if err != nil {
		t.Fatalf("decode tagged file: %v", err)
	}

	cue := w.GetChunk(riffwav.TagCue).(*riffwav.CueChunk)
	if len(cue.Points) != 2 {
		t.Fatalf("expected 2 cue points, got %d", len(cue.Points))
	}

	adtl := findADTL(w)
	if len(adtl.Items) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(adtl.Items))
	}
}

func TestRunMissingFlags(t *testing.T) {
	err := run([]string{"-label", "x"})
	if !errors.Is(err, errMissingFlags) {
		t.Fatalf("expected missing flags error, got %v", err)
	}
}
