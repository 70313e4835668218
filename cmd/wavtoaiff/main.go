// This tool converts a wav file into an identical aiff file and stores
// it in the same folder as the source.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cwbudde/riffwav"
	"github.com/go-audio/aiff"
)

var flagPath = flag.String("path", "", "The path to the wav file to convert to aiff")

func main() {
	flag.Parse()

	if *flagPath == "" {
		fmt.Println("You must set the -path flag")
		os.Exit(1)
	}

	err := convert(*flagPath)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func convert(sourcePath string) error {
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("invalid path %s: %w", sourcePath, err)
	}

	w, err := riffwav.Decode(data)
	if err != nil {
		return fmt.Errorf("invalid WAV file %s: %w", sourcePath, err)
	}

	buf, err := w.IntBuffer()
	if err != nil {
		return fmt.Errorf("couldn't read the PCM samples: %w", err)
	}

	fmtChunk := w.FormatChunk()
	outPath := sourcePath[:len(sourcePath)-len(filepath.Ext(sourcePath))] + ".aif"

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}
	defer outFile.Close()

	encoder := aiff.NewEncoder(outFile,
		int(fmtChunk.SampleRate), int(fmtChunk.BitsPerSample), int(fmtChunk.NumChannels))

	err = encoder.Write(buf)
	if err != nil {
		return fmt.Errorf("failed to write the aiff samples: %w", err)
	}

	err = encoder.Close()
	if err != nil {
		return fmt.Errorf("failed to finalize %s: %w", outPath, err)
	}

	fmt.Printf("Wav file converted to %s\n", outPath)

	return nil
}
