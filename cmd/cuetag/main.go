// This tool appends a cue point with a text label to a wav file,
// creating the cue and LIST/adtl chunks when the file has none.
package main

import (
	"encoding/binary"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cwbudde/riffwav"
)

var errMissingFlags = errors.New("missing -file or -label flag")

func main() {
	err := run(os.Args[1:])
	if err != nil {
		if errors.Is(err, errMissingFlags) {
			fmt.Println("You need to pass -file and -label to indicate what to tag.")
			os.Exit(1)
		}

		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("cuetag", flag.ContinueOnError)

	file := flagSet.String("file", "", "Path to the wav file to tag")
	output := flagSet.String("output", "", "Path to write to (defaults to the input path)")
	id := flagSet.Uint("id", 1, "Cue point ID")
	frame := flagSet.Uint("frame", 0, "Sample frame the cue point marks")
	label := flagSet.String("label", "", "Label text for the cue point")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *file == "" || *label == "" {
		return errMissingFlags
	}

	if *output == "" {
		*output = *file
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", *file, err)
	}

	w, err := riffwav.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", *file, err)
	}

	addCuePoint(w, uint32(*id), uint32(*frame))
	addLabel(w, uint32(*id), *label)

	out, err := w.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", *output, err)
	}

	err = os.WriteFile(*output, out, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", *output, err)
	}

	return nil
}

func addCuePoint(w *riffwav.Wave, id, frame uint32) {
	cue, ok := w.GetChunk(riffwav.TagCue).(*riffwav.CueChunk)
	if !ok {
		cue = &riffwav.CueChunk{}
		w.AddChunk(cue)
	}

	cue.Points = append(cue.Points, riffwav.CuePoint{
		ID:           id,
		Position:     frame,
		DataChunkID:  binary.LittleEndian.Uint32([]byte("data")),
		SampleOffset: frame,
	})
}

func addLabel(w *riffwav.Wave, id uint32, label string) {
	adtl := findADTL(w)
	if adtl == nil {
		adtl = &riffwav.ADTLChunk{}
		w.AddChunk(&riffwav.ListChunk{Body: adtl})
	}

	adtl.Items = append(adtl.Items, riffwav.NewLabelChunk(id, label))
}

func findADTL(w *riffwav.Wave) *riffwav.ADTLChunk {
	for _, chunk := range w.Chunks {
		list, ok := chunk.(*riffwav.ListChunk)
		if !ok {
			continue
		}

		if adtl, ok := list.Body.(*riffwav.ADTLChunk); ok {
			return adtl
		}
	}

	return nil
}
