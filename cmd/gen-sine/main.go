// This tool generates a mono 16-bit PCM sine wave file.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/cwbudde/riffwav"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-sine", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	length := flagSet.Float64("length", 5, "length in seconds of output file")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	log.Printf("generating a %f sec sine wav at %f hz", *length, *frequency)

	const (
		sampleRate = 48000
		bitDepth   = 16
		amplitude  = 0.8
	)

	numSamples := int(sampleRate * *length)
	data := make([]byte, numSamples*2)

	for i := 0; i < numSamples; i++ {
		fv := amplitude * math.Sin(float64(i)/sampleRate**frequency*2*math.Pi)
		binary.LittleEndian.PutUint16(data[i*2:], uint16(int16(fv*math.MaxInt16)))
	}

	w := &riffwav.Wave{}
	w.AddChunk(&riffwav.FmtChunk{
		FormatTag:      1,
		NumChannels:    1,
		SampleRate:     sampleRate,
		AvgBytesPerSec: sampleRate * bitDepth / 8,
		BlockAlign:     bitDepth / 8,
		BitsPerSample:  bitDepth,
	})
	w.AddChunk(&riffwav.DataChunk{Data: data})

	out, err := w.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode the sine file: %w", err)
	}

	err = os.WriteFile(*output, out, 0o644)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", *output, err)
	}

	return nil
}
