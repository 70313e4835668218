// This tool prints the chunk layout and metadata of the passed wav file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/riffwav"
)

const missingPathMessage = "You must pass the path of the file to inspect"

var errMissingPath = errors.New("missing path argument")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errMissingPath
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	w, err := riffwav.Decode(data)
	if err != nil {
		return err
	}

	for _, chunk := range w.Chunks {
		printChunk(out, chunk)
	}

	dur, err := w.Duration()
	if err == nil {
		fmt.Fprintf(out, "Duration: %s\n", dur)
	}

	return nil
}

func printChunk(out io.Writer, chunk riffwav.Chunk) {
	switch c := chunk.(type) {
	case *riffwav.FmtChunk:
		fmt.Fprintf(out, "%s: format %d, %d channel(s), %d Hz, %d bit\n",
			c.Tag(), c.FormatTag, c.NumChannels, c.SampleRate, c.BitsPerSample)
	case *riffwav.DataChunk:
		fmt.Fprintf(out, "%s: %d bytes\n", c.Tag(), c.Length())
	case *riffwav.CueChunk:
		fmt.Fprintf(out, "%s: %d point(s)\n", c.Tag(), len(c.Points))

		for i, p := range c.Points {
			fmt.Fprintf(out, "\tcue point [%d]:\t%+v\n", i, p)
		}
	case *riffwav.SmplChunk:
		fmt.Fprintf(out, "%s: %d loop(s)\n", c.Tag(), len(c.Loops))

		for i, l := range c.Loops {
			fmt.Fprintf(out, "\tloop [%d]:\t%+v\n", i, l)
		}
	case *riffwav.BextChunk:
		fmt.Fprintf(out, "%s: %q by %q\n", c.Tag(), c.Description, c.Originator)
	case *riffwav.CartChunk:
		fmt.Fprintf(out, "%s: %q (%s)\n", c.Tag(), c.Title, c.Artist)
	case *riffwav.ListChunk:
		printListChunk(out, c)
	default:
		fmt.Fprintf(out, "%s: %d bytes (unparsed)\n", chunk.Tag(), chunk.Length())
	}
}

func printListChunk(out io.Writer, c *riffwav.ListChunk) {
	if c.Body == nil {
		fmt.Fprintf(out, "%s: empty\n", c.Tag())
		return
	}

	switch body := c.Body.(type) {
	case *riffwav.ADTLChunk:
		fmt.Fprintf(out, "%s/%s: %d item(s)\n", c.Tag(), body.Tag(), len(body.Items))

		for _, item := range body.Items {
			label, ok := item.(*riffwav.LabelChunk)
			if ok {
				fmt.Fprintf(out, "\t%s cue %d: %s\n", label.Tag(), label.CueID, label.Label)
			}
		}
	case *riffwav.InfoChunk:
		fmt.Fprintf(out, "%s/%s:\n", c.Tag(), body.Tag())

		for _, e := range body.Entries {
			fmt.Fprintf(out, "\t%s: %s\n", e.ID, e.Value)
		}
	default:
		fmt.Fprintf(out, "%s/%s: %d bytes\n", c.Tag(), c.Body.Tag(), c.Body.Length())
	}
}
