// Command seratoreader reads the Serato tags embedded in an MP3's ID3 GEOB
// frames and prints both the individual parsed tags and the merged
// Container view.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bogem/id3v2/v2"

	"github.com/mewkiz/serato/tag"
)

func init() {
	flag.Usage = usage
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: seratoreader FILE...")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}
	for _, path := range flag.Args() {
		if err := read(path); err != nil {
			log.Fatalln(err)
		}
	}
}

// geobFrame is the parsed structure of a GEOB frame's body, before the
// Serato-specific payload begins.
type geobFrame struct {
	encoding    byte
	mimeType    string
	fileName    string
	contentDesc string
	data        []byte
}

func parseGEOB(body []byte) (*geobFrame, error) {
	if len(body) < 1 {
		return nil, fmt.Errorf("parseGEOB: empty frame body")
	}
	r := bytes.NewReader(body[1:])
	mimeType, err := readNullASCII(r)
	if err != nil {
		return nil, fmt.Errorf("parseGEOB: mime-type: %w", err)
	}
	fileName, err := readNullASCII(r)
	if err != nil {
		return nil, fmt.Errorf("parseGEOB: filename: %w", err)
	}
	contentDesc, err := readNullASCII(r)
	if err != nil {
		return nil, fmt.Errorf("parseGEOB: content description: %w", err)
	}
	data := make([]byte, r.Len())
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("parseGEOB: data: %w", err)
	}
	return &geobFrame{encoding: body[0], mimeType: mimeType, fileName: fileName, contentDesc: contentDesc, data: data}, nil
}

func readNullASCII(r *bytes.Reader) (string, error) {
	var buf []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			return "", err
		}
		if b == 0 {
			break
		}
		buf = append(buf, b)
	}
	return string(buf), nil
}

func read(path string) error {
	tagFile, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	defer tagFile.Close()

	var container tag.Container
	for _, frame := range tagFile.GetFrames("GEOB") {
		unknown, ok := frame.(id3v2.UnknownFrame)
		if !ok {
			continue
		}
		geob, err := parseGEOB(unknown.Body)
		if err != nil {
			log.Println(err)
			continue
		}
		fmt.Println(geob.contentDesc)
		fmt.Printf("  Encoding: %d\n", geob.encoding)
		fmt.Printf("  Mime-Type: %q\n", geob.mimeType)
		fmt.Printf("  Filename: %q\n", geob.fileName)
		fmt.Printf("  Data: %d bytes\n", len(geob.data))

		switch geob.contentDesc {
		case tag.AnalysisID3Desc:
			if v, err := tag.ParseAnalysisID3(geob.data); err == nil {
				container.Analysis = v
				fmt.Printf("    %+v\n", v)
			}
		case tag.AutotagsID3Desc:
			if v, err := tag.ParseAutotagsID3(geob.data); err == nil {
				container.Autotags = v
				fmt.Printf("    %+v\n", v)
			}
		case tag.BeatgridID3Desc:
			if v, err := tag.ParseBeatgridID3(geob.data); err == nil {
				container.Beatgrid = v
				fmt.Printf("    %+v\n", v)
			}
		case tag.MarkersID3Desc:
			if v, err := tag.ParseMarkersID3(geob.data); err == nil {
				container.Markers = v
				fmt.Printf("    %+v\n", v)
			}
		case tag.Markers2ID3Desc:
			if v, err := tag.ParseMarkers2ID3(geob.data); err == nil {
				container.Markers2 = v
				fmt.Printf("    %+v\n", v)
			}
		case tag.OverviewID3Desc:
			if v, err := tag.ParseOverviewID3(geob.data); err == nil {
				container.Overview = v
				fmt.Printf("    %+v\n", v)
			}
		case tag.VidAssocID3Desc:
			if v, err := tag.ParseVidAssocID3(geob.data); err == nil {
				container.VidAssoc = v
				fmt.Printf("    %+v\n", v)
			}
		}
	}

	fmt.Println()
	fmt.Println("Merged values")
	if v, ok := container.AutoGain(); ok {
		fmt.Printf("  Auto Gain: %s\n", v)
	}
	if v, ok := container.GainDB(); ok {
		fmt.Printf("  Gain DB: %s\n", v)
	}
	fmt.Printf("  Cues: %+v\n", container.Cues())
	fmt.Printf("  Loops: %+v\n", container.Loops())
	if c, ok := container.TrackColor(); ok {
		fmt.Printf("  Track Color: %+v\n", c)
	}
	if locked, ok := container.BPMLocked(); ok {
		fmt.Printf("  BPM Locked: %v\n", locked)
	}
	return nil
}
