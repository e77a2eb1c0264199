package osu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/soravia/notedense/model"
)

// Parse extracts hit object start times from .osu file content. Lines
// before the [HitObjects] section are ignored and malformed hit object
// lines are skipped, matching the leniency of the game client. Hold and
// slider starts count as onsets; their durations do not.
func Parse(r io.Reader) (model.Beatmap, error) {
	var b model.Beatmap
	inHitObjects := false

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		// .osu files are typically CRLF
		line := strings.TrimRight(scanner.Text(), "\r")
		if !inHitObjects {
			if line == "[HitObjects]" {
				inHitObjects = true
			}
			continue
		}
		t, err := readNote(line)
		if err != nil {
			continue
		}
		b.Onsets = append(b.Onsets, t)
	}
	if err := scanner.Err(); err != nil {
		return model.Beatmap{}, fmt.Errorf("reading beatmap: %w", err)
	}
	if !inHitObjects {
		return model.Beatmap{}, errors.New("invalid .osu file: no [HitObjects] section")
	}
	return b, nil
}

// readNote parses one hit object line. The third comma field is the
// start time in milliseconds.
func readNote(line string) (float64, error) {
	parts := strings.SplitN(line, ",", 4)
	if len(parts) < 3 {
		return 0, fmt.Errorf("hit object line only has %v fields", len(parts))
	}
	t, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse hit object time %q: %w", parts[2], err)
	}
	return t, nil
}

func ParseFile(path string) (model.Beatmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Beatmap{}, fmt.Errorf("opening beatmap: %w", err)
	}
	defer f.Close()
	return Parse(f)
}
