package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/soravia/notedense/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

// ExtractOnsets reads a Standard MIDI File and returns every note start
// as an onset in milliseconds, ascending. Note-off and zero-velocity
// note-on events are not onsets.
func ExtractOnsets(filepath string) (b model.Beatmap, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return b, fmt.Errorf("error reading midi file... %s", err.Error())
	}

	s, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return b, fmt.Errorf("error parsing midi file... %s", err.Error())
	}

	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel uint8
			var key uint8
			var velocity uint8
			if event.Message.GetNoteStart(&channel, &key, &velocity) {
				// TimeAt is microseconds
				b.Onsets = append(b.Onsets, float64(s.TimeAt(absTicks))/1000.0)
			}
		}
	}

	// tracks run in parallel, so merged onsets need ordering
	sort.Float64s(b.Onsets)
	return b, nil
}
