package midi

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func writeTestFile(t *testing.T, s *smf.SMF) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.mid")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := s.WriteTo(f); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtractOnsets(t *testing.T) {
	// at 120bpm a quarter note is 500ms
	clock := smf.MetricTicks(480)
	var tr smf.Track
	tr.Add(0, smf.MetaTempo(120))
	tr.Add(0, gomidi.NoteOn(0, 60, 100))
	tr.Add(480, gomidi.NoteOn(0, 64, 100))
	tr.Add(0, gomidi.NoteOff(0, 60))
	tr.Add(480, gomidi.NoteOn(0, 67, 100))
	tr.Add(240, gomidi.NoteOff(0, 64))
	tr.Add(0, gomidi.NoteOff(0, 67))
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = clock
	if err := s.Add(tr); err != nil {
		t.Fatal(err)
	}

	b, err := ExtractOnsets(writeTestFile(t, s))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(b.Onsets, 3)
	assert.InDeltaSlice([]float64{0, 500, 1000}, b.Onsets, 0.01)
}

func TestExtractOnsetsIgnoresZeroVelocity(t *testing.T) {
	// running-status note-offs are note-ons with velocity 0
	clock := smf.MetricTicks(480)
	var tr smf.Track
	tr.Add(0, smf.MetaTempo(120))
	tr.Add(0, gomidi.NoteOn(0, 60, 100))
	tr.Add(480, gomidi.NoteOn(0, 60, 0))
	tr.Close(0)

	s := smf.New()
	s.TimeFormat = clock
	if err := s.Add(tr); err != nil {
		t.Fatal(err)
	}

	b, err := ExtractOnsets(writeTestFile(t, s))

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(b.Onsets, 1)
}

func TestExtractOnsetsMissingFile(t *testing.T) {
	_, err := ExtractOnsets(filepath.Join(t.TempDir(), "nope.mid"))
	assert.Error(t, err)
}
