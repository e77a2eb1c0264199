package model

// Onsets is an ascending series of note start times in milliseconds.
type Onsets = []float64

type Beatmap struct {
	Onsets Onsets
}

// PlayLength returns the time between the first and last onset in
// milliseconds. ok is false when the map has no onsets.
func (b Beatmap) PlayLength() (length float64, ok bool) {
	if len(b.Onsets) == 0 {
		return 0, false
	}
	return b.Onsets[len(b.Onsets)-1] - b.Onsets[0], true
}

// RelativeOnsets returns the onsets shifted so the first sits at 0.
// The receiver's slice is left untouched; when the series already
// starts at 0 it is returned as-is.
func (b Beatmap) RelativeOnsets() Onsets {
	if len(b.Onsets) == 0 || b.Onsets[0] == 0 {
		return b.Onsets
	}
	first := b.Onsets[0]
	res := make(Onsets, len(b.Onsets))
	for i, t := range b.Onsets {
		res[i] = t - first
	}
	return res
}
