package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayLength(t *testing.T) {
	assert := assert.New(t)

	b := Beatmap{Onsets: []float64{250, 500, 2250}}
	length, ok := b.PlayLength()
	assert.True(ok)
	assert.Equal(2000.0, length)

	_, ok = Beatmap{}.PlayLength()
	assert.False(ok)
}

func TestRelativeOnsets(t *testing.T) {
	assert := assert.New(t)

	b := Beatmap{Onsets: []float64{250, 500, 2250}}
	assert.Equal([]float64{0, 250, 2000}, b.RelativeOnsets())
	assert.Equal([]float64{250, 500, 2250}, b.Onsets)

	zeroBased := Beatmap{Onsets: []float64{0, 100}}
	assert.Equal([]float64{0, 100}, zeroBased.RelativeOnsets())
}
