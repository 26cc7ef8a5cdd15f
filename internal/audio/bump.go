// Package audio plays the collision cue when a move is blocked.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"
)

const (
	sampleRate   = beep.SampleRate(44100)
	bumpFreq     = 220
	bumpDuration = 60 * time.Millisecond
)

// Bumper plays a short tone. Audio is optional: when the speaker cannot be
// opened the bumper disables itself and logs once.
type Bumper struct {
	enabled bool
	log     logrus.FieldLogger

	once  sync.Once
	ready bool
}

// NewBumper returns a Bumper. A disabled bumper never touches the speaker.
func NewBumper(enabled bool, log logrus.FieldLogger) *Bumper {
	return &Bumper{enabled: enabled, log: log.WithField("component", "audio")}
}

func (b *Bumper) init() {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		b.log.WithError(err).Warn("audio initialization failed, bump tone disabled")
		return
	}
	b.ready = true
}

// Bump plays the collision tone.
func (b *Bumper) Bump() {
	if b == nil || !b.enabled {
		return
	}
	b.once.Do(b.init)
	if !b.ready {
		return
	}
	tone, err := Tone(bumpFreq, bumpDuration)
	if err != nil {
		b.log.WithError(err).Debug("bump tone unavailable")
		return
	}
	speaker.Play(tone)
}

// Tone returns a finite sine streamer of the given frequency and length.
func Tone(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(d), sine), nil
}
