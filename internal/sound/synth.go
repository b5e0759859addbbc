package sound

import (
	"math"

	"github.com/tomz197/snake/internal/game"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	frameBytes   = 4 * ChannelCount // float32 per channel
)

// cues renders the sample buffers for every event that has a sound.
func cues() map[game.Event][]byte {
	return map[game.Event][]byte{
		game.EventFoodEaten: genEat(),
		game.EventGameOver:  genGameOver(),
		game.EventWon:       genWin(),
	}
}

// genEat: short rising chirp.
func genEat() []byte {
	n := int(0.09 * SampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.5, 0.0, 0.1)
		freq := 480 + 720*p
		s := math.Sin(2*math.Pi*freq*t) * env * 0.5
		s += math.Sin(2*math.Pi*freq*3*t) * env * 0.06
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGameOver: three falling notes, E4 C4 A3.
func genGameOver() []byte {
	return genNotes(0.75, []note{{329.63, 0.00}, {261.63, 0.14}, {220.00, 0.28}}, -0.025)
}

// genWin: three rising notes, C5 E5 G5.
func genWin() []byte {
	return genNotes(0.6, []note{{523.25, 0.00}, {659.25, 0.12}, {783.99, 0.24}}, 0)
}

type note struct {
	freq, onset float64
}

// genNotes mixes decaying notes into one buffer. bend is the relative pitch
// change over each note's life.
func genNotes(dur float64, notes []note, bend float64) []byte {
	n := int(dur * SampleRate)
	mix := make([]float64, n)
	for _, nt := range notes {
		start := int(nt.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := nt.freq * (1 + np*bend)
			s := math.Sin(2*math.Pi*freq*t) * env * 0.32
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1
			mix[i] += s
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

func makeBuf(frames int) []byte {
	return make([]byte, frames*frameBytes)
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both channels of frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	for c := 0; c < ChannelCount; c++ {
		off := i*frameBytes + c*4
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
		buf[off+2] = byte(v >> 16)
		buf[off+3] = byte(v >> 24)
	}
}

// adsr returns an envelope level for progress p in [0,1]. attack, decay and
// release are fractions of the whole duration.
func adsr(p, attack, decay, sustain, release float64) float64 {
	switch {
	case p < attack:
		return p / attack
	case p < attack+decay:
		return 1 - (1-sustain)*(p-attack)/decay
	case p < 1-release:
		return sustain
	case p < 1:
		return sustain * (1 - p) / release
	}
	return 0
}

// softSat keeps samples inside [-1,1] without hard clipping.
func softSat(x float64) float64 {
	return math.Tanh(x)
}
