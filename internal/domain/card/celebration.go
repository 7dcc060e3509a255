package card

import "time"

const (
	// CelebrationDuration bounds the confetti loop by wall clock, not by
	// frame count.
	CelebrationDuration = 3 * time.Second

	frameInterval = time.Second / 60
)

// ConfettiColors are the four burst colors of the celebration.
var ConfettiColors = []string{"#FFC0CB", "#FF69B4", "#FFD700", "#00BFFF"}

// Burst describes one confetti emission from a screen edge.
type Burst struct {
	ParticleCount int      `json:"particle_count"`
	Angle         int      `json:"angle"`
	Spread        int      `json:"spread"`
	OriginX       float64  `json:"origin_x"`
	Colors        []string `json:"colors"`
}

// Frame returns the pair of edge bursts fired on every animation tick: two
// particles from the left at 60° and two from the right at 120°.
func Frame() []Burst {
	return []Burst{
		{ParticleCount: 2, Angle: 60, Spread: 55, OriginX: 0, Colors: ConfettiColors},
		{ParticleCount: 2, Angle: 120, Spread: 55, OriginX: 1, Colors: ConfettiColors},
	}
}

// Celebrate emits confetti frames at roughly 60 fps, rescheduling itself
// until the deadline passes. At least one frame is always emitted. The loop
// is not cancellable mid-flight.
func Celebrate(d time.Duration, emit func([]Burst)) {
	end := time.Now().Add(d)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		emit(Frame())
		if !time.Now().Before(end) {
			return
		}
		<-ticker.C
	}
}
