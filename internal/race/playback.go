package race

// Playback replays a precomputed Outcome frame by frame for presentation.
// The simulation is already final before the first frame; playback only
// interpolates displayed progress toward it. Skip cancels the presentation,
// never the simulation, so fast-forward stays deterministic.
type Playback struct {
	outcome Outcome
	frames  int
	frame   int
	skipped bool
}

// LanePosition is one entrant's displayed progress at a frame.
type LanePosition struct {
	Entrant  Entrant
	Progress float64 // 0 at the gate, 1 at the wire
	Rank     int     // final rank, shown once finished
	Finished bool
}

// NewPlayback wraps an outcome in a pacing loop of the given frame count.
func NewPlayback(outcome Outcome, frames int) *Playback {
	if frames < 1 {
		frames = 1
	}
	return &Playback{outcome: outcome, frames: frames}
}

// Outcome returns the final result being replayed.
func (p *Playback) Outcome() Outcome {
	return p.outcome
}

// Advance moves playback forward one frame.
func (p *Playback) Advance() {
	if p.frame < p.frames {
		p.frame++
	}
}

// Skip jumps straight to the final frame.
func (p *Playback) Skip() {
	p.skipped = true
	p.frame = p.frames
}

// Done reports whether the replay has reached the final frame.
func (p *Playback) Done() bool {
	return p.frame >= p.frames
}

// Skipped reports whether the viewer fast-forwarded.
func (p *Playback) Skipped() bool {
	return p.skipped
}

// Positions returns the displayed lane positions for the current frame.
// Progress interpolates linearly toward the wire, staggered so that better
// final ranks pull ahead as the replay proceeds; at the final frame every
// entrant sits exactly at its result.
func (p *Playback) Positions() []LanePosition {
	t := float64(p.frame) / float64(p.frames)
	n := len(p.outcome.Results)

	out := make([]LanePosition, n)
	for i, res := range p.outcome.Results {
		// Back markers trail by up to 12% mid-race, converging at the wire.
		lag := float64(res.Rank-1) / float64(n) * 0.12 * (1 - t)
		progress := t - lag
		if progress < 0 {
			progress = 0
		}
		if p.Done() {
			progress = 1
		}
		out[i] = LanePosition{
			Entrant:  res.Entrant,
			Progress: progress,
			Rank:     res.Rank,
			Finished: p.Done(),
		}
	}
	return out
}
