package ggtraj

import "slices"

// Sample is one trajectory point: the pixel position of the tracked object
// at time index T.
type Sample struct {
	T, X, Y int
}

// Trajectory is the ordered stream of samples produced alongside a Video,
// stored as three parallel sequences. Frame indices start at 0 and grow by
// one per step, matching the video's time axis.
//
// A Trajectory is immutable; accessors return copies.
type Trajectory struct {
	frames []int
	xs     []int
	ys     []int
	yUp    bool
}

// trajectoryBuilder appends samples in time order.
type trajectoryBuilder struct {
	t *Trajectory
}

func newTrajectoryBuilder(steps int, yUp bool) trajectoryBuilder {
	return trajectoryBuilder{t: &Trajectory{
		frames: make([]int, 0, steps),
		xs:     make([]int, 0, steps),
		ys:     make([]int, 0, steps),
		yUp:    yUp,
	}}
}

func (b trajectoryBuilder) add(x, y int) {
	b.t.frames = append(b.t.frames, len(b.t.frames))
	b.t.xs = append(b.t.xs, x)
	b.t.ys = append(b.t.ys, y)
}

// Len returns the number of samples.
func (t *Trajectory) Len() int {
	return len(t.frames)
}

// YUp reports whether Y grows upward from the bottom edge of the frame
// (sprite datasets) rather than downward with the pixel row.
func (t *Trajectory) YUp() bool {
	return t.yUp
}

// At returns sample i. It panics if i is out of range, like a slice index.
func (t *Trajectory) At(i int) Sample {
	return Sample{T: t.frames[i], X: t.xs[i], Y: t.ys[i]}
}

// Frames returns a copy of the time indices.
func (t *Trajectory) Frames() []int { return slices.Clone(t.frames) }

// X returns a copy of the pixel x sequence.
func (t *Trajectory) X() []int { return slices.Clone(t.xs) }

// Y returns a copy of the pixel y sequence.
func (t *Trajectory) Y() []int { return slices.Clone(t.ys) }

// Samples returns every sample in time order.
func (t *Trajectory) Samples() []Sample {
	out := make([]Sample, t.Len())
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}

// History returns the samples drawn while frame n is displayed: the first n
// positions, with time indices reversed so the newest position sits at time
// 0 (on the displayed frame) and older positions recede along the time axis.
// n is clamped to [0, Len()].
func (t *Trajectory) History(n int) []Sample {
	n = max(0, min(n, t.Len()))
	out := make([]Sample, n)
	for i := range n {
		out[i] = Sample{T: t.frames[n-1-i], X: t.xs[i], Y: t.ys[i]}
	}
	return out
}

// Float64s returns the x and y sequences as float64, for plotting.
func (t *Trajectory) Float64s() (xs, ys []float64) {
	xs = make([]float64, t.Len())
	ys = make([]float64, t.Len())
	for i := range xs {
		xs[i] = float64(t.xs[i])
		ys[i] = float64(t.ys[i])
	}
	return xs, ys
}
