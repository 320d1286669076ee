package ggtraj

// Dataset is a generated video together with the trajectory of the object
// it shows. Both parts are immutable.
type Dataset struct {
	Video      *Video
	Trajectory *Trajectory
}

// GenerateDot builds a single-channel video in which the object is one lit
// pixel per frame, placed at the sampled path position. The trajectory
// records the same pixel coordinates, y growing downward with the row.
//
// All parameters are validated before any frame is written.
func GenerateDot(width, height, steps int, opts ...Option) (*Dataset, error) {
	if err := checkPositive(param{"width", width}, param{"height", height}); err != nil {
		return nil, err
	}
	o := resolveOptions(width, height, opts)
	comp, err := NewCompositor(width, height, 1, steps)
	if err != nil {
		return nil, err
	}
	pts, err := SamplePath(o.path, steps)
	if err != nil {
		return nil, err
	}
	traj := newTrajectoryBuilder(steps, false)
	skipped := 0
	for t, p := range pts {
		if !comp.PlotDot(t, p.X, p.Y) {
			skipped++
		}
		traj.add(p.X, p.Y)
	}

	Logger().Info("dataset generated", "kind", "dot",
		"width", width, "height", height, "steps", steps, "skipped", skipped)
	return &Dataset{Video: comp.Finish(), Trajectory: traj.t}, nil
}

// GenerateSprite builds an RGBA video in which sprite s is composited at the
// sampled path position, treated as the sprite's upper-left corner and
// clipped to the frame. The trajectory records the sprite centre with y
// flipped to grow upward from the bottom edge:
//
//	x = xmin + spriteWidth/2
//	y = height - (ymin + spriteHeight/2)
func GenerateSprite(width, height, steps int, s *Sprite, opts ...Option) (*Dataset, error) {
	if s == nil {
		return nil, ErrNilSprite
	}
	if err := checkPositive(param{"width", width}, param{"height", height}); err != nil {
		return nil, err
	}
	o := resolveOptions(width, height, opts)
	comp, err := NewCompositor(width, height, spriteChannels, steps)
	if err != nil {
		return nil, err
	}
	pts, err := SamplePath(o.path, steps)
	if err != nil {
		return nil, err
	}
	comp.SetMode(o.mode)
	traj := newTrajectoryBuilder(steps, true)
	clipped, hidden := 0, 0
	for t, p := range pts {
		clip := comp.Blit(t, s, p.X, p.Y)
		switch {
		case clip.Empty():
			hidden++
		case clip.Clipped():
			clipped++
		}
		traj.add(p.X+s.width/2, height-(p.Y+s.height/2))
	}

	Logger().Info("dataset generated", "kind", "sprite",
		"width", width, "height", height, "steps", steps,
		"sprite", [2]int{s.width, s.height}, "mode", o.mode.String(),
		"clipped", clipped, "hidden", hidden)
	return &Dataset{Video: comp.Finish(), Trajectory: traj.t}, nil
}
