package ggtraj

// Option configures dataset generation.
// Use functional options to customize GenerateDot and GenerateSprite.
//
// Example:
//
//	// Default elliptical motion
//	ds, err := ggtraj.GenerateDot(30, 30, 100)
//
//	// Custom motion law
//	ds, err := ggtraj.GenerateDot(30, 30, 100, ggtraj.WithPath(ggtraj.NewLissajous(30, 30)))
type Option func(*options)

// options holds optional configuration for generation.
type options struct {
	path Path
	mode CompositeMode
}

// defaultOptions returns the default generation options.
func defaultOptions() options {
	return options{
		path: nil, // NewEllipse(width, height) when nil
		mode: CompositeReplace,
	}
}

// WithPath sets the motion law sampled for each frame.
// For sprite datasets the sampled point is the sprite's upper-left corner.
func WithPath(p Path) Option {
	return func(o *options) {
		o.path = p
	}
}

// WithCompositeMode sets how sprite pixels combine with the frame.
// It has no effect on dot datasets.
func WithCompositeMode(m CompositeMode) Option {
	return func(o *options) {
		o.mode = m
	}
}

func resolveOptions(width, height int, opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.path == nil {
		o.path = NewEllipse(width, height)
	}
	return o
}
