package ggtraj

import "testing"

func TestResolveOptionsDefaults(t *testing.T) {
	o := resolveOptions(30, 30, nil)
	if o.mode != CompositeReplace {
		t.Errorf("mode = %v, want replace", o.mode)
	}
	e, ok := o.path.(Ellipse)
	if !ok {
		t.Fatalf("path = %T, want Ellipse", o.path)
	}
	if e != NewEllipse(30, 30) {
		t.Errorf("path = %+v, want NewEllipse(30, 30)", e)
	}
}

func TestResolveOptionsOverrides(t *testing.T) {
	l := NewLissajous(10, 20)
	o := resolveOptions(30, 30, []Option{WithPath(l), WithCompositeMode(CompositeOver)})
	if o.path != Path(l) {
		t.Errorf("path = %+v, want %+v", o.path, l)
	}
	if o.mode != CompositeOver {
		t.Errorf("mode = %v, want over", o.mode)
	}
}
