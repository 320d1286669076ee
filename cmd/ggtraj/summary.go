package main

import (
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"golang.org/x/text/message"

	"github.com/gogpu/ggtraj"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	graphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

// summary describes the generated dataset and where the animation went.
func summary(p *message.Printer, mode, output string, ds *ggtraj.Dataset) string {
	v := ds.Video
	xs, ys := ds.Trajectory.X(), ds.Trajectory.Y()

	rows := [][2]string{
		{"Mode", mode},
		{"Frames", p.Sprintf("%d", v.Steps())},
		{"Frame size", p.Sprintf("%d×%d×%d", v.Width(), v.Height(), v.Channels())},
		{"Values", p.Sprintf("%d", v.Steps()*v.Width()*v.Height()*v.Channels())},
		{"Visible", p.Sprintf("%d of %d frames", visibleFrames(v), v.Steps())},
		{"X range", p.Sprintf("%d … %d", slices.Min(xs), slices.Max(xs))},
		{"Y range", p.Sprintf("%d … %d", slices.Min(ys), slices.Max(ys))},
		{"Output", output},
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("ggtraj " + ggtraj.Version))
	b.WriteByte('\n')
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(r[0]), valueStyle.Render(r[1])))
	}
	return boxStyle.Render(b.String())
}

// plot draws x(t) and y(t) as an ASCII chart.
func plot(traj *ggtraj.Trajectory) string {
	if traj.Len() == 0 {
		return ""
	}
	xs, ys := traj.Float64s()
	chart := asciigraph.PlotMany([][]float64{xs, ys},
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("x(t), y(t)"))
	return graphStyle.Render(chart)
}

// visibleFrames counts frames with at least one non-zero value.
func visibleFrames(v *ggtraj.Video) int {
	n := 0
	for t := range v.Steps() {
		f, err := v.Frame(t)
		if err != nil {
			continue
		}
		if frameLit(f) {
			n++
		}
	}
	return n
}

func frameLit(f ggtraj.Frame) bool {
	for y := range f.Height() {
		for x := range f.Width() {
			for c := range f.Channels() {
				if f.At(x, y, c) != 0 {
					return true
				}
			}
		}
	}
	return false
}
