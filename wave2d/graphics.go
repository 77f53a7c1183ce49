package wave2d

import (
	"image/color"
	"math"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/gorde/rde"
)

// PlotAnnulusTrajectories opens an interactive chart of the chamber walls
// and each wave's trajectory in Cartesian coordinates. Blocks until the
// window is closed by the user.
func PlotAnnulusTrajectories(g rde.Geometry, waves []WavePropagation2D) {
	var (
		lines   = make(map[color.RGBA][]float32)
		wallCol = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	)
	addCircle(g.InnerRadius, g.DomainAngle, wallCol, lines)
	addCircle(g.OuterRadius, g.DomainAngle, wallCol, lines)

	palette := []color.RGBA{
		{R: 220, G: 50, B: 50, A: 255},
		{R: 50, G: 120, B: 220, A: 255},
		{R: 50, G: 180, B: 80, A: 255},
		{R: 200, G: 160, B: 40, A: 255},
	}
	for wi, w := range waves {
		col := palette[wi%len(palette)]
		for k := 1; k < len(w.Trajectory); k++ {
			x1, y1 := rde.CylindricalToCartesian(w.Trajectory[k-1].R, w.Trajectory[k-1].Theta)
			x2, y2 := rde.CylindricalToCartesian(w.Trajectory[k].R, w.Trajectory[k].Theta)
			addLine(x1, y1, x2, y2, col, lines)
		}
	}

	ext := float32(g.OuterRadius * 1.1)
	ch := chart2d.NewChart2D(-ext, ext, -ext, ext,
		1024, 1024, utils2.WHITE, utils2.BLACK)
	for col, line := range lines {
		ch.AddLine(line, col)
	}
	for {
	}
}

func addCircle(radius, domainAngle float64, col color.RGBA,
	lines map[color.RGBA][]float32) {
	const segments = 128
	for k := 0; k < segments; k++ {
		t1 := float64(k) * domainAngle / segments
		t2 := float64(k+1) * domainAngle / segments
		addLine(radius*math.Cos(t1), radius*math.Sin(t1),
			radius*math.Cos(t2), radius*math.Sin(t2), col, lines)
	}
}

func addLine(x1, y1, x2, y2 float64, col color.RGBA,
	lines map[color.RGBA][]float32) {
	lines[col] = append(lines[col],
		float32(x1), float32(y1),
		float32(x2), float32(y2),
	)
}
