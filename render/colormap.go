package render

import (
	"image/color"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// Hot runs black → red → yellow → white over [0, 1], used for point density.
func Hot() palette.ColorMap {
	cm := moreland.BlackBody()
	cm.SetMax(1)

	return cm
}

// Cool runs cyan → magenta over [0, 1], used for gradient magnitude.
//
// Luminance maps need controls of increasing lightness, so the map is
// built magenta → cyan and reversed.
func Cool() palette.ColorMap {
	cm, err := moreland.NewLuminance([]color.Color{
		color.NRGBA{R: 255, B: 255, A: 255},
		color.NRGBA{G: 255, B: 255, A: 255},
	})
	if err != nil {
		panic("render: cool color map: " + err.Error())
	}
	cm.SetMax(1)

	return palette.Reverse(cm)
}
