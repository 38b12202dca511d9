package main

import (
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// calcTheme defines the look of the nixie calculator.
type calcTheme struct {
	*material.Theme

	Color struct {
		Background       color.NRGBA
		Digit            color.NRGBA
		Special          color.NRGBA
		Function         color.NRGBA
		Memory           color.NRGBA
		Op               color.NRGBA
		ActiveOp         color.NRGBA
		Result           color.NRGBA
		ResultBackground color.NRGBA
		Indicator        color.NRGBA
		Error            color.NRGBA
	}
	Size struct {
		DesignWidth  unit.Dp
		DesignHeight unit.Dp
		Inset        unit.Dp
		CornerRadius unit.Dp
	}
}

func newCalcTheme() *calcTheme {
	th := &calcTheme{Theme: material.NewTheme(gofont.Collection())}

	// Colors.
	th.Color.Background = color.NRGBA{50, 50, 50, 255}
	th.Color.Digit = color.NRGBA{90, 90, 90, 255}
	th.Color.Special = color.NRGBA{70, 70, 70, 255}
	th.Color.Function = color.NRGBA{60, 70, 85, 255}
	th.Color.Memory = color.NRGBA{60, 85, 70, 255}
	th.Color.Op = color.NRGBA{122, 90, 90, 255}
	th.Color.ActiveOp = color.NRGBA{160, 90, 90, 255}
	th.Color.Result = color.NRGBA{255, 140, 40, 255} // neon orange
	th.Color.ResultBackground = color.NRGBA{25, 20, 18, 255}
	th.Color.Indicator = color.NRGBA{150, 90, 40, 255}
	th.Color.Error = color.NRGBA{255, 80, 60, 255}

	// Sizes.
	th.Size.DesignWidth = 340
	th.Size.DesignHeight = 520
	th.Size.Inset = 6
	th.Size.CornerRadius = 3.5
	return th
}
