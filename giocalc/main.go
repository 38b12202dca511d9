// Command giocalc is a scientific calculator with a simulated nixie tube
// display. Every key press is recorded on a tape in the app data directory.
package main

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gioui.org/app"
	"gioui.org/io/clipboard"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/fjl/nixiecalc/internal/tape"
	"github.com/fjl/nixiecalc/nixie"
)

// calcUI is the user interface of the calculator.
type calcUI struct {
	calc      calculator
	theme     *calcTheme
	buttons   [7][5]*button
	lastError error

	cornerRadius int
	gridSpacing  int
}

func newUI(theme *calcTheme) *calcUI {
	ui := &calcUI{theme: theme}
	angle := ui.special("DEG", nil)
	angle.action = func() {
		ui.calc.toggleAngle()
		angle.text = strings.ToUpper(ui.calc.engine.AngleUnit().String())
	}
	ui.buttons = [7][5]*button{
		{ui.memory(nixie.OpMemoryClear), ui.memory(nixie.OpMemoryRecall), ui.memory(nixie.OpMemoryStore), ui.memory(nixie.OpMemoryAdd), ui.memory(nixie.OpMemorySubtract)},
		{ui.fn(nixie.OpSin), ui.fn(nixie.OpCos), ui.fn(nixie.OpTan), ui.fn(nixie.OpLog10), ui.fn(nixie.OpLn)},
		{ui.fn(nixie.OpSquareRoot), ui.fn(nixie.OpReciprocal), ui.op(nixie.OpPower), ui.key(nixie.OpPercent), ui.op(nixie.OpDivide)},
		{ui.digit("7"), ui.digit("8"), ui.digit("9"), ui.key(nixie.OpSignFlip), ui.op(nixie.OpMultiply)},
		{ui.digit("4"), ui.digit("5"), ui.digit("6"), ui.key(nixie.OpClear), ui.op(nixie.OpSubtract)},
		{ui.digit("1"), ui.digit("2"), ui.digit("3"), ui.key(nixie.OpAllClear), ui.op(nixie.OpAdd)},
		{ui.digit("0"), ui.digit("."), ui.special("⌫", ui.calc.rubout), angle, ui.op(nixie.OpEquals)},
	}
	return ui
}

// digit creates a digit button.
func (ui *calcUI) digit(input string) *button {
	return ui.special(input, func() { ui.calc.digit(input) })
}

// op creates a binary operation button, highlighted while pending.
func (ui *calcUI) op(op nixie.Operation) *button {
	b := ui.key(op)
	b.color = ui.theme.Color.Op
	b.op = op
	return b
}

// fn creates a scientific function button.
func (ui *calcUI) fn(op nixie.Operation) *button {
	b := ui.key(op)
	b.color = ui.theme.Color.Function
	return b
}

// memory creates a memory button.
func (ui *calcUI) memory(op nixie.Operation) *button {
	b := ui.key(op)
	b.color = ui.theme.Color.Memory
	return b
}

// key creates a button for any engine key.
func (ui *calcUI) key(op nixie.Operation) *button {
	b := newButton(op.Symbol(), ui.theme.Color.Special)
	b.action = func() { ui.calc.press(op) }
	return b
}

// special creates a button running fn.
func (ui *calcUI) special(name string, fn func()) *button {
	b := newButton(name, ui.theme.Color.Digit)
	b.action = fn
	return b
}

// Layout draws the UI.
func (ui *calcUI) Layout(gtx layout.Context) layout.Dimensions {
	// Adapt design for screen size.
	scaleFactor := float32(gtx.Constraints.Max.X) / float32(gtx.Dp(ui.theme.Size.DesignWidth))
	ui.cornerRadius = gtx.Dp(ui.theme.Size.CornerRadius * unit.Dp(scaleFactor))
	ui.gridSpacing = gtx.Dp(ui.theme.Size.Inset * unit.Dp(scaleFactor))

	// Handle key events.
	ui.layoutInput(gtx)

	inset := layout.UniformInset(ui.theme.Size.Inset)
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		flex := layout.Flex{Axis: layout.Vertical, Spacing: layout.SpaceStart}
		return flex.Layout(gtx,
			layout.Flexed(18, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, ui.layoutResult)
			}),
			layout.Flexed(82, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, ui.layoutButtons)
			}),
		)
	})
}

func (ui *calcUI) layoutResult(gtx layout.Context) layout.Dimensions {
	rect := image.Rectangle{Max: gtx.Constraints.Max}
	rr := clip.UniformRRect(rect, ui.cornerRadius)
	paint.FillShape(gtx.Ops, ui.theme.Color.ResultBackground, rr.Op(gtx.Ops))

	inset := layout.UniformInset(ui.theme.Size.Inset)
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Flexed(25, ui.layoutIndicators),
			layout.Flexed(75, ui.layoutResultText),
		)
	})
}

// layoutIndicators draws the angle unit, memory and pending operator line,
// or the last tape error.
func (ui *calcUI) layoutIndicators(gtx layout.Context) layout.Dimensions {
	fontSizeSp := unit.Sp(float32(gtx.Constraints.Max.Y) / 1.3 / gtx.Metric.PxPerSp)
	l := material.Label(ui.theme.Theme, fontSizeSp, ui.calc.indicators())
	l.Color = ui.theme.Color.Indicator
	if ui.lastError != nil {
		l.Text = ui.lastError.Error()
		l.Color = ui.theme.Color.Error
	}
	l.Alignment = text.Start
	l.MaxLines = 1
	return l.Layout(gtx)
}

func (ui *calcUI) layoutResultText(gtx layout.Context) layout.Dimensions {
	// Scale font based on height.
	fontSizePx := float32(gtx.Constraints.Max.Y) / 1.1
	fontSizeSp := unit.Sp(fontSizePx / gtx.Metric.PxPerSp)

	l := material.Label(ui.theme.Theme, fontSizeSp, ui.calc.text())
	l.Color = ui.theme.Color.Result
	if ui.calc.engine.Status() != nixie.Success && ui.calc.input == "" {
		l.Color = ui.theme.Color.Error
	}
	l.Alignment = text.End
	return shrinkToFit(gtx, l.Layout)
}

func (ui *calcUI) layoutButtons(gtx layout.Context) layout.Dimensions {
	g := grid{
		rows:    len(ui.buttons),
		cols:    len(ui.buttons[0]),
		spacing: ui.gridSpacing,
	}
	return g.layout(gtx, func(row, col int, gtx layout.Context) layout.Dimensions {
		if b := ui.buttons[row][col]; b != nil {
			return ui.layoutButton(gtx, b)
		}
		return layout.Dimensions{}
	})
}

func (ui *calcUI) layoutButton(gtx layout.Context, b *button) layout.Dimensions {
	if b.clicker.Clicked() && b.action != nil {
		b.action()
	}

	return b.clicker.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		textSizePx := float32(gtx.Constraints.Max.Y) / 2.4
		textSizeSp := unit.Sp(textSizePx / gtx.Metric.PxPerSp)

		style := material.Button(ui.theme.Theme, &b.clicker, b.text)
		style.Background = b.color
		style.Inset = layout.Inset{}
		style.TextSize = textSizeSp
		style.CornerRadius = unit.Dp(float32(ui.cornerRadius) / gtx.Metric.PxPerDp)
		if b.op != nixie.OpNone && ui.calc.engine.Pending() == b.op {
			style.Background = ui.theme.Color.ActiveOp
		}
		return style.Layout(gtx)
	})
}

// layoutInput registers the global key handler.
func (ui *calcUI) layoutInput(gtx layout.Context) {
	// Register handler for key events.
	input := key.InputOp{
		Tag:  ui,
		Hint: key.HintNumeric,
		Keys: "Short-[C,V]|(Shift)-[0,1,2,3,4,5,6,7,8,9,.,+,*,/,%,^,=,⌤,⏎,⌫,⌦,⎋]|(Alt)-(Shift)-[-]",
	}
	input.Add(gtx.Ops)

	// Request keyboard focus. This is required to make the Return key work.
	key.FocusOp{Tag: ui}.Add(gtx.Ops)

	for _, ev := range gtx.Queue.Events(ui) {
		switch ev := ev.(type) {
		case key.Event:
			switch {
			case isCopy(ev):
				op := clipboard.WriteOp{Text: ui.calc.text()}
				op.Add(gtx.Ops)
			case isPaste(ev):
				op := clipboard.ReadOp{Tag: ui}
				op.Add(gtx.Ops)
			default:
				ui.handleKey(ev)
			}

		case clipboard.Event:
			ui.calc.parse(strings.TrimSpace(ev.Text))
		}
	}
}

func isCopy(e key.Event) bool {
	return e.Name == "C" && e.Modifiers.Contain(key.ModShortcut)
}

func isPaste(e key.Event) bool {
	return e.Name == "V" && e.Modifiers.Contain(key.ModShortcut)
}

// handleKey handles a key event.
func (ui *calcUI) handleKey(e key.Event) {
	if e.State == key.Release {
		return
	}

	switch e.Name {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9", ".":
		ui.calc.digit(e.Name)
	case "+":
		ui.calc.press(nixie.OpAdd)
	case "-":
		if e.Modifiers.Contain(key.ModAlt) {
			ui.calc.press(nixie.OpSignFlip)
		} else {
			ui.calc.press(nixie.OpSubtract)
		}
	case "*":
		ui.calc.press(nixie.OpMultiply)
	case "/":
		ui.calc.press(nixie.OpDivide)
	case "^":
		ui.calc.press(nixie.OpPower)
	case "%":
		ui.calc.press(nixie.OpPercent)
	case "=", key.NameEnter, key.NameReturn:
		ui.calc.press(nixie.OpEquals)
	case key.NameDeleteBackward:
		ui.calc.rubout()
	case key.NameDeleteForward:
		ui.calc.press(nixie.OpClear)
	case key.NameEscape:
		ui.calc.press(nixie.OpAllClear)
	}
}

// button is a clickable button.
type button struct {
	op     nixie.Operation // highlighted while pending
	text   string
	action func()

	color   color.NRGBA
	clicker widget.Clickable
}

func newButton(text string, color color.NRGBA) *button {
	return &button{text: text, color: color}
}

func main() {
	theme := newCalcTheme()
	var (
		size     = app.Size(theme.Size.DesignWidth, theme.Size.DesignHeight)
		statusBg = app.StatusColor(theme.Color.Background)
		sysBg    = app.NavigationColor(theme.Color.Background)
		title    = app.Title("NixieCalc")
		portrait = app.PortraitOrientation.Option()
	)
	go func() {
		w := app.NewWindow(statusBg, sysBg, size, title, portrait)
		w.Option(app.MinSize(theme.Size.DesignWidth, theme.Size.DesignHeight))

		if err := loop(w, theme); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

// loop is the main loop of the app.
func loop(w *app.Window, theme *calcTheme) error {
	datadir, err := app.DataDir()
	if err != nil {
		return err
	}
	recorder := tape.NewRecorder(filepath.Join(datadir, "giocalc"))
	defer recorder.Close()

	var (
		ui  = newUI(theme)
		ops op.Ops
	)
	ui.calc.record = recorder.Record

	for {
		select {
		case err := <-recorder.Errors():
			ui.lastError = err
			w.Invalidate()
		case e := <-w.Events():
			switch e := e.(type) {
			case system.StageEvent:
				if e.Stage == system.StagePaused {
					recorder.Persist()
				}
			case system.DestroyEvent:
				return e.Err
			case system.FrameEvent:
				gtx := layout.NewContext(&ops, e)
				paint.Fill(gtx.Ops, theme.Color.Background)
				ui.Layout(gtx)
				e.Frame(gtx.Ops)
			}
		}
	}
}
