// Package preview draws palettes on a terminal screen.
package preview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/colormap"
)

// Style returns the cell style that paints c as a background.
// Fully transparent colors use the terminal's default background.
func Style(c colormap.Color) tcell.Style {
	if c.A == 0 {
		return tcell.StyleDefault.Background(tcell.ColorDefault)
	}
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// Draw fills one screen row with colors, sampling the palette evenly across
// the screen width. Rows outside the screen are ignored.
func Draw(screen tcell.Screen, colors []colormap.Color, row int) {
	w, h := screen.Size()
	if len(colors) == 0 || row < 0 || row >= h {
		return
	}
	for x := 0; x < w; x++ {
		c := colors[x*len(colors)/w]
		screen.SetContent(x, row, ' ', nil, Style(c))
	}
}

// Label writes text starting at column 0 of row.
func Label(screen tcell.Screen, row int, text string) {
	x := 0
	for _, r := range text {
		screen.SetContent(x, row, r, nil, tcell.StyleDefault)
		x++
	}
}

// Show draws title and the palette, then blocks until a key is pressed.
// The screen must already be initialized. Resizes redraw the palette.
func Show(screen tcell.Screen, title string, colors []colormap.Color) {
	draw := func() {
		screen.Clear()
		Label(screen, 0, title)
		_, h := screen.Size()
		for row := 1; row < h; row++ {
			Draw(screen, colors, row)
		}
		screen.Show()
	}
	draw()

	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw()
		case *tcell.EventKey:
			colormap.Logger().Debug("colormap: preview closed", "key", ev.Name())
			return
		case nil:
			// Screen finalized.
			return
		}
	}
}
