// Package display drives the status OLED. The input pipeline only
// talks to it through the lock-change notification; everything else
// here is presentation.
//
// This file is the hardware-independent half: glyph lookup and text
// rendering against an abstract pixel canvas. The ssd1306 device
// binding lives in display.go and only builds under TinyGo.
package display

import "image/color"

// Panel geometry for the 128x32 status OLED.
const (
	Width  = 128
	Height = 32
)

const (
	glyphWidth  = 5
	glyphHeight = 7
	glyphFirst  = 0x20
	glyphLast   = 0x7E
	// One blank column between glyphs.
	glyphAdvance = glyphWidth + 1
)

var (
	pixelOn  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	pixelOff = color.RGBA{A: 255}
)

// canvas is the drawing surface drawText renders onto. The ssd1306
// driver's framebuffer satisfies it.
type canvas interface {
	SetPixel(x, y int16, c color.RGBA)
}

// textWidth returns the rendered width of s in pixels.
func textWidth(s string) int {
	if len(s) == 0 {
		return 0
	}
	return len(s)*glyphAdvance - 1
}

// glyphColumn returns one 7-pixel column of a glyph, LSB at the top.
// Characters outside the table render as blanks.
func glyphColumn(ch byte, col int) byte {
	if ch < glyphFirst || ch > glyphLast || col < 0 || col >= glyphWidth {
		return 0
	}
	return font[int(ch-glyphFirst)*glyphWidth+col]
}

// drawText renders s onto the canvas with its top-left corner at
// (x, y), writing both on and off pixels so stale content under the
// text is overwritten.
func drawText(c canvas, x, y int16, s string) {
	for i := 0; i < len(s); i++ {
		for col := 0; col < glyphWidth; col++ {
			bits := glyphColumn(s[i], col)
			for row := 0; row < glyphHeight; row++ {
				px := pixelOff
				if bits&(1<<row) != 0 {
					px = pixelOn
				}
				c.SetPixel(x+int16(col), y+int16(row), px)
			}
		}
		x += glyphAdvance
	}
}
