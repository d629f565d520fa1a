package render

import "image/color"

// DeadColor is used for cells with display value 0.
var DeadColor = color.RGBA{A: 255}

// AgePalette returns the display palette for ages 0..maxAge: entry 0 is dead,
// entry i+1 is a cell of age i. Young cells are red and fade to cyan as they
// approach maxAge.
func AgePalette(maxAge int) []color.RGBA {
	if maxAge < 1 {
		maxAge = 1
	}
	palette := make([]color.RGBA, maxAge+2)
	palette[0] = DeadColor
	for age := 0; age <= maxAge; age++ {
		palette[age+1] = AgeColor(age, maxAge)
	}
	return palette
}

// AgeColor maps an age to RGB(255-v, v, v) where v grows linearly with the
// age, saturating at maxAge.
func AgeColor(age, maxAge int) color.RGBA {
	if age > maxAge {
		age = maxAge
	}
	if age < 0 {
		age = 0
	}
	v := uint8(float64(age) / float64(maxAge) * 255)
	return color.RGBA{R: 255 - v, G: v, B: v, A: 255}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
