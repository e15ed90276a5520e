package render

import "areyouok/hal"

// Blue is the constant blue channel of every gradient pixel.
const Blue = 128

// Gradient returns the packed 0xAARRGGBB pixel at (x, y) of a width x height
// frame. Red follows x, green follows y.
func Gradient(x, y, width, height int) uint32 {
	return hal.PackARGB(uint8(x*255/width), uint8(y*255/height), Blue)
}

// FillGradient writes the gradient into a row-major buffer.
// len(pix) must be at least width*height.
func FillGradient(pix []uint32, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	pix = pix[:width*height]

	// Red depends only on x, so compute a row once and OR in green per row.
	row := make([]uint32, width)
	for x := range row {
		row[x] = hal.PackARGB(uint8(x*255/width), 0, Blue)
	}
	for y := 0; y < height; y++ {
		g := uint32(y*255/height) << 8
		line := pix[y*width : (y+1)*width]
		for x, p := range row {
			line[x] = p | g
		}
	}
}
