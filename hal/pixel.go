package hal

// PackARGB packs an opaque color as 0xFFRRGGBB.
func PackARGB(r, g, b uint8) uint32 {
	return 0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// UnpackARGB splits a packed 0xAARRGGBB pixel.
func UnpackARGB(p uint32) (a, r, g, b uint8) {
	return uint8(p >> 24), uint8(p >> 16), uint8(p >> 8), uint8(p)
}

// argbToRGBA writes pix as RGBA bytes into dst, growing it if needed.
func argbToRGBA(dst []byte, pix []uint32) []byte {
	n := len(pix) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, p := range pix {
		a, r, g, b := UnpackARGB(p)
		j := i * 4
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = a
	}
	return dst
}
