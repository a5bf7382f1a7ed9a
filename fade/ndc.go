package fade

import "image"

// NDC maps a pixel to normalized device coordinates in [-1, 1).
//
// Each axis uses (v - size/2) / (size/2) with floating-point halves, so odd
// sizes are centred correctly. An axis of size 1 or less maps to 0.
func NDC(p image.Point, width, height int) (x, y float64) {
	return ndcAxis(p.X, width), ndcAxis(p.Y, height)
}

func ndcAxis(v, size int) float64 {
	if size <= 1 {
		return 0
	}
	// Halve in floating point; an integer half shifts odd sizes by half a pixel.
	half := float64(size) / 2
	return (float64(v) - half) / half
}
