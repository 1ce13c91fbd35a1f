package canvas

import "image/color"

// Over composites src over dst with non-premultiplied alpha:
//
//	αo = αs + αd·(1-αs)
//	c  = (cs·αs + cd·αd·(1-αs)) / αo
//
// The arithmetic runs in 0..255 units, which is the normalized formula
// multiplied through by 255, and each result is truncated rather than
// rounded. Repeated translucent blends therefore darken slightly.
//
// The boolean is false when dst must be left as is: a fully transparent
// source, or αo == 0.
func Over(src, dst color.NRGBA) (color.NRGBA, bool) {
	if src.A == 0 {
		return dst, false
	}
	sa := float64(src.A)
	rest := float64(dst.A) * (255 - sa) / 255
	outA := sa + rest
	if outA == 0 {
		return dst, false
	}

	ch := func(s, d uint8) uint8 {
		return uint8(clamp255((float64(s)*sa + float64(d)*rest) / outA))
	}
	return color.NRGBA{
		R: ch(src.R, dst.R),
		G: ch(src.G, dst.G),
		B: ch(src.B, dst.B),
		A: uint8(clamp255(outA)),
	}, true
}
