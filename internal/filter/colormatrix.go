package filter

import "image"

// ColorMatrix is a 4x5 color transformation matrix:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
//
// The fifth column provides bias/offset values. Color values are in
// [0, 255] range during transformation, then clamped back.
type ColorMatrix [20]float32

// Identity passes colors through unchanged.
var Identity = ColorMatrix{
	1, 0, 0, 0, 0, // R
	0, 1, 0, 0, 0, // G
	0, 0, 1, 0, 0, // B
	0, 0, 0, 1, 0, // A
}

// Brightness scales the color channels.
// factor: 0.0 = black, 1.0 = unchanged, 2.0 = twice as bright
func Brightness(factor float32) ColorMatrix {
	return ColorMatrix{
		factor, 0, 0, 0, 0,
		0, factor, 0, 0, 0,
		0, 0, factor, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Contrast scales the channels around mid gray.
// factor: 0.0 = gray, 1.0 = unchanged, 2.0 = high contrast
func Contrast(factor float32) ColorMatrix {
	// (color - 128) * factor + 128
	offset := 128 * (1 - factor)
	return ColorMatrix{
		factor, 0, 0, 0, offset,
		0, factor, 0, 0, offset,
		0, 0, factor, 0, offset,
		0, 0, 0, 1, 0,
	}
}

// Saturation blends between the luminance and the original color.
// factor: 0.0 = grayscale, 1.0 = unchanged, 2.0 = oversaturated
func Saturation(factor float32) ColorMatrix {
	// Luminance weights (Rec. 709)
	const (
		lumR = 0.2126
		lumG = 0.7152
		lumB = 0.0722
	)

	invFactor := 1 - factor

	return ColorMatrix{
		lumR*invFactor + factor, lumG * invFactor, lumB * invFactor, 0, 0,
		lumR * invFactor, lumG*invFactor + factor, lumB * invFactor, 0, 0,
		lumR * invFactor, lumG * invFactor, lumB*invFactor + factor, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Then returns the matrix that applies m followed by n.
func (m ColorMatrix) Then(n ColorMatrix) ColorMatrix {
	var out ColorMatrix
	for r := 0; r < 4; r++ {
		for c := 0; c < 5; c++ {
			var v float32
			for k := 0; k < 4; k++ {
				v += n[r*5+k] * m[k*5+c]
			}
			if c == 4 {
				v += n[r*5+4]
			}
			out[r*5+c] = v
		}
	}
	return out
}

// Apply transforms every pixel of img in place.
func (m ColorMatrix) Apply(img *image.NRGBA) {
	if m == Identity {
		return
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			r := float32(row[i+0])
			g := float32(row[i+1])
			bl := float32(row[i+2])
			a := float32(row[i+3])

			row[i+0] = clampUint8(m[0]*r + m[1]*g + m[2]*bl + m[3]*a + m[4])
			row[i+1] = clampUint8(m[5]*r + m[6]*g + m[7]*bl + m[8]*a + m[9])
			row[i+2] = clampUint8(m[10]*r + m[11]*g + m[12]*bl + m[13]*a + m[14])
			row[i+3] = clampUint8(m[15]*r + m[16]*g + m[17]*bl + m[18]*a + m[19])
		}
	}
}
