package filter

import (
	"image"
	"sync"
)

// Blur applies a separable Gaussian blur to img in place.
// Edges are extended, so a uniformly colored image stays unchanged.
func Blur(img *image.NRGBA, radius float64) {
	if radius <= 0 {
		return
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}
	kernel := CachedGaussianKernel(radius)

	// Premultiply into a float plane.
	plane := getTempBuffer(w * h * 4)
	defer putTempBuffer(plane)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			a := float32(row[x*4+3]) / 255
			i := (y*w + x) * 4
			plane[i+0] = float32(row[x*4+0]) * a
			plane[i+1] = float32(row[x*4+1]) * a
			plane[i+2] = float32(row[x*4+2]) * a
			plane[i+3] = float32(row[x*4+3])
		}
	}

	temp := getTempBuffer(w * h * 4)
	defer putTempBuffer(temp)
	convolve(plane, temp, w, h, 4, kernel, true)
	convolve(temp, plane, w, h, 4, kernel, false)

	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			a := plane[i+3]
			if a < 0.5 {
				row[x*4+0], row[x*4+1], row[x*4+2], row[x*4+3] = 0, 0, 0, 0
				continue
			}
			inv := 255 / a
			row[x*4+0] = clampUint8(plane[i+0] * inv)
			row[x*4+1] = clampUint8(plane[i+1] * inv)
			row[x*4+2] = clampUint8(plane[i+2] * inv)
			row[x*4+3] = clampUint8(a)
		}
	}
}

// BlurAlpha returns a Gaussian-blurred copy of mask. Pixels outside the
// mask are treated as transparent.
func BlurAlpha(mask *image.Alpha, radius float64) *image.Alpha {
	b := mask.Bounds()
	out := image.NewAlpha(b)
	if radius <= 0 {
		copy(out.Pix, mask.Pix)
		return out
	}
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return out
	}
	kernel := CachedGaussianKernel(radius)

	plane := getTempBuffer(w * h)
	defer putTempBuffer(plane)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			plane[y*w+x] = float32(mask.Pix[y*mask.Stride+x])
		}
	}
	temp := getTempBuffer(w * h)
	defer putTempBuffer(temp)
	convolveZero(plane, temp, w, h, kernel, true)
	convolveZero(temp, plane, w, h, kernel, false)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Pix[y*out.Stride+x] = clampUint8(plane[y*w+x])
		}
	}
	return out
}

// convolve runs a 1D convolution over an interleaved plane with
// ch channels, extending edge pixels.
func convolve(src, dst []float32, w, h, ch int, kernel []float32, horizontal bool) {
	half := len(kernel) / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var acc [4]float32
			for k, weight := range kernel {
				sx, sy := x, y
				if horizontal {
					sx = clampInt(x+k-half, 0, w-1)
				} else {
					sy = clampInt(y+k-half, 0, h-1)
				}
				si := (sy*w + sx) * ch
				for c := 0; c < ch; c++ {
					acc[c] += src[si+c] * weight
				}
			}
			di := (y*w + x) * ch
			copy(dst[di:di+ch], acc[:ch])
		}
	}
}

// convolveZero runs a 1D convolution over a single-channel plane,
// treating pixels outside the plane as zero.
func convolveZero(src, dst []float32, w, h int, kernel []float32, horizontal bool) {
	half := len(kernel) / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var acc float32
			for k, weight := range kernel {
				sx, sy := x, y
				if horizontal {
					sx = x + k - half
					if sx < 0 || sx >= w {
						continue
					}
				} else {
					sy = y + k - half
					if sy < 0 || sy >= h {
						continue
					}
				}
				acc += src[sy*w+sx] * weight
			}
			dst[y*w+x] = acc
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

// Temporary buffer pool for blur operations.
var tempBufferPool = sync.Pool{
	New: func() interface{} {
		return &floatBuffer{data: make([]float32, 1280*720*4)}
	},
}

// getTempBuffer retrieves a zeroed temporary buffer of the given size.
func getTempBuffer(size int) []float32 {
	wrapper := tempBufferPool.Get().(*floatBuffer)

	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}

	buf := wrapper.data[:size]
	clear(buf)
	return buf
}

// putTempBuffer returns a temporary buffer to the pool.
func putTempBuffer(buf []float32) {
	if cap(buf) <= 16*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampInt clamps an integer to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clampUint8 clamps a float32 to [0, 255] and converts to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) // Round to nearest
}
