package pbm

import (
	"fmt"

	"github.com/pkg/errors"
)

// Image is a binary raster; Pix holds Height rows of Width pixels each.
type Image struct {
	Width, Height int
	Pix           []uint8
}

// ErrBadSize is returned by New for negative dimensions or more than
// MaxPixels pixels.
var ErrBadSize = errors.New("pbm: invalid image size")

// New returns a white w×h image.
func New(w, h int) (*Image, error) {
	if w < 0 || h < 0 || (w > 0 && h > MaxPixels/w) {
		return nil, errors.Wrapf(ErrBadSize, "%d×%d", w, h)
	}

	return &Image{Width: w, Height: h, Pix: make([]uint8, w*h)}, nil
}

// FromRows builds an image from rows of '0'/'1' characters of equal length.
func FromRows(rows ...string) (*Image, error) {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	img := &Image{Width: w, Height: h, Pix: make([]uint8, 0, w*h)}
	for y, row := range rows {
		if len(row) != w {
			return nil, errors.Wrapf(ErrShortData, "row %d has %d pixels, want %d", y, len(row), w)
		}
		for x := 0; x < w; x++ {
			switch row[x] {
			case '0':
				img.Pix = append(img.Pix, 0)
			case '1':
				img.Pix = append(img.Pix, 1)
			default:
				return nil, errors.Wrapf(ErrBadPixel, "row %d col %d: %q", y, x, row[x])
			}
		}
	}

	return img, nil
}

// At returns the pixel at column x, row y; outside the image it is 0.
func (m *Image) At(x, y int) uint8 {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return 0
	}

	return m.Pix[y*m.Width+x]
}

// Set stores v (0 or 1) at column x, row y; coordinates outside are ignored.
func (m *Image) Set(x, y int, v uint8) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return
	}
	m.Pix[y*m.Width+x] = v & 1
}

// Count returns the number of black pixels.
func (m *Image) Count() int {
	n := 0
	for _, p := range m.Pix {
		n += int(p)
	}

	return n
}

// String renders the image one row per line, without a header.
func (m *Image) String() string {
	buf := make([]byte, 0, (m.Width+1)*m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			buf = append(buf, '0'+m.Pix[y*m.Width+x])
		}
		buf = append(buf, '\n')
	}

	return string(buf)
}

// GoString is used by %#v in test failures.
func (m *Image) GoString() string {
	return fmt.Sprintf("pbm.Image{%d×%d}\n%s", m.Width, m.Height, m.String())
}
