package pbm

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrBadMagic is returned when the input does not start with "P1".
	ErrBadMagic = errors.New("pbm: not a plain PBM (P1) image")
	// ErrBadHeader is returned for a missing or malformed width or height.
	ErrBadHeader = errors.New("pbm: malformed header")
	// ErrShortData is returned when fewer than width·height pixels follow the header.
	ErrShortData = errors.New("pbm: not enough pixel data")
	// ErrBadPixel is returned for a pixel other than '0' or '1'.
	ErrBadPixel = errors.New("pbm: pixel must be 0 or 1")
)

// MaxPixels bounds width·height for images decoded by Read.
const MaxPixels = 1 << 28

// maxLine is the longest pixel line Write emits.
const maxLine = 70

type reader struct {
	br *bufio.Reader
}

// skip consumes whitespace and comments; it returns io.EOF at the end.
func (r *reader) skip() error {
	for {
		c, err := r.br.ReadByte()
		if err != nil {
			return err
		}
		switch c {
		case ' ', '\t', '\n', '\r', '\v', '\f':
		case '#':
			if _, err := r.br.ReadString('\n'); err != nil {
				return err
			}
		default:
			return r.br.UnreadByte()
		}
	}
}

// token reads the next whitespace-delimited header token.
func (r *reader) token() (string, error) {
	if err := r.skip(); err != nil {
		return "", err
	}
	var tok []byte
	for {
		c, err := r.br.ReadByte()
		if err == io.EOF {
			return string(tok), nil
		}
		if err != nil {
			return "", err
		}
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '#' {
			return string(tok), r.br.UnreadByte()
		}
		tok = append(tok, c)
	}
}

func (r *reader) dimension(name string) (int, error) {
	tok, err := r.token()
	if err != nil && err != io.EOF {
		return 0, errors.Wrap(err, "pbm: read header")
	}
	v, convErr := strconv.Atoi(tok)
	if tok == "" || convErr != nil || v < 0 {
		return 0, errors.Wrapf(ErrBadHeader, "%s %q", name, tok)
	}

	return v, nil
}

// Read decodes a P1 image from r.
func Read(r io.Reader) (*Image, error) {
	rd := &reader{br: bufio.NewReader(r)}
	magic, err := rd.token()
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "pbm: read header")
	}
	if magic != "P1" {
		return nil, errors.Wrapf(ErrBadMagic, "magic %q", magic)
	}
	w, err := rd.dimension("width")
	if err != nil {
		return nil, err
	}
	h, err := rd.dimension("height")
	if err != nil {
		return nil, err
	}

	if w > 0 && h > MaxPixels/w {
		return nil, errors.Wrapf(ErrBadHeader, "%dx%d exceeds %d pixels", w, h, MaxPixels)
	}

	img := &Image{Width: w, Height: h, Pix: make([]uint8, w*h)}
	for i := range img.Pix {
		if err := rd.skip(); err != nil {
			if err == io.EOF {
				return nil, errors.Wrapf(ErrShortData, "got %d of %d pixels", i, len(img.Pix))
			}
			return nil, errors.Wrap(err, "pbm: read pixels")
		}
		c, err := rd.br.ReadByte()
		if err != nil {
			return nil, errors.Wrap(err, "pbm: read pixels")
		}
		switch c {
		case '0', '1':
			img.Pix[i] = c - '0'
		default:
			return nil, errors.Wrapf(ErrBadPixel, "pixel %d: %q", i, c)
		}
	}

	return img, nil
}

// Write encodes m as P1. Pixels are written without separators, one image
// row per line, wrapped so that no line exceeds 70 characters.
func Write(w io.Writer, m *Image) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("P1\n" + strconv.Itoa(m.Width) + " " + strconv.Itoa(m.Height) + "\n"); err != nil {
		return errors.Wrap(err, "pbm: write header")
	}
	for y := 0; y < m.Height; y++ {
		row := m.Pix[y*m.Width : (y+1)*m.Width]
		for len(row) > 0 {
			n := len(row)
			if n > maxLine {
				n = maxLine
			}
			for _, p := range row[:n] {
				_ = bw.WriteByte('0' + p)
			}
			_ = bw.WriteByte('\n')
			row = row[n:]
		}
	}

	return errors.Wrap(bw.Flush(), "pbm: write")
}
