package pbm

// Dilate returns a new image where each pixel is the maximum of its 3×3
// neighborhood; neighbors outside the image are ignored. A single black
// pixel grows into a 3×3 block.
func Dilate(m *Image) *Image {
	return morph(m, 1)
}

// Erode is the dual of Dilate: each pixel becomes the minimum of its 3×3
// neighborhood, neighbors outside the image ignored.
func Erode(m *Image) *Image {
	return morph(m, 0)
}

// morph applies a 3×3 window that yields want as soon as any pixel in the
// window equals want.
func morph(m *Image, want uint8) *Image {
	out := &Image{Width: m.Width, Height: m.Height, Pix: make([]uint8, len(m.Pix))}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			v := 1 - want
		window:
			for dy := -1; dy <= 1; dy++ {
				yy := y + dy
				if yy < 0 || yy >= m.Height {
					continue
				}
				for dx := -1; dx <= 1; dx++ {
					xx := x + dx
					if xx < 0 || xx >= m.Width {
						continue
					}
					if m.Pix[yy*m.Width+xx] == want {
						v = want
						break window
					}
				}
			}
			out.Pix[y*m.Width+x] = v
		}
	}

	return out
}

// Open is erosion followed by dilation; it removes specks smaller than 3×3.
func Open(m *Image) *Image { return Dilate(Erode(m)) }

// Close is dilation followed by erosion; it fills gaps narrower than 3 pixels.
func Close(m *Image) *Image { return Erode(Dilate(m)) }
