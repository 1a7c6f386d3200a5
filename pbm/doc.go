// Package pbm reads and writes plain (P1) portable bitmaps and applies 3×3
// morphological dilation and erosion to them.
//
// A P1 file is the magic "P1", the width and height as decimal numbers and
// then width·height pixels, 1 for black and 0 for white, in row-major
// order. Whitespace between pixels is optional and '#' starts a comment
// that runs to the end of the line.
package pbm
