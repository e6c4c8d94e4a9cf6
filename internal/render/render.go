// Package render implements the image-rasterization collaborator named as
// out-of-scope in spec.md §1: turning compressed text into a PNG for
// vision-model consumption (CompressionResult.Format == Image). It never
// runs as part of the core text pipeline.
package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	charWidth  = 7
	lineHeight = 16
	marginX    = 8
	marginY    = 8
	maxCols    = 100
)

// PNG rasterizes text to a monospace-font PNG image and returns the encoded
// bytes. No ecosystem PNG encoder or bitmap-font library appeared anywhere
// in the retrieval pack (see DESIGN.md); golang.org/x/image, the official
// supplementary image module, supplies the font face.
func PNG(text string) ([]byte, error) {
	lines := wrap(text, maxCols)
	if len(lines) == 0 {
		lines = []string{""}
	}

	width := marginX*2 + maxCols*charWidth
	height := marginY*2 + len(lines)*lineHeight

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}
	for i, line := range lines {
		drawer.Dot = fixed.Point26_6{
			X: fixed.I(marginX),
			Y: fixed.I(marginY + (i+1)*lineHeight - 4),
		}
		drawer.DrawString(line)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// wrap greedily breaks text into lines of at most maxCols bytes, breaking
// only on word boundaries (the input is already whitespace-joined word
// tokens, so this never splits a token). A single word longer than maxCols
// gets a line of its own that exceeds maxCols.
func wrap(text string, maxCols int) []string {
	words := strings.Fields(text)
	var lines []string
	var cur strings.Builder
	for _, w := range words {
		if cur.Len() > 0 && cur.Len()+1+len(w) > maxCols {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(w)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
