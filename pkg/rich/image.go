// ABOUTME: Image item rendered as ANSI half-block art
// ABOUTME: Uses ▄ with true-color fg/bg escapes to double vertical resolution

package rich

import (
	"errors"
	"fmt"
	goimage "image"
	"os"
	"strings"

	// Register decoders for the formats LoadImage accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Image paints a picture with half-block characters, scaled down to the
// terminal width when needed.
type Image struct {
	src goimage.Image
}

// NewImage wraps a decoded image.
func NewImage(img goimage.Image) *Image {
	return &Image{src: img}
}

// LoadImage decodes a PNG, JPEG, GIF, or WebP file.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, _, err := goimage.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", path, err)
	}
	return NewImage(img), nil
}

// Render converts the image to half-block art at most width columns wide.
func (im *Image) Render(width int) (string, error) {
	if im.src == nil {
		return "", errors.New("rich: nil image")
	}
	bounds := im.src.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return "", errors.New("rich: empty image")
	}
	if width <= 0 {
		width = 80
	}

	lines := renderHalfBlock(im.src, width)
	if len(lines) == 0 {
		return "", errors.New("rich: image rendered to nothing")
	}
	return strings.Join(lines, "\n"), nil
}

// renderHalfBlock converts an image to ANSI art using the lower-half
// block character. For every two pixel rows, the top pixel becomes the
// background color and the bottom pixel the foreground.
func renderHalfBlock(img goimage.Image, maxCols int) []string {
	bounds := img.Bounds()
	srcW := bounds.Dx()
	srcH := bounds.Dy()

	targetW := srcW
	targetH := srcH
	if targetW > maxCols {
		targetH = targetH * maxCols / targetW
		targetW = maxCols
	}
	targetW = max(targetW, 1)
	targetH = max(targetH, 1)

	var scaled goimage.Image
	if targetW != srcW || targetH != srcH {
		dst := goimage.NewRGBA(goimage.Rect(0, 0, targetW, targetH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		scaled = dst
	} else {
		scaled = img
	}

	var lines []string
	for y := 0; y < targetH; y += 2 {
		var b strings.Builder
		for x := range targetW {
			topR, topG, topB := rgbAt(scaled, x, y)

			// Bottom pixel is black when the image height is odd.
			var botR, botG, botB uint8
			if y+1 < targetH {
				botR, botG, botB = rgbAt(scaled, x, y+1)
			}

			fmt.Fprintf(&b, "\x1b[48;2;%d;%d;%dm\x1b[38;2;%d;%d;%dm▄",
				topR, topG, topB, botR, botG, botB)
		}
		b.WriteString("\x1b[0m")
		lines = append(lines, b.String())
	}

	return lines
}

// rgbAt extracts the 8-bit RGB components of the pixel at (x, y).
func rgbAt(img goimage.Image, x, y int) (uint8, uint8, uint8) {
	r, g, b, _ := img.At(img.Bounds().Min.X+x, img.Bounds().Min.Y+y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}
