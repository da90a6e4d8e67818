// This file is part of Arcadecore.
//
// Arcadecore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Arcadecore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Arcadecore.  If not, see <https://www.gnu.org/licenses/>.

// Package screenshot converts the screen of a machine into an image and
// saves it as a PNG file. The screen is rendered as it is seen on the
// monitor, with the palette applied, and is optionally scaled.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/jetsetilly/arcadecore/curated"
	"github.com/jetsetilly/arcadecore/hardware/video/gfx"
	"github.com/jetsetilly/arcadecore/hardware/video/palette"
	"github.com/jetsetilly/arcadecore/logger"
	"golang.org/x/image/draw"
)

// ScreenshotError is the error pattern for errors from this package.
const ScreenshotError = "screenshot: %v"

// Render the screen through the palette. If the palette is nil then pens are
// shown as shades of grey. A scale of less than two produces an unscaled
// image.
func Render(scr *gfx.Bitmap, pal *palette.Palette, scale int) *image.RGBA {
	w, h := scr.ScreenSize()
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x, p := range scr.ScreenRow(y) {
			if pal != nil {
				img.SetRGBA(x, y, pal.RGB(int(p)))
			} else {
				v := uint8(p)
				i := img.PixOffset(x, y)
				img.Pix[i] = v
				img.Pix[i+1] = v
				img.Pix[i+2] = v
				img.Pix[i+3] = 0xff
			}
		}
	}

	if scale < 2 {
		return img
	}

	scaled := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
	return scaled
}

// Save the image to a PNG file.
func Save(filename string, img image.Image) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(ScreenshotError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(ScreenshotError, err)
		}
	}()

	if err := png.Encode(f, img); err != nil {
		return curated.Errorf(ScreenshotError, err)
	}

	return nil
}

// Sink implements the hardware.FrameSink interface. It saves the screen for
// a single frame.
type Sink struct {
	filename string
	frame    int
	scale    int

	saved bool
}

// NewSink is the preferred method of initialisation for the Sink type. The
// screen is saved at the end of the numbered frame.
func NewSink(filename string, frame int, scale int) *Sink {
	return &Sink{
		filename: filename,
		frame:    frame,
		scale:    scale,
	}
}

func (s *Sink) String() string {
	return fmt.Sprintf("%s (frame %d)", s.filename, s.frame)
}

// Saved returns true if the screenshot has been taken.
func (s *Sink) Saved() bool {
	return s.saved
}

// SetFrame implements the hardware.FrameSink interface.
func (s *Sink) SetFrame(frame int, scr *gfx.Bitmap, pal *palette.Palette) error {
	if s.saved || frame != s.frame {
		return nil
	}
	if err := Save(s.filename, Render(scr, pal, s.scale)); err != nil {
		return err
	}
	s.saved = true
	logger.Logf(logger.Allow, "screenshot", "saved %s", s)
	return nil
}
