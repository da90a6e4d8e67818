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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/arcadecore/curated"
	"github.com/jetsetilly/arcadecore/hardware/video/gfx"
	"github.com/jetsetilly/arcadecore/hardware/video/palette"
)

const pixelDepth = 3

// Video implements the hardware.FrameSink interface. It generates a SHA-1
// value of the screen every frame, as seen on the monitor and with the
// palette applied. It does not display the image anywhere.
type Video struct {
	digest   [sha1.Size]byte
	pixels   []byte
	frameNum int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

func (dig *Video) String() string {
	return fmt.Sprintf("frame %d", dig.frameNum)
}

// Hash implements the digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
}

// SetFrame implements the hardware.FrameSink interface. If the palette is nil
// then the pen values are used directly.
func (dig *Video) SetFrame(frame int, scr *gfx.Bitmap, pal *palette.Palette) error {
	w, h := scr.ScreenSize()

	// the first few bytes are reserved for the chained fingerprint
	l := len(dig.digest) + w*h*pixelDepth
	if len(dig.pixels) != l {
		dig.pixels = make([]byte, l)
	}

	n := copy(dig.pixels, dig.digest[:])
	if n != len(dig.digest) {
		return curated.Errorf(DigestError, "digest error during new frame")
	}

	i := len(dig.digest)
	for y := 0; y < h; y++ {
		for _, p := range scr.ScreenRow(y) {
			if pal != nil {
				c := pal.RGB(int(p))
				dig.pixels[i] = c.R
				dig.pixels[i+1] = c.G
				dig.pixels[i+2] = c.B
			} else {
				dig.pixels[i] = uint8(p)
				dig.pixels[i+1] = uint8(p >> 8)
				dig.pixels[i+2] = 0
			}
			i += pixelDepth
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frameNum = frame

	return nil
}
