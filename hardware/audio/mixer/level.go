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

package mixer

import "fmt"

// Pan is the position of a channel in the stereo field.
type Pan int

// List of valid Pan values.
const (
	PanCenter Pan = iota
	PanLeft
	PanRight
)

func (p Pan) String() string {
	switch p {
	case PanCenter:
		return "center"
	case PanLeft:
		return "left"
	case PanRight:
		return "right"
	}
	return fmt.Sprintf("pan (%d)", int(p))
}

// maximum mixing level. levels above this in a packed default are from the
// older 0 to 255 scale
const MaxLevel = 100

// Level packs a mixing level, pan position and gain into a single value, as
// used by AllocateChannel(). The gain is a power of two shift of zero to three.
func Level(level int, pan Pan, gain int) int {
	return (level & 0xff) | (int(pan)&0x03)<<8 | (gain&0x03)<<10
}

// unpack the packed default level. legacy levels are scaled to the current
// range.
func unpackLevel(packed int) (level int, pan Pan, gain int) {
	level = packed & 0xff
	pan = Pan((packed >> 8) & 0x03)
	gain = (packed >> 10) & 0x03
	if level > MaxLevel {
		level = level * MaxLevel / 255
	}
	return level, pan, gain
}

// mixingVolume combines the channel volume (0 to 100), the mixing level (0 to
// 100) and the gain into a multiplier with eight bits of fraction.
func mixingVolume(volume int, level int, gain int) int32 {
	return int32(((volume * level * 256) << gain) / (100 * 100))
}
