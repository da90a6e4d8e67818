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

package slapstic

// Unknown is used in the chip table for addresses that are not known. It is
// outside the range of word offsets in the slapstic window and so never
// matches.
const Unknown = 0xffff

// MaskValue matches an offset when (offset & Mask) == Value.
type MaskValue struct {
	Mask  uint16
	Value uint16
}

func (mv MaskValue) match(offset uint16) bool {
	return mv.Value != Unknown && offset&mv.Mask == mv.Value
}

// Params describes the magic addresses of a slapstic chip. Addresses are word
// offsets into the slapstic window.
type Params struct {
	// the bank selected after a reset
	BankStart int

	// address that returns a disabled chip to the enabled state
	Reset uint16

	// bank select addresses
	Bank [4]uint16

	// disable and ignore masks
	Disable MaskValue
	Ignore  MaskValue

	// address that enables the secondary bank select addresses
	SEnable uint16

	// secondary bank select addresses
	SBank [4]uint16
}

// range of supported chip numbers
const (
	FirstChip = 101
	LastChip  = 118
)

// chip parameters indexed by chip number minus FirstChip. chips that were
// never fitted to a board have all bank addresses set to Unknown.
var chips = [LastChip - FirstChip + 1]Params{
	// 101: Gauntlet
	{3, 0x0000, [4]uint16{0x0080, 0x0090, 0x00a0, 0x00b0}, MaskValue{0x1ff0, 0x1540}, MaskValue{0x1ff0, 0x1560}, 0x1580, [4]uint16{Unknown, Unknown, Unknown, Unknown}},

	// 102: unknown
	{3, 0x0000, [4]uint16{Unknown, Unknown, Unknown, Unknown}, MaskValue{Unknown, Unknown}, MaskValue{Unknown, Unknown}, Unknown, [4]uint16{Unknown, Unknown, Unknown, Unknown}},

	// 103: Marble Madness
	{3, 0x0000, [4]uint16{0x0040, 0x0050, 0x0060, 0x0070}, MaskValue{0x1ff0, 0x1540}, MaskValue{0x1ff0, 0x1550}, Unknown, [4]uint16{Unknown, Unknown, Unknown, Unknown}},

	// 104: Gauntlet II
	{3, 0x0000, [4]uint16{0x0020, 0x0028, 0x0030, 0x0038}, MaskValue{0x3ff8, 0x3d00}, MaskValue{0x3ff8, 0x3d08}, 0x3d10, [4]uint16{0x3d18, 0x3d1a, 0x3d1c, 0x3d1e}},

	// 105: Indiana Jones, Paperboy
	{3, 0x0000, [4]uint16{0x0010, 0x0014, 0x0018, 0x001c}, MaskValue{0x3ff0, 0x3d90}, MaskValue{0x3ff0, 0x3da0}, 0x3db0, [4]uint16{0x3dc0, 0x3dc4, 0x3dc8, 0x3dcc}},

	// 106: Road Runner
	{3, 0x0000, [4]uint16{0x0008, 0x000a, 0x000c, 0x000e}, MaskValue{0x3ff0, 0x3d10}, MaskValue{0x3ff0, 0x3d20}, 0x3d30, [4]uint16{0x3d40, 0x3d42, 0x3d44, 0x3d46}},

	// 107: Peter Packrat, Road Blasters
	{3, 0x0000, [4]uint16{0x0006, 0x0007, 0x0008, 0x0009}, MaskValue{0x3ff0, 0x3d30}, MaskValue{0x3ff0, 0x3d40}, 0x3d50, [4]uint16{0x3d60, 0x3d61, 0x3d62, 0x3d63}},

	// 108: Super Sprint, Championship Sprint
	{3, 0x0000, [4]uint16{0x0010, 0x0014, 0x0018, 0x001c}, MaskValue{0x3ff0, 0x3d80}, MaskValue{0x3ff0, 0x3d90}, 0x3da0, [4]uint16{0x3db0, 0x3db4, 0x3db8, 0x3dbc}},

	// 109: unknown
	{3, 0x0000, [4]uint16{Unknown, Unknown, Unknown, Unknown}, MaskValue{Unknown, Unknown}, MaskValue{Unknown, Unknown}, Unknown, [4]uint16{Unknown, Unknown, Unknown, Unknown}},

	// 110: unknown
	{3, 0x0000, [4]uint16{Unknown, Unknown, Unknown, Unknown}, MaskValue{Unknown, Unknown}, MaskValue{Unknown, Unknown}, Unknown, [4]uint16{Unknown, Unknown, Unknown, Unknown}},

	// 111: Pit Fighter
	{0, 0x0000, [4]uint16{0x0042, 0x0052, 0x0062, 0x0072}, MaskValue{0x3fe0, 0x00a0}, MaskValue{0x3fe0, 0x00c0}, 0x00e0, [4]uint16{0x3d00, 0x3d02, 0x3d04, 0x3d06}},

	// 112: Cyberball 2072 tournament
	{0, 0x0000, [4]uint16{0x002c, 0x003c, 0x004c, 0x005c}, MaskValue{0x3fe0, 0x0080}, MaskValue{0x3fe0, 0x00a0}, 0x00c0, [4]uint16{0x3e00, 0x3e02, 0x3e04, 0x3e06}},

	// 113: Hydra
	{0, 0x0000, [4]uint16{0x0008, 0x0018, 0x0028, 0x0038}, MaskValue{0x3fc0, 0x0080}, MaskValue{0x3fc0, 0x00c0}, 0x0100, [4]uint16{0x3f00, 0x3f02, 0x3f04, 0x3f06}},

	// 114: Cyberball 2072
	{0, 0x0000, [4]uint16{0x0040, 0x0048, 0x0050, 0x0058}, MaskValue{0x3fe0, 0x0080}, MaskValue{0x3fe0, 0x00a0}, 0x00c0, [4]uint16{0x3c00, 0x3c02, 0x3c04, 0x3c06}},

	// 115: Race Drivin'
	{0, 0x0000, [4]uint16{0x0020, 0x0022, 0x0024, 0x0026}, MaskValue{0x3ff0, 0x0030}, MaskValue{0x3ff0, 0x0040}, 0x0050, [4]uint16{0x3d80, 0x3d82, 0x3d84, 0x3d86}},

	// 116: Vindicators part II
	{0, 0x0000, [4]uint16{Unknown, Unknown, Unknown, Unknown}, MaskValue{Unknown, Unknown}, MaskValue{Unknown, Unknown}, Unknown, [4]uint16{Unknown, Unknown, Unknown, Unknown}},

	// 117: unknown
	{0, 0x0000, [4]uint16{Unknown, Unknown, Unknown, Unknown}, MaskValue{Unknown, Unknown}, MaskValue{Unknown, Unknown}, Unknown, [4]uint16{Unknown, Unknown, Unknown, Unknown}},

	// 118: Rampart, Vindicators part II
	{0, 0x0000, [4]uint16{0x0014, 0x0034, 0x0054, 0x0074}, MaskValue{0x3fe0, 0x0080}, MaskValue{0x3fe0, 0x00a0}, 0x00c0, [4]uint16{0x3f80, 0x3f82, 0x3f84, 0x3f86}},
}

// Lookup returns the parameters for the chip number.
func Lookup(chip int) (Params, bool) {
	if chip < FirstChip || chip > LastChip {
		return Params{}, false
	}
	return chips[chip-FirstChip], true
}
