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

// Package curated is a helper package for the error type. Errors are created
// with a pattern string and a list of values. The pattern is kept so that the
// error can be identified later with the Is() and Has() functions, without
// resorting to string comparison of the formatted message.
//
// Each package that can return an identifiable error exports the pattern as
// a constant. For example, the mixer package:
//
//	const TooManyChannels = "mixer: too many channels (maximum is %d)"
//
// and a caller can test for it with:
//
//	if curated.Is(err, mixer.TooManyChannels) {
//		...
//	}
//
// The Error() function normalises the message by removing adjacent
// duplicate parts. This means that a function can wrap an error with its own
// context without worrying that the wrapped error already carries that
// context:
//
//	curated.Errorf("streams: %v", curated.Errorf("streams: %v", err))
//
// produces "streams: <err>" and not "streams: streams: <err>".
package curated
