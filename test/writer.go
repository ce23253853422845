// This file is part of softgfx.
//
// softgfx is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// softgfx is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with softgfx.  If not, see <https://www.gnu.org/licenses/>.

package test

import "strings"

// Writer is an implementation of io.Writer that collects everything written
// to it. The collected output can be compared with an expected string.
type Writer struct {
	buffer strings.Builder
}

func (w *Writer) Write(p []byte) (n int, err error) {
	return w.buffer.Write(p)
}

// Clear the collected output.
func (w *Writer) Clear() {
	w.buffer.Reset()
}

// Compare returns true if the collected output matches s exactly.
func (w *Writer) Compare(s string) bool {
	return s == w.buffer.String()
}

// Lines returns the collected output split into lines. A trailing newline
// does not produce an empty final line.
func (w *Writer) Lines() []string {
	s := strings.TrimSuffix(w.buffer.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (w *Writer) String() string {
	return w.buffer.String()
}
