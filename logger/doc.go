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

// Package logger is the central log for softgfx. Entries are tagged and kept
// in a ring of recent entries. Consecutive identical entries are folded into
// a single entry with a repeat count.
//
// Every call takes a Permission. Code that always wants to log should use the
// Allow value. Other code can pass any type that implements the Permission
// interface, allowing logging to be switched off for that caller.
//
// The central log can be echoed to an io.Writer as entries arrive, using the
// SetEcho() function.
package logger
