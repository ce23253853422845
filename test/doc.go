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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure and allow the test to continue.
// The Demand*() functions stop the test immediately.
//
// The ExpectSuccess and ExpectFailure functions test for success and failure
// under generic conditions. Supported types are bool, error and nil. It is
// worth describing how nil is handled because it is not obvious: nil is
// considered a success and so will cause ExpectFailure to fail and
// ExpectSuccess to succeed. This follows how errors are usually returned,
// with nil indicating no error.
//
// Optional tags can be passed to all functions. These are prepended to the
// failure message and help to identify which iteration of a loop failed.
package test
