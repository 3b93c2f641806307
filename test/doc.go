// This file is part of Dithercam.
//
// Dithercam is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Dithercam is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Dithercam.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions to remove common boilerplate from
// package tests and to help them read well.
//
// The ExpectEquality() and ExpectInequality() functions compare two values of
// the same comparable type. ExpectApproximate() is for numeric values that
// need only be within a tolerance of the expected value.
//
// ExpectSuccess() and ExpectFailure() test for the success or failure value
// appropriate to the type of the supplied argument: for a bool, success is
// true; for an error, success is nil.
//
// The Writer type is an implementation of io.Writer that is useful for
// capturing output and comparing it with an expected string.
package test
