/*
 * errors.go, part of synthpdb.
 *
 * Copyright 2026 The synthpdb authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package synth

import "fmt"

//CError is the error type for the synth package and its sub-packages.
//It carries a trail of the functions the error has passed through.
type CError struct {
	msg  string
	deco []string
}

//NewError returns a CError with the given message.
func NewError(msg string) CError {
	return CError{msg: msg}
}

//Error returns a string with an error message.
func (err CError) Error() string {
	return fmt.Sprintf("%s", err.msg)
}

//Decorate adds the dec string to the decoration trail of the error and
//returns the resulting trail.
func (err CError) Decorate(dec string) []string {
	err.deco = append(err.deco, dec)
	return err.deco
}

//InputError marks invalid user input: a bad amino-acid code, a
//non-positive length with no sequence. Callers retrying transient
//failures should surface these immediately instead, since the same
//input fails the same way every time.
type InputError struct {
	CError
}

//NewInputError returns an InputError with the given message.
func NewInputError(msg string) InputError {
	return InputError{CError{msg: msg}}
}

type errorInt interface {
	Error() string
	Decorate(string) []string
}

//errDecorate adds the caller's name to the trail of err, when err
//implements the decoration interface. Other errors are returned as given.
func errDecorate(err error, caller string) error {
	err2, ok := err.(errorInt)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

//PanicMsg is a message used for panics in the "fundamental" geometry
//functions, where a failure means the program is wrong and should crash.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilAtoms     = PanicMsg("synthpdb: Nil atom data given")
	ErrNilCoords    = PanicMsg("synthpdb: Nil coordinates given")
	ErrAtomMismatch = PanicMsg("synthpdb: Atoms and coordinates don't match")
)
