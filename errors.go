/*
 * errors.go, part of goKin.
 *
 * Copyright 2024 The goKin authors.
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

package kin

import (
	"errors"
	"fmt"
	"strings"
)

//The two kinds of error the kernel reports. Test for them with errors.Is.
var (
	//ErrInvalidInput means the caller gave a trajectory that is too short, has
	//coordinate slices of different lengths, or has the wrong dimension.
	ErrInvalidInput = errors.New("invalid input")
	//ErrDegenerateGeometry means a zero-length vector came up, usually from
	//coincident points, so an angle, a normalization or a log ratio is undefined.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)

//Error is the error type returned by all functions in this package.
//The Decorate method allows to add the names of the callers as the error
//travels up, without changing its type.
type Error struct {
	message string
	kind    error
	deco    []string
}

func newError(kind error, message string, caller string) *Error {
	return &Error{message: message, kind: kind, deco: []string{caller}}
}

//Error returns a string with an error message.
func (err *Error) Error() string {
	return fmt.Sprintf("goKin %s: %s: %s", strings.Join(err.deco, "<-"), err.kind, err.message)
}

//Unwrap returns the kind of the error, so errors.Is works with
//ErrInvalidInput and ErrDegenerateGeometry.
func (err *Error) Unwrap() error { return err.kind }

//Decorate adds dec to the decoration slice of the error and returns
//the resulting slice. An empty string just returns the current slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//errDecorate decorates err with the caller's name if err is an *Error.
//Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}

//PanicMsg is a message used for panics, even though it does satisfy the error interface.
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrIndexOutOfRange = PanicMsg("goKin: index out of range")
	ErrNot2D           = PanicMsg("goKin: trajectory is not 2D")
	ErrNot3D           = PanicMsg("goKin: trajectory is not 3D")
)
