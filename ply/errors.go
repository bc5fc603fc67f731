// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ply

import "github.com/cpmech/gosl/chk"

// Kind identifies the class of a draping error. Every kind is fatal to the
// current Drape call; none are retried.
type Kind int

const (
	InvalidDatum Kind = iota
	UnknownMaterial
	UnknownField
	UnknownDatum
	OperandArityMismatch
	UnknownOperator
	ParseError
	DuplicatePlyName
	EmptyMesh
)

func (k Kind) String() string {
	switch k {
	case InvalidDatum:
		return "InvalidDatum"
	case UnknownMaterial:
		return "UnknownMaterial"
	case UnknownField:
		return "UnknownField"
	case UnknownDatum:
		return "UnknownDatum"
	case OperandArityMismatch:
		return "OperandArityMismatch"
	case UnknownOperator:
		return "UnknownOperator"
	case ParseError:
		return "ParseError"
	case DuplicatePlyName:
		return "DuplicatePlyName"
	case EmptyMesh:
		return "EmptyMesh"
	}
	return "Unknown"
}

// Error is the single error type returned by this package. It carries a
// Kind so callers (in particular the CLI) can branch on the error class
// without parsing the message.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// errf builds an *Error the way gosl/chk.Err builds a plain error: a
// formatted message, attributed to a Kind.
func errf(k Kind, msg string, args ...interface{}) error {
	return &Error{Kind: k, Msg: chk.Err(msg, args...).Error()}
}
