// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines ParseError, the non-fatal diagnostic attached to a single
// source line.
package model

import "fmt"

// ParseError describes a line that matched a keyword but could not be read
// cleanly. Parsing always continues past it.
type ParseError struct {
	Line    int    `json:"line" yaml:"line"`
	Message string `json:"message" yaml:"message"`
}

// Error implements the error interface.
func (e ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}
