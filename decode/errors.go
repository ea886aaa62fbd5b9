package decode

import (
	"fmt"
	"strings"
)

// ArityError reports a recognized command with too few trailing tokens.
type ArityError struct {
	Command string
	Want    int
	Got     int
}

func (e ArityError) Error() string {
	return fmt.Sprintf("%s: %d argument(s) required, %d given", e.Command, e.Want, e.Got)
}

// NumberError reports a non-numeric token where a number is required.
type NumberError struct {
	Command string
	Token   string
}

func (e NumberError) Error() string {
	return fmt.Sprintf("%s: %q is not a valid number", e.Command, e.Token)
}

// VocabError reports a token outside the vocabulary of a mandatory
// attribute.
type VocabError struct {
	Command string
	Token   string
}

func (e VocabError) Error() string {
	return fmt.Sprintf("%s: missing or invalid value %q", e.Command, e.Token)
}

// MissingBinError reports a BIN keyword followed by neither a boolean nor
// any valid binning attribute.
type MissingBinError struct {
	Field string
}

func (e MissingBinError) Error() string {
	return fmt.Sprintf("field %s: missing or invalid binning after BIN", e.Field)
}

// TrailingError reports tokens left over once the top-level parser stopped.
type TrailingError struct {
	Tokens []string
	At     int
}

func (e TrailingError) Error() string {
	return fmt.Sprintf("not a valid plot command: %q not parsed", strings.Join(e.Tokens[e.At:], " "))
}
