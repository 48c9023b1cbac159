// Package console reads dimensions interactively from a text stream.
//
// A Prompter writes a prompt with no trailing newline and then scans one
// whitespace-delimited signed decimal integer. Tokens may share a line or sit
// on separate lines. A token that is not entirely a base-10 int32 is reported
// as domain.ErrMalformedInput.
package console
