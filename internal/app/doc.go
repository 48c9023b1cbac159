// Package app wires application dependencies for the CLI and runs the
// interactive calculator.
//
// NewWire builds the prompter and area service from Config. App.Run then
// performs the whole exchange:
//
//	Enter width: <w>
//	Enter height: <h>
//	Area of a <w> by <h> rectangle is: <area>
//
// Negative or malformed dimensions and overflowing areas print a single error
// line on the output stream and are returned as an *ExitError with Code 1.
package app
