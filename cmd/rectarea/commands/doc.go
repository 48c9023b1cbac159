// Package commands defines the rectarea CLI.
//
// The root command takes no arguments. It prompts for a width and a height on
// standard output, reads them from standard input and prints the area of the
// rectangle they describe:
//
//	$ rectarea
//	Enter width: 3
//	Enter height: 4
//	Area of a 3 by 4 rectangle is: 12
//
// Negative or non-integer dimensions and areas that overflow an int32 print a
// one-line error and exit with status 1.
package commands
