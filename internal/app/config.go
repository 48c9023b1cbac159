package app

import "io"

// Config holds runtime wiring options for building the app.
type Config struct {
	In  io.Reader // dimension source; defaults to os.Stdin
	Out io.Writer // prompts and the result line; defaults to os.Stdout
}
