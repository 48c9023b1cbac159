package app

import (
	"io"
	"os"

	"rectarea/internal/console"
	"rectarea/internal/domain"
	"rectarea/internal/services/area"
)

// Wire bundles the reader, services and output stream used by App.
type Wire struct {
	Dimensions domain.DimensionReader
	Areas      domain.AreaService
	Out        io.Writer // shared by the prompter and the result line
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	in := cfg.In
	if in == nil {
		in = os.Stdin
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	return &Wire{
		Dimensions: console.NewPrompter(in, out),
		Areas:      area.New(),
		Out:        out,
	}
}
