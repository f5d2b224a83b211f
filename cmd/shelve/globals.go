package main

import (
	"io"

	"shelve/cmd/shelve/render"
	"shelve/internal/category"
	"shelve/internal/config"
)

type Globals struct {
	Table  *category.Table
	Config config.Config
	Out    io.Writer
	Render render.Renderer

	// Interactive reports whether stdin is a terminal; the run command
	// only prompts for a folder when it is.
	Interactive bool
	// AskFolder obtains a directory path from the user. Injected so
	// tests can run the command without a terminal.
	AskFolder func(defaultPath string) (string, error)
}
