package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/miekg/king"

	"shelve/internal/util"
)

type CompletionCmd struct {
	Shell string `arg:"" enum:"bash,fish" help:"Shell type (bash, fish)"`
}

func (cmd *CompletionCmd) Run(g *Globals) error {
	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name("shelve"),
		kong.Description(appDescription),
	)
	if err != nil {
		return err
	}
	node := parser.Model.Node

	switch cmd.Shell {
	case "bash":
		b := &king.Bash{}
		b.Completion(node, "shelve")
		assert.Success(g.Out.Write(b.Out()))
	case "fish":
		f := &king.Fish{}
		f.Completion(node, "shelve")
		assert.Success(g.Out.Write(f.Out()))
	default:
		return fmt.Errorf("unsupported shell: %s", cmd.Shell)
	}

	return nil
}
