package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"shelve/cmd/shelve/render"
	"shelve/internal/config"
	"shelve/internal/organize"
)

type RunCmd struct {
	Path    string `arg:"" optional:"" help:"Folder to organize (prompted for when omitted)"`
	Format  string `short:"f" help:"Output format: text, json or yaml (default from config)"`
	NoLock  bool   `help:"Skip the per-folder run lock"`
	Verbose bool   `short:"v" help:"Log each file as it is processed"`
}

func (cmd *RunCmd) Run(g *Globals) error {
	path := cmd.Path
	if path == "" {
		if !g.Interactive {
			return errors.New("no folder given; pass a path or run from a terminal")
		}
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		path, err = g.AskFolder(cwd)
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return err
		}
	}

	source, err := config.ExpandPath(path)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	var opts []organize.Option
	if cmd.NoLock || g.Config.NoLock {
		opts = append(opts, organize.WithoutLock())
	}
	if cmd.Verbose {
		opts = append(opts, organize.WithLogger(slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}

	engine := organize.NewEngine(g.Table, opts...)
	result, err := engine.Run(source)
	if err != nil {
		return err
	}

	return cmd.writeResult(g, result)
}

func (cmd *RunCmd) writeResult(g *Globals, result *organize.Result) error {
	format := cmd.Format
	if format == "" {
		format = g.Config.Format
	}

	switch format {
	case "", "text":
		_, err := fmt.Fprint(g.Out, g.Render.RenderResult(render.NewResultView(result)))
		return err
	case "json":
		enc := json.NewEncoder(g.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		data, err := yaml.Marshal(result)
		if err != nil {
			return err
		}
		_, err = g.Out.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported format %q (want text, json or yaml)", format)
	}
}
