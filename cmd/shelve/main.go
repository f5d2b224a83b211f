package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-isatty"

	"shelve/cmd/shelve/render"
	"shelve/internal/category"
	"shelve/internal/config"
	"shelve/internal/ui"
)

const appDescription = "Organize a folder's files into category subfolders by extension"

type CLI struct {
	Run        RunCmd        `cmd:"" aliases:"r" help:"Organize a folder"`
	Categories CategoriesCmd `cmd:"" aliases:"cats" help:"Show the built-in category table"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completions"`

	ConfigPath string `name:"config" short:"c" help:"Path to preferences file"`
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	configPath := c.ConfigPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	globals := &Globals{
		Table:       category.Default(),
		Config:      cfg,
		Out:         os.Stdout,
		Render:      render.NewLipglossRendererAuto(os.Stdout),
		Interactive: isatty.IsTerminal(os.Stdin.Fd()),
		AskFolder:   ui.AskFolder,
	}
	ctx.Bind(globals)
	return nil
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("shelve"),
		kong.Description(appDescription),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
