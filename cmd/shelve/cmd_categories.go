package main

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type CategoriesCmd struct {
	Format string `short:"f" help:"Output format: table, json or yaml"`
}

func (cmd *CategoriesCmd) Run(g *Globals) error {
	categories := g.Table.Categories()

	switch cmd.Format {
	case "", "table":
		fmt.Fprintln(g.Out, renderCategoryTable(categories))
		return nil
	case "json":
		enc := json.NewEncoder(g.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(categories)
	case "yaml":
		data, err := yaml.Marshal(categories)
		if err != nil {
			return err
		}
		_, err = g.Out.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported format %q (want table, json or yaml)", cmd.Format)
	}
}
