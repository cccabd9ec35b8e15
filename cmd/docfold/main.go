package main

import (
	"os"

	"github.com/alecthomas/kong"
)

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("docfold"),
		kong.Description("Transforms documentation trees with stripping and comment normalization passes."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&Global{Stdout: os.Stdout}, cli)
	ctx.FatalIfErrorf(err)
}
