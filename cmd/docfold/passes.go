package main

import (
	"fmt"
	"slices"

	"github.com/viant/docfold/passes"
)

// PassesCmd implements the 'passes' command.
type PassesCmd struct{}

func (p *PassesCmd) Run(global *Global) error {
	for _, pass := range passes.List() {
		marker := " "
		if slices.Contains(passes.DefaultPasses, pass.Name) {
			marker = "*"
		}
		if _, err := fmt.Fprintf(global.Stdout, "%s %-18s %s\n", marker, pass.Name, pass.Description); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(global.Stdout, "\n* run by default")
	return err
}
