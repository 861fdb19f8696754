package cli

import (
	"github.com/pterm/pterm"
)

type SymbolsCmd struct{}

// Run renders the registered symbol table, extension symbols included.
func (cmd *SymbolsCmd) Run(ctx *Context) error {
	tableData := pterm.TableData{{"Character", "Code"}}
	for _, symbol := range ctx.decoder.Tree().Symbols() {
		tableData = append(tableData, []string{string(symbol.Char), symbol.Code})
	}

	return pterm.DefaultTable.WithHasHeader(true).WithData(tableData).Render()
}
