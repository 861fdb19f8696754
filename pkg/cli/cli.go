package cli

import (
	"github.com/khalid-nowaf/morsetree/pkg/morse"
	"github.com/pkg/errors"
)

// CLI is the top-level command grammar.
var CLI struct {
	Table string `help:"HCL file with extra symbol definitions" type:"existingfile" optional:""`

	Decode  DecodeCmd  `cmd:"" default:"withargs" help:"Decode a Morse message from arguments or stdin"`
	Batch   BatchCmd   `cmd:"" help:"Decode message records from CSV or JSON files"`
	Symbols SymbolsCmd `cmd:"" help:"Print the registered symbol table"`
}

// Context carries the shared decoder into every command's Run.
type Context struct {
	decoder *morse.Decoder
}

// NewContext builds the decoder for this invocation, folding in any extra
// symbols from the --table file.
func NewContext(tableFile string) (*Context, error) {
	var opts []morse.Option
	if tableFile != "" {
		symbols, err := LoadSymbolFile(tableFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, morse.WithSymbols(symbols))
	}

	decoder, err := morse.NewDecoder(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "building symbol table")
	}
	return &Context{decoder: decoder}, nil
}
