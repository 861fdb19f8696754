package cli

import (
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/khalid-nowaf/morsetree/pkg/morse"
	"github.com/pkg/errors"
)

// hclSymbolFile is the top-level structure of a symbol table file:
//
//	symbol "Ä" {
//	  code = ".-.-"
//	}
type hclSymbolFile struct {
	Symbols []*hclSymbolBlock `hcl:"symbol,block"`
}

type hclSymbolBlock struct {
	Char string `hcl:"char,label"`
	Code string `hcl:"code"`
}

// LoadSymbolFile parses an HCL file of symbol blocks into extension symbols
// for the decoder. Codes are validated later by the normal Insert contract;
// only the file shape is checked here.
func LoadSymbolFile(path string) ([]morse.Symbol, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "parsing symbol file %s", path)
	}

	var parsed hclSymbolFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, errors.Wrapf(diags, "decoding symbol file %s", path)
	}

	symbols := make([]morse.Symbol, 0, len(parsed.Symbols))
	for _, block := range parsed.Symbols {
		char, size := utf8.DecodeRuneInString(block.Char)
		if size == 0 || size != len(block.Char) || char == utf8.RuneError {
			return nil, errors.Errorf("symbol label %q in %s must be exactly one character", block.Char, path)
		}
		symbols = append(symbols, morse.Symbol{Char: char, Code: block.Code})
	}
	return symbols, nil
}
