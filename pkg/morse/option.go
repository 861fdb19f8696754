package morse

// Option customizes a Decoder before its symbol table is sealed.
type Option func(*Decoder) *Decoder

// WithSymbol registers one extra (character, code) pair on top of the
// built-in table. The code goes through the normal Insert contract when the
// decoder is constructed, so a bad code surfaces from NewDecoder.
func WithSymbol(char rune, code string) Option {
	return func(d *Decoder) *Decoder {
		d.extra = append(d.extra, Symbol{Char: char, Code: code})
		return d
	}
}

// WithSymbols registers a batch of extra symbols.
func WithSymbols(symbols []Symbol) Option {
	return func(d *Decoder) *Decoder {
		d.extra = append(d.extra, symbols...)
		return d
	}
}
