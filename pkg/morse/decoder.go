package morse

import (
	"regexp"
	"strings"
	"unicode"
)

// After normalization every whitespace rune is a plain space, so the folding
// and collapsing patterns only ever deal with ' '.
var wordBreakPattern = regexp.MustCompile(" {3,}")
var spaceRunPattern = regexp.MustCompile(" +")

// Decoder turns raw Morse text into plain characters. Construct it once and
// share it freely: decoding never mutates the symbol tree.
type Decoder struct {
	tree  *SymbolTree
	extra []Symbol
}

// NewDecoder builds a decoder over the built-in table plus any symbols
// registered through options. It returns the Insert error of the first
// extra symbol that fails, leaving the decoder unusable, since a bad table
// definition should stop construction rather than degrade silently.
func NewDecoder(opts ...Option) (*Decoder, error) {
	decoder := &Decoder{tree: newDefaultTree()}
	for _, opt := range opts {
		decoder = opt(decoder)
	}
	for _, symbol := range decoder.extra {
		if err := decoder.tree.Insert(symbol.Char, symbol.Code); err != nil {
			return nil, err
		}
	}
	return decoder, nil
}

// Tree exposes the decoder's symbol tree, e.g. for rendering the registered
// table. The tree must not be mutated concurrently with Decode calls.
func (d *Decoder) Tree() *SymbolTree {
	return d.tree
}

// Decode resolves a raw message into plain text. It is deterministic,
// side-effect-free and total: any token that cannot be resolved becomes
// Placeholder, and no input ever produces an error.
//
// The pipeline, each step a pure string transformation:
//  1. normalize decorative variants and drop foreign characters
//  2. fold interior runs of 3+ whitespace into the word separator " / "
//  3. collapse the remaining whitespace runs and trim
//  4. split on single spaces and resolve each token
//
// The normalized text is trimmed before folding so that leading or trailing
// blanks never turn into word boundaries; a whitespace-only message decodes
// to the empty string.
func (d *Decoder) Decode(raw string) string {
	collapsed := collapseSpaces(foldWordBreaks(strings.TrimSpace(Normalize(raw))))

	var out strings.Builder
	for _, token := range strings.Split(collapsed, " ") {
		switch {
		case token == "":
			// consecutive separators produce empty tokens, skip them
		case token == Separator:
			out.WriteByte(' ')
		default:
			if char, ok := d.tree.Lookup(token); ok {
				out.WriteRune(char)
			} else {
				out.WriteRune(Placeholder)
			}
		}
	}
	return out.String()
}

// Normalize maps decorative Unicode variants onto the canonical alphabet and
// drops everything else. The result contains only dots, dashes, slashes and
// plain spaces (each whitespace rune becomes exactly one space, so run
// lengths survive for word-boundary folding). Normalize is idempotent.
func Normalize(raw string) string {
	var out strings.Builder
	out.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r == Dot || r == Dash || r == '/':
			out.WriteRune(r)
		case unicode.IsSpace(r):
			out.WriteByte(' ')
		case r == '…': // horizontal ellipsis
			out.WriteString("...")
		case isDashVariant(r):
			out.WriteByte('-')
		case isDotVariant(r):
			out.WriteByte('.')
		}
		// anything else is noise and is dropped before tokenization
	}
	return out.String()
}

// isDashVariant reports dash look-alikes commonly pasted from rich text:
// en dash, em dash, horizontal bar, minus sign and low line.
func isDashVariant(r rune) bool {
	switch r {
	case '–', '—', '―', '−', '_':
		return true
	}
	return false
}

// isDotVariant reports dot look-alikes: bullet, middle dot, bullet operator
// and one dot leader.
func isDotVariant(r rune) bool {
	switch r {
	case '•', '·', '∙', '․':
		return true
	}
	return false
}

// foldWordBreaks rewrites every run of three or more spaces as the canonical
// word separator. It must run before collapseSpaces, otherwise long blank
// runs would become indistinguishable from single letter separators.
func foldWordBreaks(s string) string {
	return wordBreakPattern.ReplaceAllString(s, " "+Separator+" ")
}

// collapseSpaces squeezes the remaining space runs down to single spaces and
// trims the ends.
func collapseSpaces(s string) string {
	return strings.TrimSpace(spaceRunPattern.ReplaceAllString(s, " "))
}
