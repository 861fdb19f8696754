package morse

import "fmt"

// defaultSymbols is the built-in table: international Morse for A-Z, 0-9 and
// the defined punctuation set.
var defaultSymbols = []Symbol{
	{'A', ".-"},
	{'B', "-..."},
	{'C', "-.-."},
	{'D', "-.."},
	{'E', "."},
	{'F', "..-."},
	{'G', "--."},
	{'H', "...."},
	{'I', ".."},
	{'J', ".---"},
	{'K', "-.-"},
	{'L', ".-.."},
	{'M', "--"},
	{'N', "-."},
	{'O', "---"},
	{'P', ".--."},
	{'Q', "--.-"},
	{'R', ".-."},
	{'S', "..."},
	{'T', "-"},
	{'U', "..-"},
	{'V', "...-"},
	{'W', ".--"},
	{'X', "-..-"},
	{'Y', "-.--"},
	{'Z', "--.."},
	{'0', "-----"},
	{'1', ".----"},
	{'2', "..---"},
	{'3', "...--"},
	{'4', "....-"},
	{'5', "....."},
	{'6', "-...."},
	{'7', "--..."},
	{'8', "---.."},
	{'9', "----."},
	{'.', ".-.-.-"},
	{',', "--..--"},
	{'?', "..--.."},
	{'!', "-.-.--"},
	{'/', "-..-."},
	{'(', "-.--."},
	{')', "-.--.-"},
	{'&', ".-..."},
	{':', "---..."},
	{';', "-.-.-."},
	{'=', "-...-"},
	{'+', ".-.-."},
	{'-', "-....-"},
	{'_', "..--.-"},
	{'"', ".-..-."},
	{'$', "...-..-"},
	{'@', ".--.-."},
}

// DefaultSymbols returns a copy of the built-in table.
func DefaultSymbols() []Symbol {
	symbols := make([]Symbol, len(defaultSymbols))
	copy(symbols, defaultSymbols)
	return symbols
}

// newDefaultTree builds a SymbolTree from the built-in table. The table is
// static, so a failed insert is a programming mistake, not a runtime
// condition.
func newDefaultTree() *SymbolTree {
	tree := NewSymbolTree()
	for _, symbol := range defaultSymbols {
		if err := tree.Insert(symbol.Char, symbol.Code); err != nil {
			panic(fmt.Sprintf("[BUG] newDefaultTree: %v", err))
		}
	}
	return tree
}
