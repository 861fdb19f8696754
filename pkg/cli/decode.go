package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

type DecodeCmd struct {
	Message []string `arg:"" optional:"" help:"Morse message to decode; reads stdin line by line when omitted"`
}

// Run executes the decode command.
func (cmd *DecodeCmd) Run(ctx *Context) error {
	if len(cmd.Message) > 0 {
		fmt.Println(ctx.decoder.Decode(strings.Join(cmd.Message, " ")))
		return nil
	}
	return decodeLines(ctx, os.Stdin, os.Stdout)
}

// decodeLines decodes every line of input until EOF. Decoding is total, so
// the only errors here are reader errors.
func decodeLines(ctx *Context, in io.Reader, out io.Writer) error {
	interactive := in == os.Stdin && isTerminal(os.Stdin)
	if interactive {
		pterm.Info.Println("Type a Morse message per line, Ctrl-D to quit")
	}

	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			pterm.FgGray.Print("morse> ")
		}
		if !scanner.Scan() {
			break
		}
		fmt.Fprintln(out, ctx.decoder.Decode(scanner.Text()))
	}
	return scanner.Err()
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
