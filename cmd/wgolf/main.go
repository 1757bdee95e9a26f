// Command wgolf solves word ladders over a word list.
package main

import (
	"os"

	"github.com/feydor/semiotics/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
