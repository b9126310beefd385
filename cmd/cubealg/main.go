// cubealg - expand commutator and conjugate notation for twisty puzzles.
package main

import (
	"github.com/SeamusWaldron/cubealg/internal/cli"
)

func main() {
	cli.Execute()
}
