// cubedemo - apply, shuffle and play move sequences on a virtual 3x3x3 cube.
package main

import (
	"github.com/SeamusWaldron/cubedemo/internal/cli"
)

func main() {
	cli.Execute()
}
