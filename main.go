package main

import (
	"github.com/statcalc/statcalc/cmd"
)

func main() {
	cmd.Execute()
}
