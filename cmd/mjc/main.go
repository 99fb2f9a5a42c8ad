package main

import (
	"github.com/funvibe/minijava/pkg/cli"
)

func main() {
	cli.Run()
}
