package main

import "github.com/katalvlaran/gradviz/internal/cli"

func main() {
	cli.Execute()
}
