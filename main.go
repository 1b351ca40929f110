package main

import "github.com/misho104/SUSY-crosssection/cli"

func main() {
	cli.Execute()
}
