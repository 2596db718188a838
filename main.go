package main

import "github.com/kressly/sudoku/cmd"

func main() {
	cmd.Execute()
}
