package main

import "github.com/bline/tree2files/cmd"

func main() {
	cmd.Execute()
}
