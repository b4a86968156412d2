package main

import "github.com/minlisp/minlisp/cmd"

func main() {
	cmd.Execute()
}
