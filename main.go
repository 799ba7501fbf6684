package main

import "github.com/lepinkainen/gbrandom/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
