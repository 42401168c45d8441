package main

import "github.com/aweris/mygit/cmd/mygit/cmd"

func main() {
	cmd.Execute()
}
