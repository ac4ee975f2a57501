package main

import cmd "github.com/kerbaras/wordbook/cmd/wordbook"

func main() {
	cmd.Execute()
}
