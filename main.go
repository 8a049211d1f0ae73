package main

import "github.com/mouse-blink/problemify/cmd"

func main() {
	cmd.Execute()
}
