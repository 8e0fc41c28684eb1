package main

import "slideshow/cmd"

func main() {
	cmd.Execute()
}
