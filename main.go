package main

import "github.com/kozaktomas/collage-maker/cmd"

func main() {
	cmd.Execute()
}
