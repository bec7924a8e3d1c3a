package main

import "github.com/OpenTraceLab/OpenTracePinmux/cmd/differ/cmd"

func main() {
	cmd.Execute()
}
