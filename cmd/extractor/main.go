package main

import "github.com/OpenTraceLab/OpenTracePinmux/cmd/extractor/cmd"

func main() {
	cmd.Execute()
}
