package main

import "github.com/theirongolddev/roicalc/cmd"

func main() {
	cmd.Execute()
}
