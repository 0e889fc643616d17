package main

import "github.com/MeKo-Tech/swatchgen/internal/cmd"

func main() {
	cmd.Execute()
}
