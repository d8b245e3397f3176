//go:build cli
// +build cli

package main

import (
	_ "coffeebar.GO/custom"

	"coffeebar.GO/cmd"
)

func main() {
	cmd.Execute()
}
