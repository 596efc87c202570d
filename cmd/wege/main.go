package main

import "github.com/mcoot/wege-go/internal/cli"

func main() {
	cli.Execute()
}
