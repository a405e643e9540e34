package main

import "github.com/grendel/chainaddr/internal/cli"

func main() {
	cli.Execute()
}
