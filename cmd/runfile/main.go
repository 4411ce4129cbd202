package main

import "runfile/internal/cli"

func main() {
	cli.Execute()
}
