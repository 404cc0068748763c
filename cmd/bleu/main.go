package main

import "bleu/internal/cli"

func main() {
	cli.Execute()
}
