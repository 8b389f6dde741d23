package main

import "wordseg/internal/cli"

func main() {
	cli.Execute()
}
