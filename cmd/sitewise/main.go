package main

import (
	"github.com/nandemo-ya/sitewise/internal/cli"
)

func main() {
	cli.Execute()
}
