package main

import (
	"github.com/odooscan/odooscan/internal/cli"
)

func main() {
	cli.Execute()
}
