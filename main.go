package main

import (
	"github.com/go-imsto/properjpg/cmd"
)

func main() {
	cmd.Main()
}
