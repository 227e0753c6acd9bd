package main

import (
	"github.com/toolbridge/toolbridge/internal/cmd"
)

func main() {
	cmd.Execute()
}
