package main

import (
	"github.com/vitalog-org/vitalog/cmd/vitalogctl/command"
)

func main() {
	command.Execute()
}
