package main

import (
	"github.com/vitalog-org/vitalog/api"
)

func main() {
	api.MainLoop()
}
