package main

import (
	"flarecast/cmd/cmd"
	"flarecast/internal/logger"
)

func main() {
	logger.Init() // Initialize the logger
	cmd.Execute()
}
