package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/yuribeats/the-boards/utils"
)

func main() {
	_ = godotenv.Load()

	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	utils.Sync()
	if err != nil {
		os.Exit(1)
	}
}
