package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/abhisek/parlo/cmd"
)

func main() {
	// A .env file is optional; PARLO_* vars may come from anywhere.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
