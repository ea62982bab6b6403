package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Platform tokens may live in a local .env; a missing file is fine.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
