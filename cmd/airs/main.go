// cmd/airs/main.go
package main

import (
	"os"

	"ai-readiness-workers/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
