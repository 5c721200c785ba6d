// cmd/gpubench/main.go
package main

import (
	cmd "github.com/mwiater/gpubench/internal/cli"
)

// main starts the gpubench CLI by delegating to the cobra root command.
func main() {
	cmd.Execute()
}
