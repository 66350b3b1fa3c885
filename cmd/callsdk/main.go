package main

import (
	"context"
	"fmt"
	"os"

	"github.com/danmuck/callsdk/internal/commands"
)

func main() {
	if err := commands.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
