package main

import (
	"context"
	"os"
	"strings"

	"github.com/stackwatch/checkstack/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()
	opts := cli.Options{Verbose: isVerbose()}

	os.Exit(cli.Execute(ctx, opts, os.Args[1:]))
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("CHECKSTACK_DEBUG"), "1") || strings.EqualFold(os.Getenv("CHECKSTACK_DEBUG"), "true")
}
