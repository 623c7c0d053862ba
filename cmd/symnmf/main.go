// SPDX-License-Identifier: MIT

// Package main provides the symnmf CLI entry point.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
