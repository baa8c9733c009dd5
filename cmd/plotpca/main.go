// SPDX-License-Identifier: MIT

// Command plotpca filters, projects and plots proteomics intensity tables.
//
//	plotpca init plotpca.yaml
//	plotpca run --config plotpca.yaml --out plots --format svg
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, styles.err.Render("error: ")+err.Error())
		stop()
		os.Exit(1)
	}
}
