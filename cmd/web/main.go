// Command web serves the extracurricular program portal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	webcmd "github.com/louisbranch/extracurricular-portal/internal/cmd/web"
	"github.com/louisbranch/extracurricular-portal/internal/platform/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		config.Exitf("web: %v", err)
	}
}

func run(args []string) error {
	cfg, err := webcmd.ParseConfig(flag.CommandLine, args)
	if err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return webcmd.Run(ctx, cfg)
}
