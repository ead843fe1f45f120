package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/gualmart/storefront/config"
	"github.com/gualmart/storefront/internal/app"
	"github.com/gualmart/storefront/internal/webserver"
)

var (
	confFile    = flag.String("c", "storefront.yml", "config file")
	showVersion = flag.Bool("v", false, "print version and exit")
)

var version = "dev"

func main() {
	flag.Parse()
	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	cfg := config.LoadConfig(*confFile)
	application := app.NewApplication(cfg)
	if err := application.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "startup failed: %v\n", err)
		os.Exit(1)
	}
	defer application.Release()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := webserver.New(application)
	if err := server.Start(ctx); err != nil {
		zap.S().Errorf("web server stopped: %v", err)
	}
}
