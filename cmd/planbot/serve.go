package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Ilya-36/planbot/config"
	"github.com/Ilya-36/planbot/transport/httpapi"
	"github.com/Ilya-36/planbot/transport/ws"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP and WebSocket server",
	Long:  `Serve the REST message endpoint and the WebSocket chat endpoint on one address.`,
	Run:   runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Listen address (defaults to HTTP_ADDR or :8080)")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg := config.Load()
	if serveAddr != "" {
		cfg.HTTPAddr = serveAddr
	}

	logger := newLogger(cfg).WithComponent("serve")
	eng := newEngine(logger)

	api := httpapi.NewServer(eng)
	wsSrv := ws.NewServer(cfg, eng, logger)
	api.RegisterWebSocket(wsSrv.Handle)

	go func() {
		if err := api.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fatal("Server failed: %v", err)
		}
	}()

	fmt.Printf("planbot listening on %s\n", cfg.HTTPAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := api.Shutdown(ctx); err != nil {
		fatal("Shutdown failed: %v", err)
	}
}
