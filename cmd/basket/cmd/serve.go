package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvbasket/internal/server"
	"github.com/katalvlaran/lvbasket/preprocess"
	"github.com/katalvlaran/lvbasket/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}

	var catalog *preprocess.Catalog
	if cfg.Data.ProductsCSV != "" {
		c, err := store.LoadCatalog(cfg.Data.ProductsCSV)
		if err != nil {
			return err
		}
		catalog = c
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg, catalog).ListenAndServe(ctx)
}
