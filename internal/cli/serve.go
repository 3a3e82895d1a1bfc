package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/overlay/internal/server"
	"github.com/matzehuels/overlay/pkg/buildinfo"
	"github.com/matzehuels/overlay/pkg/cache"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP parse service",
		Long: `Run the HTTP parse service.

Endpoints:
  POST /v1/parse[?comment=c]   parse the request body
  GET  /healthz                liveness and version`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr == "" {
				addr = c.Config.Server.Addr
			}

			store, err := c.newCache(ctx, noCache)
			if err != nil {
				return err
			}
			defer store.Close()

			c.out.keyValue("Address", addr)
			c.out.keyValue("Cache", c.cacheLocation())
			c.out.keyValue("Body limit", strconv.FormatInt(c.Config.Server.MaxBodyBytes, 10)+" bytes")
			c.out.keyValue("Version", buildinfo.Version)

			srv := server.New(server.Options{
				Addr:         addr,
				CommentChar:  c.Config.CommentRune(),
				MaxBodyBytes: c.Config.Server.MaxBodyBytes,
				Cache:        cache.Instrument(store, "parse"),
				CacheTTL:     c.Config.Cache.TTL.Duration,
				Logger:       loggerFromContext(ctx),
			})
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the parse cache")

	return cmd
}
