package cli

import (
	"net/http"

	"github.com/julianstephens/tripcraft/internal/httpapi"
	"github.com/julianstephens/tripcraft/internal/logger"
)

type ServeCmd struct {
	Addr string `help:"Listen address." default:":8080"`
}

func (c *ServeCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	srv := httpapi.NewServer(ctx.Store, ctx.Config)
	logger.Info("HTTP API listening", "addr", c.Addr)
	return http.ListenAndServe(c.Addr, srv.Router())
}
