package rpc

import (
	"log/slog"

	"github.com/daniilsolovey/clinic-cms/internal/auth"
	"github.com/daniilsolovey/clinic-cms/internal/cms"
	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"
)

//go:generate zenrpc

// New returns the back-office JSON-RPC server. Every namespace except auth requires a bearer token.
func New(logger *slog.Logger, manager *cms.Manager, issuer *auth.Issuer, policy *auth.Policy) *zenrpc.Server {
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})

	rpcServer.Register("auth", NewAuthService(manager, issuer))
	rpcServer.Register("page", NewPageService(manager))
	rpcServer.Register("blog", NewBlogService(manager))
	rpcServer.Register("catalog", NewCatalogService(manager))
	rpcServer.Register("menu", NewMenuService(manager))
	rpcServer.Register("media", NewMediaService(manager))
	rpcServer.Register("user", NewUserService(manager))
	rpcServer.Register("seo", NewSeoService(manager))
	rpcServer.Register("stats", NewStatsService(manager))

	rpcServer.Use(
		middleware.WithSLog(logger.InfoContext, "clinic-cms", nil),
		withAuth(issuer, policy),
	)

	return rpcServer
}
