package http

import (
	nethttp "net/http"

	"nfl-picks-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. Admin routes are mounted
// only when admin is non-nil.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) *nethttp.ServeMux {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("GET /health", handler.Health)
	mux.HandleFunc("GET /picks/{discordID}/{pickID}", handler.PicksPage)
	mux.HandleFunc("POST /picks/{discordID}/{pickID}", handler.SubmitPicks)
	mux.HandleFunc("GET /playoffs/{discordID}/{season}", handler.PlayoffsPage)
	mux.HandleFunc("POST /playoffs/{discordID}/{season}", handler.SubmitPlayoffs)

	if admin != nil {
		mux.HandleFunc("POST /admin/picks/prime", admin.RequireToken(admin.PrimePicks))
		mux.HandleFunc("POST /admin/features", admin.RequireToken(admin.SetFeature))
		mux.HandleFunc("POST /admin/poolers", admin.RequireToken(admin.UpsertPooler))
	}
	return mux
}
