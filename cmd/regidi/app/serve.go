package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsundh/regidi/cmd/regidi/handler"
	"github.com/spf13/cobra"
)

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve digests over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(a.cfg.HTTP, newMux(handler.NewHandler(a.cfg.Codec())))
		},
	}
}

type routes interface {
	Register(mux *http.ServeMux)
}

func newMux(h routes) http.Handler {
	mux := http.NewServeMux()
	h.Register(mux)
	mux.HandleFunc("GET /health", healthHandler)

	return recoverMiddleware(mux)
}

func serve(httpConfig *HTTPConfig, h http.Handler) error {
	slog.Info("http server initialized, serving...", slog.Int("port", httpConfig.Port))

	err := http.ListenAndServe(fmt.Sprintf(":%d", httpConfig.Port), h)
	if err != nil {
		slog.Error("failed to start server", slog.Any("error", err))
	}
	return err
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				slog.Error("Unexpected panic", slog.Any("error", err), slog.String("stacktrace", string(debug.Stack())))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
