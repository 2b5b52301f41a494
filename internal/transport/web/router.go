package web

import (
	"log"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/setiawanwcksn/weddingorg-sub000/internal/docs"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/mw"
	v1 "github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/v1"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/v1/health"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/v1/upload"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/v1/ws"
)

func newRouter(hh *health.Handler, uh *upload.Handler, wsh *ws.Handler, auth mw.AuthDeps, logger *log.Logger) http.Handler {
	// отказы авторизации идут через общий конверт (статус, X-Request-ID)
	auth.WriteError = v1.WriteDomainError

	mux := http.NewServeMux()

	// health
	mux.HandleFunc("GET /v1/healthz", hh.Liveness)
	mux.HandleFunc("GET /v1/readyz", hh.Readiness)

	// realtime: без токена апгрейд тоже проходит, владелец = "anonymous"
	mux.Handle("GET /api/ws/guests", mw.OptionalAuth(auth, http.HandlerFunc(wsh.Serve)))

	// media
	mux.Handle("GET /upload/test", mw.RequireAuth(auth, http.HandlerFunc(uh.Probe)))
	mux.Handle("POST /upload", mw.RequireAuth(auth, limitBody(64<<20, uh.Upload))) // 64MB лимит
	mux.HandleFunc("GET /upload/{filename}/exists", uh.Exists)
	mux.HandleFunc("GET /upload/{filename}", uh.Serve)
	mux.Handle("DELETE /upload/{filename}", mw.RequireAuth(auth, http.HandlerFunc(uh.Delete)))

	// swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// 🔗 middleware
	return mw.WithRequestID(mw.Logging(logger)(mux))
}

func limitBody(n int64, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, n)
		h(w, r)
	}
}
