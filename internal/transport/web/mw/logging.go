package mw

import (
	"bufio"
	"errors"
	"log"
	"net"
	"net/http"
	"time"
)

// Logging — middleware: старт/финиш запроса, статус, размер, длительность
func Logging(l *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := RequestIDFromCtx(r.Context())
			start := time.Now()

			mw := &metaWriter{ResponseWriter: w}

			next.ServeHTTP(mw, r)

			dur := time.Since(start)
			l.Printf("lvl=info req_id=%s method=%s path=%q status=%d size=%d duration_ms=%d",
				reqID, r.Method, r.URL.Path, mw.status, mw.size, dur.Milliseconds())
		})
	}
}

type metaWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (m *metaWriter) WriteHeader(code int) {
	m.status = code
	m.ResponseWriter.WriteHeader(code)
}

func (m *metaWriter) Write(b []byte) (int, error) {
	if m.status == 0 {
		m.status = http.StatusOK
	}
	n, err := m.ResponseWriter.Write(b)
	m.size += n
	return n, err
}

// Hijack нужен ws-апгрейду: без него gorilla не заберёт соединение
func (m *metaWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := m.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	if m.status == 0 {
		m.status = http.StatusSwitchingProtocols
	}
	return hj.Hijack()
}

func (m *metaWriter) Flush() {
	if f, ok := m.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
