package mw_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/mw"
	v1 "github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/v1"
)

// цепочка как в роутере: request-id снаружи, конвертный врайтер внутри
func authChain(t *testing.T) http.Handler {
	t.Helper()
	deps := mw.AuthDeps{WriteError: v1.WriteDomainError}
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not run without auth")
	})
	return mw.WithRequestID(mw.RequireAuth(deps, next))
}

func TestRequireAuthMissingToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/upload/test", nil)
	w := httptest.NewRecorder()
	authChain(t).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	// 401 несёт те же заголовки, что и остальные ответы
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":false,"error":"auth_missing"}`, w.Body.String())
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/upload/test", nil)
	r.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	authChain(t).ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.JSONEq(t, `{"success":false,"error":"auth_invalid_format"}`, w.Body.String())
}
