package upload

import (
	"net/http"

	"github.com/setiawanwcksn/weddingorg-sub000/internal/domain"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/media"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/logx"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/mw"
	v1 "github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/v1"
)

// Probe godoc
// @Summary     Auth probe for the upload API
// @Description Возвращает id владельца и канонические имена его слотов
// @Tags        upload
// @Produce     json
// @Success     200 {object} object
// @Failure     401 {object} v1.Envelope
// @Router      /upload/test [get]
func (h *Handler) Probe(w http.ResponseWriter, r *http.Request) {
	const op = "upload.probe"
	reqID := mw.RequestIDFromCtx(r.Context())

	me, ok := mw.UserFromCtx(r.Context())
	if !ok {
		logx.Error(h.Log, reqID, op, "unauthorized", domain.ErrAuthMissing)
		v1.WriteDomainError(w, r, domain.ErrAuthMissing)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user", me.ID)
	v1.WriteJSON(w, r, http.StatusOK, map[string]any{
		"success":           true,
		"message":           "upload API is ready",
		"userId":            me.ID.String(),
		"expectedFilenames": media.ExpectedFilenames(me.ID.String()),
	})
}
