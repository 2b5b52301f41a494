package upload

import (
	"net/http"

	"github.com/setiawanwcksn/weddingorg-sub000/internal/domain"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/logx"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/mw"
	v1 "github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/v1"
)

// Delete godoc
// @Summary     Delete media (owner only)
// @Description Не-владелец получает 404, не 403: чужие файлы не подсвечиваем
// @Tags        upload
// @Produce     json
// @Param       filename path string true "имя файла"
// @Success     200 {object} v1.Envelope
// @Failure     401 {object} v1.Envelope
// @Failure     404 {object} v1.Envelope
// @Router      /upload/{filename} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "upload.delete"
	reqID := mw.RequestIDFromCtx(r.Context())
	filename := r.PathValue("filename")

	me, ok := mw.UserFromCtx(r.Context())
	if !ok {
		logx.Error(h.Log, reqID, op, "unauthorized", domain.ErrAuthMissing)
		v1.WriteDomainError(w, r, domain.ErrAuthMissing)
		return
	}

	if err := h.Media.Delete(r.Context(), filename, me.ID.String()); err != nil {
		logx.Error(h.Log, reqID, op, "delete failed", err, "file", filename)
		v1.WriteDomainError(w, r, err)
		return
	}

	_ = h.Cache.Del(r.Context(), metaCacheKeys(filename)...)

	logx.Info(h.Log, reqID, op, "ok", "file", filename)
	v1.WriteJSON(w, r, http.StatusOK, v1.OkMessage("deleted"))
}
