package upload

import (
	"net/http"

	"github.com/setiawanwcksn/weddingorg-sub000/internal/domain"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/logx"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/mw"
	v1 "github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/v1"
)

// Upload godoc
// @Summary     Upload media into owner slot
// @Description multipart: photo(file), fieldType(main|dashboard|welcome), userId
// @Tags        upload
// @Accept      multipart/form-data
// @Produce     json
// @Param       photo     formData file   true  "файл"
// @Param       fieldType formData string false "слот (неизвестный схлопывается в main)"
// @Param       userId    formData string false "владелец; чужой id — только для admin"
// @Success     200 {object} v1.Envelope{data=object}
// @Failure     400 {object} v1.Envelope
// @Failure     401 {object} v1.Envelope
// @Failure     403 {object} v1.Envelope
// @Failure     500 {object} v1.Envelope
// @Router      /upload [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	const op = "upload.put"
	reqID := mw.RequestIDFromCtx(r.Context())

	me, ok := mw.UserFromCtx(r.Context())
	if !ok {
		logx.Error(h.Log, reqID, op, "unauthorized", domain.ErrAuthMissing)
		v1.WriteDomainError(w, r, domain.ErrAuthMissing)
		return
	}

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		logx.Error(h.Log, reqID, op, "parse form", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	ft := domain.ParseFieldType(r.FormValue("fieldType"))

	// userId из формы обязан совпадать с владельцем токена, кроме admin
	ownerID := r.FormValue("userId")
	if ownerID == "" {
		ownerID = me.ID.String()
	}
	if ownerID != me.ID.String() && !me.Elevated() {
		logx.Error(h.Log, reqID, op, "owner mismatch", domain.ErrForbidden, "owner", ownerID)
		v1.WriteDomainError(w, r, domain.ErrForbidden)
		return
	}

	file, hdr, err := r.FormFile("photo")
	if err != nil {
		logx.Error(h.Log, reqID, op, "missing photo field", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	defer file.Close()

	mime := hdr.Header.Get("Content-Type")
	res, err := h.Media.Put(r.Context(), ownerID, ft, file, mime, hdr.Filename)
	if err != nil {
		logx.Error(h.Log, reqID, op, "put failed", err, "owner", ownerID, "field", ft)
		v1.WriteDomainError(w, r, err)
		return
	}

	// метаданные могли смениться — чистим кэш /exists
	_ = h.Cache.Del(r.Context(), metaCacheKeys(res.Filename)...)

	logx.Info(h.Log, reqID, op, "ok", "owner", ownerID, "file", res.Filename, "size", res.Size)
	v1.WriteOKData(w, r, map[string]any{
		"url":      h.PublicBaseURL + "/upload/" + res.Filename,
		"filename": res.Filename,
		"size":     res.Size,
		"type":     res.Mimetype,
	})
}
