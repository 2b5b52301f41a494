package upload

import (
	"encoding/json"
	"net/http"

	"github.com/setiawanwcksn/weddingorg-sub000/internal/domain"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/logx"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/mw"
	v1 "github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/v1"
)

// компактная мета для кэша /exists — без тела файла
type existsMeta struct {
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	Type     string `json:"type"`
}

// Exists godoc
// @Summary     Check media presence
// @Tags        upload
// @Produce     json
// @Param       filename path string true "имя файла"
// @Success     200 {object} object
// @Failure     404 {object} object
// @Router      /upload/{filename}/exists [get]
func (h *Handler) Exists(w http.ResponseWriter, r *http.Request) {
	const op = "upload.exists"
	reqID := mw.RequestIDFromCtx(r.Context())
	filename := r.PathValue("filename")

	// кэш метаданных
	ckey := domain.CacheKeyMediaMeta(filename)
	if b, err := h.Cache.Get(r.Context(), ckey); err == nil && len(b) > 0 {
		var meta existsMeta
		if err := json.Unmarshal(b, &meta); err == nil {
			logx.Info(h.Log, reqID, op, "cache hit", "file", filename)
			h.writeExists(w, r, meta)
			return
		}
	} else if err != nil {
		logx.Error(h.Log, reqID, op, "cache get failed", err, "file", filename)
	}

	rec, err := h.Media.Get(r.Context(), filename)
	if err != nil {
		logx.Info(h.Log, reqID, op, "absent", "file", filename)
		v1.WriteJSON(w, r, http.StatusNotFound, map[string]any{
			"success": false,
			"exists":  false,
			"error":   domain.ErrNotFound.Error(),
		})
		return
	}

	meta := existsMeta{Filename: rec.Filename, Size: rec.Size, Type: rec.Mimetype}
	if buf, err := json.Marshal(meta); err == nil {
		_ = h.Cache.Set(r.Context(), ckey, buf, h.MetaTTL)
	}
	logx.Info(h.Log, reqID, op, "present", "file", rec.Filename, "size", rec.Size)
	h.writeExists(w, r, meta)
}

func (h *Handler) writeExists(w http.ResponseWriter, r *http.Request, meta existsMeta) {
	v1.WriteJSON(w, r, http.StatusOK, map[string]any{
		"success":  true,
		"exists":   true,
		"filename": meta.Filename,
		"size":     meta.Size,
		"type":     meta.Type,
	})
}
