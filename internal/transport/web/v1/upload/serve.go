package upload

import (
	"net/http"
	"strconv"

	"github.com/setiawanwcksn/weddingorg-sub000/internal/domain"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/logx"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/mw"
	v1 "github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/v1"
)

// Serve godoc
// @Summary     Serve stored media (Range-aware)
// @Description Отдаёт тело целиком (200) или срез по Range (206/416)
// @Tags        upload
// @Produce     octet-stream
// @Param       filename path   string true  "имя файла (допустимо без расширения)"
// @Param       Range    header string false "bytes=A-B"
// @Success     200 {file} []byte
// @Success     206 {file} []byte
// @Failure     404 {object} v1.Envelope
// @Failure     416 {object} nil
// @Router      /upload/{filename} [get]
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	const op = "upload.serve"
	reqID := mw.RequestIDFromCtx(r.Context())
	filename := r.PathValue("filename")

	rec, err := h.Media.Get(r.Context(), filename)
	if err != nil {
		logx.Error(h.Log, reqID, op, "get failed", err, "file", filename)
		v1.WriteDomainError(w, r, err)
		return
	}

	w.Header().Set("Accept-Ranges", "bytes")

	br, err := domain.ResolveRange(r.Header.Get("Range"), rec.Size)
	if err != nil {
		// запрошенный диапазон вне записи
		w.Header().Set("Content-Range", domain.UnsatisfiableRange(rec.Size))
		w.WriteHeader(http.StatusRequestedRangeNotSatisfiable)
		logx.Info(h.Log, reqID, op, "range not satisfiable", "file", rec.Filename, "range", r.Header.Get("Range"))
		return
	}

	w.Header().Set("Content-Type", rec.Mimetype)

	if br == nil {
		// полное тело; кэшировать надолго безопасно лишь потому, что имя
		// стабильно для (owner, field) — повторная загрузка меняет контент
		// под тем же именем, это осознанный трейд-офф
		w.Header().Set("Content-Length", strconv.FormatInt(rec.Size, 10))
		w.Header().Set("Cache-Control", "public, max-age=31536000")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(rec.Data)
		logx.Info(h.Log, reqID, op, "full body", "file", rec.Filename, "len", rec.Size)
		return
	}

	slice := rec.Data[br.Start : br.End+1]
	w.Header().Set("Content-Length", strconv.FormatInt(br.Len(), 10))
	w.Header().Set("Content-Range", br.ContentRange(rec.Size))
	w.WriteHeader(http.StatusPartialContent)
	_, _ = w.Write(slice)
	logx.Info(h.Log, reqID, op, "partial content", "file", rec.Filename, "range", br.ContentRange(rec.Size))
}
