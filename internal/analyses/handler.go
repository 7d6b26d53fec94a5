package analyses

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-assistant/internal/shared/metrics"
	"resume-assistant/internal/shared/server/respond"
	"resume-assistant/internal/shared/storage/object"
	"resume-assistant/internal/shared/telemetry"
)

const (
	formField = "file"

	msgNoFile        = "No file uploaded"
	msgEmptyFilename = "Empty filename"
	msgTooLarge      = "File too large"
	msgSaveFailed    = "Failed to save upload"
)

// Handler wires the upload endpoint to the analyses service.
type Handler struct {
	Svc            *Service
	Store          object.ObjectStore
	MaxUploadBytes int64
	Metrics        *metrics.Metrics
}

// NewHandler constructs a Handler. maxUploadBytes <= 0 disables the body limit.
func NewHandler(svc *Service, store object.ObjectStore, maxUploadBytes int64, m *metrics.Metrics) *Handler {
	return &Handler{Svc: svc, Store: store, MaxUploadBytes: maxUploadBytes, Metrics: m}
}

// RegisterRoutes attaches the analysis route.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/analyze", h.analyze)
}

func (h *Handler) analyze(c *gin.Context) {
	if h.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)
	}

	fileHeader, err := c.FormFile(formField)
	if err != nil {
		switch {
		case isTooLarge(err):
			respond.Error(c, http.StatusRequestEntityTooLarge, msgTooLarge)
		case hasEmptyFilePart(c):
			respond.Error(c, http.StatusBadRequest, msgEmptyFilename)
		default:
			respond.Error(c, http.StatusBadRequest, msgNoFile)
		}
		return
	}
	if strings.TrimSpace(fileHeader.Filename) == "" {
		respond.Error(c, http.StatusBadRequest, msgEmptyFilename)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		telemetry.Error("analysis.upload.open_failed", map[string]any{
			"err":        err,
			"file_name":  fileHeader.Filename,
			"request_id": c.GetString("requestId"),
		})
		respond.Error(c, http.StatusInternalServerError, msgSaveFailed)
		return
	}
	defer file.Close()

	ctx := c.Request.Context()
	key, size, mimeType, err := h.Store.Save(ctx, fileHeader.Filename, file)
	if err != nil {
		telemetry.Error("analysis.upload.save_failed", map[string]any{
			"err":        err,
			"file_name":  fileHeader.Filename,
			"request_id": c.GetString("requestId"),
		})
		respond.Error(c, http.StatusInternalServerError, msgSaveFailed)
		return
	}
	h.Metrics.AddUploadBytes(size)

	if declared := fileHeader.Header.Get("Content-Type"); mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = declared
	}

	res := h.Svc.AnalyzeStored(ctx, h.Store, key, mimeType, fileHeader.Filename)
	respond.OK(c, res)
}

// hasEmptyFilePart reports whether the form carried a file field without a
// filename; the multipart reader files such parts as plain values.
func hasEmptyFilePart(c *gin.Context) bool {
	form := c.Request.MultipartForm
	if form == nil {
		return false
	}
	_, ok := form.Value[formField]
	return ok
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}
