package mask

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"photo-masker/internal/domain"
	"photo-masker/internal/http-server/handler/mask/dto"
	mask_uc "photo-masker/internal/usecase/mask"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/zlog"
)

const (
	maxMemory = 32 << 20

	// Slack on top of the image cap for multipart framing and headers;
	// the real per-file limit is checked against the part itself.
	multipartOverhead = 1 << 20

	maxURLBodySize = 1 << 20
)

type MaskHandler struct {
	usecase  maskUsecase
	validate *validator.Validate
	logger   *zlog.Zerolog
	maxSize  int64
}

func NewMaskHandler(usecase maskUsecase, logger *zlog.Zerolog, maxSize int64) *MaskHandler {
	return &MaskHandler{
		usecase:  usecase,
		validate: validator.New(),
		logger:   logger,
		maxSize:  maxSize,
	}
}

func (h *MaskHandler) MaskByURL(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req dto.MaskByURLRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxURLBodySize)).Decode(&req); err != nil {
		h.logger.Warn().Err(err).Msg("Failed to decode request body")
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.logger.Warn().Err(err).Str("url", req.URL).Msg("URL validation failed")
		h.respondError(w, http.StatusBadRequest, "A valid url field is required")
		return
	}

	result, err := h.usecase.MaskByURL(ctx, req.URL)
	if err != nil {
		h.handleMaskError(w, err)
		return
	}

	h.respondResult(w, result)
}

func (h *MaskHandler) MaskByUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize+multipartOverhead)

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("Image exceeds maximum size of %dMB", h.maxSize/(1024*1024)))
			return
		}
		h.logger.Warn().Err(err).Msg("Failed to parse multipart form")
		h.respondError(w, http.StatusBadRequest, "Invalid request format")
		return
	}

	file, handler, err := r.FormFile("file")
	if err != nil {
		h.logger.Warn().Err(err).Msg("File not found in request")
		h.respondError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	contentType := handler.Header.Get("Content-Type")
	if !domain.AllowedContentType(contentType) {
		h.logger.Warn().Str("content_type", contentType).Str("filename", handler.Filename).Msg("Unsupported file type")
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("Unsupported file type: %s", contentType))
		return
	}

	if handler.Size > h.maxSize {
		h.respondError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("Image exceeds maximum size of %dMB", h.maxSize/(1024*1024)))
		return
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error().Err(err).Str("filename", handler.Filename).Msg("Failed to read file")
		h.respondError(w, http.StatusInternalServerError, "Failed to read file")
		return
	}

	result, err := h.usecase.MaskBytes(ctx, fileBytes)
	if err != nil {
		h.handleMaskError(w, err)
		return
	}

	h.respondResult(w, result)
}

func (h *MaskHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, dto.HealthResponse{Status: "healthy"})
}

func (h *MaskHandler) Info(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, dto.InfoResponse{
		Service: "Photo Masking API",
		Version: "1.0.0",
		Endpoints: map[string]string{
			"mask_by_url":    "POST /mask-by-url",
			"mask_by_upload": "POST /mask-by-upload",
		},
	})
}

func (h *MaskHandler) respondResult(w http.ResponseWriter, result *domain.CompositeResult) {
	h.respondJSON(w, http.StatusOK, dto.MaskResponse{
		Success:     true,
		MaskUsed:    result.MaskUsed,
		ImageData:   result.ImageData,
		ContentType: result.ContentType,
	})
}

func (h *MaskHandler) handleMaskError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, mask_uc.ErrPayloadTooLarge):
		h.logger.Warn().Err(err).Msg("Image too large")
		h.respondError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("Image exceeds maximum size of %dMB", h.maxSize/(1024*1024)))
	case errors.Is(err, mask_uc.ErrUnsupportedFormat):
		h.logger.Warn().Err(err).Msg("Cannot decode image")
		h.respondError(w, http.StatusBadRequest, "Cannot open image")
	case errors.Is(err, mask_uc.ErrFetchFailed):
		h.logger.Warn().Err(err).Msg("Fetch failed")
		h.respondError(w, http.StatusBadRequest, "Failed to fetch image from URL")
	default:
		h.logger.Error().Err(err).Msg("Masking failed")
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *MaskHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error().Err(err).Msg("Failed to encode response")
	}
}

func (h *MaskHandler) respondError(w http.ResponseWriter, status int, detail string) {
	h.respondJSON(w, status, dto.ErrorResponse{Detail: detail})
}
