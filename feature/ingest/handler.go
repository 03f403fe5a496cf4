package ingest

import (
	"errors"
	"io"
	"mime/multipart"

	"catalog-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the ingest relays.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the ingest routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api")
	group.Post("/voice-to-text", h.HandleVoiceToText)
	group.Post("/send-to-fastapi", h.HandleSendToProcessing)
	group.Post("/send-to-fastapi-ocr", h.HandleSendToOCR)
	group.Get("/fetch-and-store", h.HandleFetchAndStore)
}

// HandleVoiceToText relays an uploaded audio file to the transcription API.
// @Summary Transcribe Audio
// @Description Upload an audio file and receive its transcription.
// @Tags ingest
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Audio file"
// @Success 200 {object} map[string]interface{} "Transcription"
// @Failure 400 {object} map[string]string "No File"
// @Failure 500 {object} map[string]string "Upstream Error"
// @Router /api/voice-to-text [post]
func (h *Handler) HandleVoiceToText(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	header, err := c.FormFile("audio")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "no audio file uploaded", nil)
	}

	data, contentType, err := readUpload(header)
	if err != nil {
		l.Error("Failed to read audio upload", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "failed to read upload", err)
	}

	text, err := h.service.Transcribe(c.Context(), header.Filename, contentType, data)
	if err != nil {
		l.Error("Transcription failed", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "transcription failed", err)
	}

	return c.JSON(fiber.Map{
		"success":       true,
		"transcription": text,
	})
}

// HandleSendToProcessing relays the request to the processing API. A
// multipart upload with a "file" field relays the file; any other body is
// relayed verbatim as JSON.
// @Summary Relay to Processing API
// @Description Relay a JSON payload or uploaded file to the processing API and store returned products.
// @Tags ingest
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Relay Result"
// @Failure 500 {object} map[string]string "Upstream Error"
// @Router /api/send-to-fastapi [post]
func (h *Handler) HandleSendToProcessing(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var result *RelayResult
	if header, err := c.FormFile("file"); err == nil {
		data, contentType, err := readUpload(header)
		if err != nil {
			l.Error("Failed to read upload", zap.Error(err))
			return respondError(c, fiber.StatusInternalServerError, "failed to read upload", err)
		}
		result, err = h.service.RelayFile(c.Context(), header.Filename, contentType, data)
		if err != nil {
			l.Error("Processing relay failed", zap.Error(err))
			return respondError(c, fiber.StatusInternalServerError, "processing relay failed", err)
		}
	} else {
		var relayErr error
		result, relayErr = h.service.RelayJSON(c.Context(), c.Body())
		if relayErr != nil {
			l.Error("Processing relay failed", zap.Error(relayErr))
			return respondError(c, fiber.StatusInternalServerError, "processing relay failed", relayErr)
		}
	}

	return c.JSON(relayBody(result))
}

// HandleSendToOCR relays an uploaded document to the OCR endpoint.
// @Summary Relay Document to OCR
// @Description Upload a document, run upstream OCR, and store extracted products.
// @Tags ingest
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document"
// @Success 200 {object} map[string]interface{} "Extracted Products"
// @Failure 400 {object} map[string]string "No File / Empty Result"
// @Failure 500 {object} map[string]string "Upstream Error"
// @Router /api/send-to-fastapi-ocr [post]
func (h *Handler) HandleSendToOCR(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	header, err := c.FormFile("file")
	if err != nil {
		return respondError(c, fiber.StatusBadRequest, "no file uploaded", nil)
	}

	data, contentType, err := readUpload(header)
	if err != nil {
		l.Error("Failed to read upload", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "failed to read upload", err)
	}

	result, err := h.service.RelayOCR(c.Context(), header.Filename, contentType, data)
	if err != nil {
		if errors.Is(err, ErrEmptyResult) {
			return respondError(c, fiber.StatusBadRequest, "no products extracted from document", nil)
		}
		l.Error("OCR relay failed", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "ocr relay failed", err)
	}

	return c.JSON(relayBody(result))
}

// HandleFetchAndStore pulls the processing API's product feed into the
// catalog.
// @Summary Fetch and Store Products
// @Description Fetch the product feed from the processing API and reconcile each bundle.
// @Tags ingest
// @Produce json
// @Success 200 {object} map[string]interface{} "Stored Products"
// @Failure 500 {object} map[string]string "Upstream Error"
// @Router /api/fetch-and-store [get]
func (h *Handler) HandleFetchAndStore(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	result, err := h.service.FetchAndStore(c.Context())
	if err != nil {
		l.Error("Fetch and store failed", zap.Error(err))
		return respondError(c, fiber.StatusInternalServerError, "fetch and store failed", err)
	}

	return c.JSON(relayBody(result))
}

// relayBody shapes the relay outcome for the client. Bundle batches report
// products and per-element errors; plain relays echo the upstream response.
func relayBody(result *RelayResult) fiber.Map {
	message := result.Message
	if message == "" {
		message = "processed"
	}

	body := fiber.Map{
		"success": true,
		"message": message,
	}
	if result.Products != nil {
		body["products"] = result.Products
		if len(result.Errors) > 0 {
			body["errors"] = result.Errors
		}
		return body
	}
	body["response"] = result.Raw
	return body
}

func readUpload(header *multipart.FileHeader) ([]byte, string, error) {
	file, err := header.Open()
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return data, contentType, nil
}

func respondError(c *fiber.Ctx, status int, message string, err error) error {
	body := fiber.Map{"error": message}
	if err != nil {
		body["details"] = err.Error()
	}
	return c.Status(status).JSON(body)
}
