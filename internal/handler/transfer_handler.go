package handler

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/promeet/roster-api/internal/dto"
	"github.com/promeet/roster-api/internal/service"
	appErrors "github.com/promeet/roster-api/pkg/errors"
	"github.com/promeet/roster-api/pkg/response"
)

// importSizeLimit caps uploaded spreadsheet files at 10 MiB.
const importSizeLimit = 10 << 20

type transferService interface {
	Export(ctx context.Context, format string) (*service.ExportResult, error)
	Import(ctx context.Context, data []byte) (*service.ImportResult, error)
	OpenDownload(token string) (*os.File, string, error)
}

// TransferHandler exposes spreadsheet import/export endpoints.
type TransferHandler struct {
	service transferService
}

// NewTransferHandler builds a new handler.
func NewTransferHandler(service transferService) *TransferHandler {
	return &TransferHandler{service: service}
}

// Export godoc
// @Summary Export the current roster to a file
// @Tags Transfer
// @Accept json
// @Produce json
// @Param payload body dto.ExportRequest true "Export format"
// @Success 201 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /meetings/current/exports [post]
func (h *TransferHandler) Export(c *gin.Context) {
	var req dto.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid export payload"))
		return
	}

	result, err := h.service.Export(c.Request.Context(), req.Format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Import godoc
// @Summary Import attendees from an uploaded spreadsheet
// @Tags Transfer
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Spreadsheet file"
// @Success 200 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /meetings/current/imports [post]
func (h *TransferHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "missing file upload"))
		return
	}
	if fileHeader.Size > importSizeLimit {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "uploaded file too large"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open upload"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, importSizeLimit))
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read upload"))
		return
	}

	result, err := h.service.Import(c.Request.Context(), data)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Download godoc
// @Summary Download a generated export by signed token
// @Tags Transfer
// @Produce octet-stream
// @Param token path string true "Signed download token"
// @Success 200 {file} file
// @Failure 401 {object} response.Envelope
// @Router /exports/downloads/{token} [get]
func (h *TransferHandler) Download(c *gin.Context) {
	file, filename, err := h.service.OpenDownload(c.Param("token"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stat export"))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.DataFromReader(http.StatusOK, info.Size(), "application/octet-stream", file, nil)
}
