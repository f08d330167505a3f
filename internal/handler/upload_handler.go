package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "cesizen/internal/errors"
	"cesizen/internal/upload"
)

// UploadHandler stores article images.
type UploadHandler struct {
	storage *upload.Storage
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(storage *upload.Storage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// Upload godoc
// @Summary Upload an image
// @Description Accepts one jpg/jpeg/png file up to 5MB in the "file" form field.
// @Tags upload
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 201 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /upload [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "no file was sent",
			Code:  "FILE_MISSING",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "could not read uploaded file",
			Code:  "FILE_UNREADABLE",
		})
	}
	defer src.Close()

	filename, err := h.storage.Save(fileHeader.Filename, fileHeader.Size, src)
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrFileTooLarge):
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
				Error: err.Error(),
				Code:  "FILE_TOO_LARGE",
			})
		case errors.Is(err, upload.ErrInvalidFileType):
			return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
				Error: err.Error(),
				Code:  "INVALID_FILE_TYPE",
			})
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, apperrors.ErrorResponse{
				Error: "failed to store file",
				Code:  "UPLOAD_FAILED",
			})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{"filename": filename})
}
