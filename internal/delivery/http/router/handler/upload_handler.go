package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"mealkit/internal/delivery/http/response"
	"mealkit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	domainerrors "mealkit/internal/domain/errors"
)

// UploadHandler holds dependencies for image upload handlers.
type UploadHandler struct {
	uc     usecase.UploadUsecase
	logger *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(uc usecase.UploadUsecase, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{uc: uc, logger: logger}
}

// UploadImage stores one multipart image under the "file" form field.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errors.WithStack(domainerrors.ErrFileRequired)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	upload, err := h.uc.UploadImage(c.Request().Context(), userID, usecase.UploadFileInput{
		OriginalName: fileHeader.Filename,
		MimeType:     fileHeader.Header.Get("Content-Type"),
		Size:         fileHeader.Size,
		Content:      file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, upload, "上傳成功")
}

// List returns the authenticated user's upload records, newest first.
func (h *UploadHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	page, pageSize := pagination(c)

	output, err := h.uc.ListUploads(c.Request().Context(), userID, page, pageSize)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Paginated{
		Items:    output.Items,
		Total:    output.Total,
		Page:     output.Page,
		PageSize: output.PageSize,
	}, "")
}

// Delete removes one upload record and its stored file.
func (h *UploadHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	uploadID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid upload id")
	}

	if err := h.uc.DeleteUpload(c.Request().Context(), userID, uploadID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "檔案已刪除")
}
