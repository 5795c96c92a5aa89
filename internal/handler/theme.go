package handler

import (
	"net/http"

	"sobanhang/internal/dto"
	"sobanhang/internal/model"
	"sobanhang/internal/service"

	"github.com/gin-gonic/gin"
)

type ThemeHandler struct{ svc service.ThemeService }

func NewThemeHandler(svc service.ThemeService) *ThemeHandler {
	return &ThemeHandler{svc: svc}
}

func (h *ThemeHandler) Get(c *gin.Context) {
	t, err := h.svc.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ThemeResponse{Theme: string(t)})
}

func (h *ThemeHandler) Set(c *gin.Context) {
	var req dto.ThemeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Set(c.Request.Context(), model.Theme(req.Theme)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ThemeResponse{Theme: req.Theme})
}

func (h *ThemeHandler) Toggle(c *gin.Context) {
	t, err := h.svc.Toggle(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ThemeResponse{Theme: string(t)})
}
