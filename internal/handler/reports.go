package handler

import (
	"net/http"

	"sobanhang/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

func (h *ReportsHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Summary(c.Request.Context()))
}
