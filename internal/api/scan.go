package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ariven/dermalens-v2/backend/internal/service"
	"github.com/ariven/dermalens-v2/backend/internal/types"
)

const maxImageBytes = 10 << 20

// ScanHandler exposes label analysis, scan history and the routine audit.
type ScanHandler struct {
	scans  service.IScanService
	images service.IImageService
}

func NewScanHandler(scans service.IScanService, images service.IImageService) *ScanHandler {
	return &ScanHandler{scans: scans, images: images}
}

// RegisterRoutes wires all scan and routine endpoints on the
// authenticated group. rateLimit guards scan creation and may be nil.
func (h *ScanHandler) RegisterRoutes(router *gin.RouterGroup, rateLimit gin.HandlerFunc) {
	scans := router.Group("/scans")
	{
		if rateLimit != nil {
			scans.POST("", rateLimit, h.CreateScan)
		} else {
			scans.POST("", h.CreateScan)
		}
		scans.GET("", h.ListScans)
		scans.GET("/:id", h.GetScan)
		scans.POST("/image", h.UploadImage)
	}

	routine := router.Group("/routine")
	{
		routine.GET("", h.ListRoutineItems)
		routine.POST("", h.AddRoutineItem)
		routine.POST("/audit", h.AuditRoutine)
	}
}

func (h *ScanHandler) CreateScan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.scans.CreateScan(c.Request.Context(), userID, &req)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to analyze ingredients"})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ScanHandler) GetScan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	scanID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid scan id"})
		return
	}

	resp, err := h.scans.GetScan(c.Request.Context(), userID, scanID)
	if err != nil {
		if errors.Is(err, service.ErrScanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "scan not found"})
			return
		}
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load scan"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ScanHandler) ListScans(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	reports, err := h.scans.ListScans(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list scans"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"scans": reports})
}

// UploadImage stores a label photo and returns its URL so the client can
// attach it to a subsequent scan.
func (h *ScanHandler) UploadImage(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > maxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image too large"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType != "image/png" && contentType != "image/jpeg" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported image type"})
		return
	}

	url, err := h.images.UploadImage(c.Request.Context(), data, contentType)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"image_url": url})
}

func (h *ScanHandler) AddRoutineItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.AddRoutineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.scans.AddRoutineItem(c.Request.Context(), userID, &req)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add routine item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ScanHandler) ListRoutineItems(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	items, err := h.scans.ListRoutineItems(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list routine"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"routine": items})
}

func (h *ScanHandler) AuditRoutine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.RoutineAuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.scans.AuditRoutine(c.Request.Context(), userID, req.IngredientText)
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to audit routine"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
