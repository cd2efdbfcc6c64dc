package handler

import (
	"net/http"

	"github.com/MichaelOwusu007/vdlpro/internal/dto"
	"github.com/MichaelOwusu007/vdlpro/internal/service"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct{ svc service.InventoryService }

func NewInventoryHandler(svc service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

func (h *InventoryHandler) ListStock(c *gin.Context) {
	stock, err := h.svc.Stock(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stock)
}

func (h *InventoryHandler) CreateStockItem(c *gin.Context) {
	var req dto.CreateStockItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	item, err := h.svc.CreateStockItem(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	var req dto.AdjustStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	item, err := h.svc.AdjustStock(c.Request.Context(), c.Param("id"), req.Change)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) DeleteStockItem(c *gin.Context) {
	if err := h.svc.DeleteStockItem(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Transfer godoc
// @Summary Move quantity between warehouses
// @Tags inventory
// @Accept json
// @Produce json
// @Param body body dto.TransferRequest true "Transfer"
// @Success 201 {object} model.TransferRecord
// @Failure 400 {object} apierror.APIError
// @Router /api/inventory/transfers [post]
func (h *InventoryHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if !bindAndValidate(c, &req) {
		return
	}
	rec, err := h.svc.Transfer(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *InventoryHandler) ListTransfers(c *gin.Context) {
	transfers, err := h.svc.Transfers(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, transfers)
}

func (h *InventoryHandler) LowStock(c *gin.Context) {
	items, err := h.svc.LowStock(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *InventoryHandler) Replenish(c *gin.Context) {
	item, err := h.svc.Replenish(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) Value(c *gin.Context) {
	value, err := h.svc.Value(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, value)
}

func (h *InventoryHandler) Logs(c *gin.Context) {
	logs, err := h.svc.Logs(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// Capacity reports used/total/left for a warehouse. Warehouses with zero
// capacity report unlimited.
func (h *InventoryHandler) Capacity(c *gin.Context) {
	resp, err := h.svc.Capacity(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
