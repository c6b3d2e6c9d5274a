package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ohitslormee/baby-ess-tracker/internal/inventory"
)

type InventoryHTTPHandler struct {
	svc *inventory.Service
}

func NewInventoryHTTPHandler(svc *inventory.Service) *InventoryHTTPHandler {
	return &InventoryHTTPHandler{svc: svc}
}

func (h *InventoryHTTPHandler) CreateItem(c *gin.Context) {
	var in inventory.CreateItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	created(c, item)
}

func (h *InventoryHTTPHandler) ListItems(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, items)
}

func (h *InventoryHTTPHandler) GetItem(c *gin.Context) {
	item, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, item)
}

func (h *InventoryHTTPHandler) GetItemByBarcode(c *gin.Context) {
	item, err := h.svc.GetByBarcode(c.Request.Context(), c.Param("barcode"))
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, item)
}

func (h *InventoryHTTPHandler) UpdateItem(c *gin.Context) {
	var patch inventory.ItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, item)
}

func (h *InventoryHTTPHandler) ListLowStock(c *gin.Context) {
	items, err := h.svc.ListLowStock(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, items)
}

type addStockRequest struct {
	Quantity int `json:"quantity"`
}

func (h *InventoryHTTPHandler) AddStock(c *gin.Context) {
	var req addStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.svc.AddStock(c.Request.Context(), c.Param("id"), req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, item)
}

type useItemRequest struct {
	QuantityUsed int     `json:"quantity_used"`
	Notes        *string `json:"notes"`
}

func (h *InventoryHTTPHandler) UseItem(c *gin.Context) {
	var req useItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	entry, err := h.svc.UseItem(c.Request.Context(), c.Param("id"), req.QuantityUsed, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, entry)
}

func (h *InventoryHTTPHandler) ListUsageLogs(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			fail(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	logs, err := h.svc.ListUsageLogs(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, logs)
}

func (h *InventoryHTTPHandler) DashboardStats(c *gin.Context) {
	stats, err := h.svc.DashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, stats)
}
