package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ohitslormee/baby-ess-tracker/internal/lookup"
)

type LookupHTTPHandler struct {
	client *lookup.Client
}

func NewLookupHTTPHandler(client *lookup.Client) *LookupHTTPHandler {
	return &LookupHTTPHandler{client: client}
}

// LookupProduct never fails: upstream trouble comes back as found=false.
func (h *LookupHTTPHandler) LookupProduct(c *gin.Context) {
	barcode := c.Param("barcode")
	if barcode == "" {
		fail(c, http.StatusBadRequest, "Barcode is required")
		return
	}

	result := h.client.Lookup(c.Request.Context(), barcode)
	c.JSON(http.StatusOK, result)
}
