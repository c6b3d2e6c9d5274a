package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ohitslormee/baby-ess-tracker/internal/children"
)

type ChildHTTPHandler struct {
	svc *children.Service
}

func NewChildHTTPHandler(svc *children.Service) *ChildHTTPHandler {
	return &ChildHTTPHandler{svc: svc}
}

func (h *ChildHTTPHandler) CreateChild(c *gin.Context) {
	var in children.CreateChildInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	child, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	created(c, child)
}

func (h *ChildHTTPHandler) ListChildren(c *gin.Context) {
	records, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, records)
}

func (h *ChildHTTPHandler) GetChild(c *gin.Context) {
	child, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, child)
}

func (h *ChildHTTPHandler) UpdateChild(c *gin.Context) {
	var patch children.ChildPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	child, err := h.svc.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err)
		return
	}
	success(c, child)
}

func (h *ChildHTTPHandler) DeleteChild(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	success(c, gin.H{"message": "Child deleted successfully"})
}
