package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ohitslormee/baby-ess-tracker/internal/domain"
)

func success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

func created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    data,
	})
}

func fail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"success": false,
		"error":   message,
	})
}

// respondError maps domain errors to status codes. Anything outside the
// taxonomy is logged and reported as a generic server error so internals
// never leak into responses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		fail(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrDuplicateBarcode):
		fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInsufficientStock):
		fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidQuantity), errors.Is(err, domain.ErrInvalidInput):
		fail(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		fail(c, http.StatusInternalServerError, "internal server error")
	}
}
