package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/priyanshudas00/zippgo/internal/apperrors"
)

// respondErr renders the {error, code} failure body. Store errors are
// logged server-side and surfaced as a generic 500.
func respondErr(c *gin.Context, err error) {
	ae := apperrors.From(err)
	if ae.Status >= http.StatusInternalServerError {
		log.Printf("[api] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(ae.Status, gin.H{"error": ae.Message, "code": ae.Code})
}

func queryID(c *gin.Context, name string) (uint, error) {
	raw := c.Query(name)
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperrors.Validation("%s must be numeric", name)
	}
	return uint(n), nil
}

func paramID(c *gin.Context) (uint, error) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperrors.Validation("id must be numeric")
	}
	return uint(n), nil
}

func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.Query("limit"))
	offset, _ = strconv.Atoi(c.Query("offset"))
	return limit, offset
}
