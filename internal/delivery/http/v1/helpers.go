package v1

import (
	"strconv"

	"go-cv-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// pathID parses the :id path parameter. A non-numeric id is a client error,
// reported before any usecase runs.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.Error(apperror.BadRequest("Invalid id parameter"))
		return 0, false
	}
	return id, true
}

// methodNotAllowed rejects verbs a resource does not support, e.g. updates
// on association resources.
func methodNotAllowed(resource string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Error(apperror.MethodNotAllowed(resource + " cannot be updated; delete and recreate the link instead"))
	}
}
