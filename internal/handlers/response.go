package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/veraroam/ambassador-backend/internal/apierr"
)

// Fail maps any service error onto the HTTP taxonomy. Unknown errors
// surface as 500 internal_error.
func Fail(c *gin.Context, err error) {
	ae := apierr.From(err)
	c.JSON(ae.Status, gin.H{"error": ae.Error(), "code": ae.Code})
}
