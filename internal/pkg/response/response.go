package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes a success body. Callers pass the domain payload key themselves
// ("user", "booking", "services", ...), so the wire shape stays flat.
func JSON(c *gin.Context, statusCode int, payload gin.H) {
	c.JSON(statusCode, payload)
}

// Error writes {"message": ...} with the given status.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"message": message})
}

// ValidationErrors writes a field-keyed error map with 422.
func ValidationErrors(c *gin.Context, errs map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
}
