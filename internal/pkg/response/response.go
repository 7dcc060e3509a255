package response

import "github.com/gin-gonic/gin"

// OK writes a plain JSON payload. The card API keeps responses flat
// (no envelope) so shared links and upload results stay trivially parseable.
func OK(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Error writes the single-field error body used across the API:
// {"error": "<message>"}.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}
