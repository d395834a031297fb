package response

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// OK sends 200 with data as the JSON body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// NoContent sends an empty 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error aborts the request with a problem body.
func Error(c *gin.Context, status int, detail string) {
	c.Header("Content-Type", ContentTypeProblem)
	c.AbortWithStatusJSON(status, Problem{
		Type:     problemTypeBlank,
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: c.Request.URL.Path,
		TraceID:  c.GetHeader("X-Request-Id"),
	})
}

// BadRequest sends 400 with the error text as detail.
func BadRequest(c *gin.Context, err error) {
	Error(c, http.StatusBadRequest, err.Error())
}

// Unauthorized sends 401.
func Unauthorized(c *gin.Context) {
	c.Header("WWW-Authenticate", `Bearer error="invalid_token"`)
	Error(c, http.StatusUnauthorized, "Invalid or expired authentication token")
}

// NotFound sends 404.
func NotFound(c *gin.Context, detail string) {
	Error(c, http.StatusNotFound, detail)
}

// Conflict sends 409.
func Conflict(c *gin.Context, detail string) {
	Error(c, http.StatusConflict, detail)
}

// TooManyRequests sends 429 with a Retry-After hint.
func TooManyRequests(c *gin.Context, retryAfter time.Duration) {
	secs := int(retryAfter.Round(time.Second).Seconds())
	if secs < 1 {
		secs = 1
	}
	c.Header("Retry-After", strconv.Itoa(secs))
	Error(c, http.StatusTooManyRequests, "Rate limit exceeded")
}

// InternalError sends 500. The error text is not exposed.
func InternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	Error(c, http.StatusInternalServerError, "")
}
