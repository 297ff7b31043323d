package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrResp is the error envelope every endpoint uses. Success bodies are
// endpoint-specific payloads written with OK.
type ErrResp struct {
	Error string `json:"error"`
}

// OK sends 200 JSON with the given payload.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// BadRequest sends 400 with the error's message.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrResp{Error: err.Error()})
}

// Unauthorized sends 401.
func Unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, ErrResp{Error: msg})
}

// NotFound sends 404 with the given message.
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, ErrResp{Error: msg})
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrResp{Error: "Rate limit exceeded"})
}

// BadGateway sends 502 for upstream (vendor API or Google) failures.
func BadGateway(c *gin.Context, err error) {
	c.JSON(http.StatusBadGateway, ErrResp{Error: err.Error()})
}

// InternalError sends 500 without leaking the underlying error.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrResp{Error: "Internal server error"})
}
