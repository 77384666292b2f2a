// Package httperr carries the error body every API endpoint returns:
// a stable machine-readable code plus a human-readable message.
package httperr

import "github.com/gin-gonic/gin"

// Response is the JSON error body.
type Response struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSON writes an error response without aborting the chain.
func JSON(c *gin.Context, status int, code, message string) {
	c.JSON(status, Response{Code: code, Message: message})
}

// Abort writes an error response and stops the handler chain.
func Abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, Response{Code: code, Message: message})
}
