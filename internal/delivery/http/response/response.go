// Package response writes the API's wire shapes: {message, id} on
// creation, {message} on other successful writes, and {error} for
// failures. Reads return entities as-is.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Created confirms a write that produced a new resource.
func Created(c *gin.Context, message, id string) {
	c.JSON(http.StatusCreated, gin.H{"message": message, "id": id})
}

// Message confirms an update or delete.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Err sends a single-string error body.
func Err(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}
