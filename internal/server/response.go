package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Response is the envelope of every API answer.
type Response struct {
	Code      int      `json:"code"`
	Message   string   `json:"message"`
	Data      any      `json:"data,omitempty"`
	Warnings  []string `json:"warnings,omitempty"`
	Timestamp string   `json:"timestamp"`
}

// ISOResult is the data of a mapx2iso answer.
type ISOResult struct {
	XML string `json:"xml"`
}

func success(c *gin.Context, data any, warnings []string) {
	c.JSON(http.StatusOK, Response{
		Code:      http.StatusOK,
		Message:   "success",
		Data:      data,
		Warnings:  warnings,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func fail(c *gin.Context, code int, message string, warnings []string) {
	c.JSON(code, Response{
		Code:      code,
		Message:   message,
		Warnings:  warnings,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
