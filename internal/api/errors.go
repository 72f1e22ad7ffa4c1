package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fruitstand/backend/internal/model"
)

var statusByCode = map[model.ErrorCode]int{
	model.ErrCodeValidation:   http.StatusBadRequest,
	model.ErrCodeAuthRequired: http.StatusUnauthorized,
	model.ErrCodeForbidden:    http.StatusForbidden,
	model.ErrCodeNotFound:     http.StatusNotFound,
	model.ErrCodeStorage:      http.StatusInternalServerError,
}

// respondError maps a domain error onto its HTTP status and a JSON
// payload carrying the code, so clients can tell a retryable storage
// failure apart from a rejected request.
func respondError(c *gin.Context, err error) {
	code := model.CodeOf(err)
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
		code = model.ErrCodeStorage
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": code})
}
