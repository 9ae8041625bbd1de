package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"chauffeur-admin/internal/domain"
	"chauffeur-admin/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// ReadJSONOrError reads the raw body and checks it is a JSON object.
func ReadJSONOrError(c *gin.Context) ([]byte, bool) {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return nil, false
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "failed to read body", err)
		return nil, false
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return nil, false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return nil, false
	}
	return raw, true
}

// BindCriteria reads the list filters from the query string. "q" is accepted
// as an alias of "search".
func BindCriteria(c *gin.Context) (domain.Criteria, bool) {
	var crit domain.Criteria
	if err := c.ShouldBindQuery(&crit); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid query", err)
		return crit, false
	}
	if strings.TrimSpace(crit.Search) == "" {
		crit.Search = c.Query("q")
	}
	return crit.Normalize(), true
}

// MutationResponse is the body of a successful update or delete.
type MutationResponse struct {
	Message string `json:"message"`
	Found   bool   `json:"found"`
	Data    any    `json:"data"`
}
