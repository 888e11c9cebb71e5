package api

import (
	"net/http"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/gin-gonic/gin"
)

var kindStatus = map[domain.ErrorKind]int{
	domain.KindInvalidRequest: http.StatusBadRequest,
	domain.KindNotFound:       http.StatusNotFound,
	domain.KindConflict:       http.StatusConflict,
	domain.KindInternal:       http.StatusInternalServerError,
}

// writeError maps the domain error taxonomy onto HTTP statuses and renders a
// stable {kind, error} body.
func writeError(c *gin.Context, err error) {
	kind := domain.KindOf(err)
	status, ok := kindStatus[kind]
	if !ok {
		status = http.StatusInternalServerError
	}
	c.JSON(status, gin.H{"kind": string(kind), "error": err.Error()})
}
