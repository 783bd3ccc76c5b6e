package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/theoremus-urban-solutions/journey-planner/planner"
)

// Error codes returned in the "error" field of failed responses.
const (
	codeBadRequest      = "bad_request"
	codeStationNotFound = "station_not_found"
	codeNoConnections   = "no_connections"
	codeReloadFailed    = "reload_failed"
	codeInternal        = "internal_error"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Station string `json:"station,omitempty"`
}

// statusFor maps a planner error to its HTTP status and error code.
func statusFor(err error) (int, errorResponse) {
	var nf *planner.StationNotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound, errorResponse{Error: codeStationNotFound, Message: err.Error(), Station: nf.Code}
	}
	var nc *planner.NoConnectionsError
	if errors.As(err, &nc) {
		return http.StatusUnprocessableEntity, errorResponse{Error: codeNoConnections, Message: err.Error(), Station: nc.Code}
	}
	return http.StatusInternalServerError, errorResponse{Error: codeInternal, Message: err.Error()}
}

func abortWithError(c *gin.Context, err error) {
	status, body := statusFor(err)
	if status == http.StatusInternalServerError {
		// keep collaborator details out of responses
		body.Message = http.StatusText(status)
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, body)
}
