package graph

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/felixgeelhaar/sharepoint-go/domain/drive"
)

// graphError is the error envelope returned by the Graph API.
type graphError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// mapError translates a Graph error response onto the domain sentinels.
// The error code is authoritative when present; the status code is the
// fallback.
func mapError(status int, body []byte) error {
	var ge graphError
	if err := json.Unmarshal(body, &ge); err == nil && ge.Error.Code != "" {
		switch ge.Error.Code {
		case "unauthenticated", "accessDenied":
			return fmt.Errorf("%w: %s", drive.ErrAuthRequired, ge.Error.Message)
		case "itemNotFound":
			return fmt.Errorf("%w: %s", drive.ErrNotFound, ge.Error.Message)
		case "nameAlreadyExists":
			return fmt.Errorf("%w: %s", drive.ErrConflict, ge.Error.Message)
		case "quotaLimitReached":
			return fmt.Errorf("%w: %s", drive.ErrQuotaExceeded, ge.Error.Message)
		case "activityLimitReached", "serviceNotAvailable":
			return fmt.Errorf("%w: %s", drive.ErrRetryLater, ge.Error.Message)
		case "invalidRange", "invalidRequest", "malwareDetected",
			"notAllowed", "notSupported", "resourceModified",
			"resyncRequired", "generalException":
			return fmt.Errorf("%w: %s", drive.ErrInvalidRequest, ge.Error.Message)
		default:
			return fmt.Errorf("graph error %s: %s", ge.Error.Code, ge.Error.Message)
		}
	}

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: HTTP %d", drive.ErrAuthRequired, status)
	case http.StatusNotFound, http.StatusGone:
		return fmt.Errorf("%w: HTTP %d", drive.ErrNotFound, status)
	case http.StatusConflict:
		return fmt.Errorf("%w: HTTP %d", drive.ErrConflict, status)
	case http.StatusInsufficientStorage:
		return fmt.Errorf("%w: HTTP %d", drive.ErrQuotaExceeded, status)
	case http.StatusTooManyRequests, http.StatusInternalServerError,
		http.StatusNotImplemented, http.StatusServiceUnavailable:
		return fmt.Errorf("%w: HTTP %d", drive.ErrRetryLater, status)
	default:
		return fmt.Errorf("%w: HTTP %d", drive.ErrInvalidRequest, status)
	}
}
