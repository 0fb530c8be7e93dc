package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-optimizer/internal/pipeline"
)

// HTTPStatus returns the appropriate HTTP status code for a pipeline error.
func HTTPStatus(err error) int {
	var inputErr *pipeline.InputFormatError
	if errors.As(err, &inputErr) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
