package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	pkgErrors "voice-task-management/pkg/errors"
)

func TestStatusCode(t *testing.T) {
	sentinel := stderrors.New("boom")

	assert.Equal(t, http.StatusNotFound, pkgErrors.StatusCode(pkgErrors.NewHTTPError(http.StatusNotFound, "missing")))
	assert.Equal(t, http.StatusBadGateway, pkgErrors.StatusCode(fmt.Errorf("wrapped: %w", pkgErrors.WrapHTTPError(http.StatusBadGateway, sentinel))))
	assert.Equal(t, http.StatusBadRequest, pkgErrors.StatusCode(sentinel))
}

func TestWrapHTTPErrorKeepsChain(t *testing.T) {
	sentinel := stderrors.New("boom")
	err := pkgErrors.WrapHTTPError(http.StatusUnprocessableEntity, sentinel)

	assert.True(t, stderrors.Is(err, sentinel))
	assert.Equal(t, "boom", err.Error())
	assert.Equal(t, "http error 418", (&pkgErrors.HTTPError{Code: 418}).Error())
}
