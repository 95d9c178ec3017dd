package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccessResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := SuccessResponse(c, http.StatusOK, "done", map[string]string{"id": "123"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "done", response.Message)
}

func TestErrorResponseHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := ConflictResponse(c, "join request already exists")
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var response ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.False(t, response.Success)
	assert.Equal(t, "join request already exists", response.Error)
	assert.Equal(t, http.StatusConflict, response.Code)
}

func TestParseJSONResponse(t *testing.T) {
	tests := []struct {
		name        string
		respBody    []byte
		expectError bool
	}{
		{
			name:        "valid response with data",
			respBody:    []byte(`{"success": true, "message": "ok", "data": {"id": "123"}}`),
			expectError: false,
		},
		{
			name:        "error response",
			respBody:    []byte(`{"success": false, "error": "something went wrong"}`),
			expectError: true,
		},
		{
			name:        "invalid json",
			respBody:    []byte(`{invalid json}`),
			expectError: true,
		},
		{
			name:        "nil data",
			respBody:    []byte(`{"success": true, "data": null}`),
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var target map[string]interface{}
			err := ParseJSONResponse(tt.respBody, &target)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
