// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

func TestResponseWriter_WriteHeader_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		statusCodes    []int // successive WriteHeader calls
		expectedStatus int
	}{
		{
			name:           "200 OK",
			statusCodes:    []int{http.StatusOK},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "404 Not Found",
			statusCodes:    []int{http.StatusNotFound},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "second call is ignored",
			statusCodes:    []int{http.StatusNotFound, http.StatusInternalServerError},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "500 then 200 keeps 500",
			statusCodes:    []int{http.StatusInternalServerError, http.StatusOK},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			for _, code := range tt.statusCodes {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.expectedStatus, w.status)
			assert.Equal(t, tt.expectedStatus, w.statusCode())
			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.True(t, w.wroteHeader)
		})
	}
}

func TestResponseWriter_Write_SetsImplicit200(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	n, err := w.Write([]byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "hello", rr.Body.String())
}

func TestResponseWriter_Write_AccumulatesSize(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	_, _ = w.Write([]byte("first"))
	_, _ = w.Write([]byte("-second"))

	assert.Equal(t, 12, w.size)
	assert.Equal(t, "first-second", rr.Body.String())
}

func TestResponseWriter_Write_AfterExplicitWriteHeader(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusNotFound)
	_, err := w.Write([]byte(`{"error":"Not Found"}`))

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, http.StatusNotFound, w.statusCode())
}

func TestResponseWriter_StatusCode_DefaultsTo200(t *testing.T) {
	w := newResponseWriter(httptest.NewRecorder())

	assert.Zero(t, w.status)
	assert.Equal(t, http.StatusOK, w.statusCode())
	assert.Zero(t, w.size)
}

func TestResponseWriter_ProxiesHeadersToUnderlying(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.Header().Set("X-Custom", "value")
	w.WriteHeader(http.StatusOK)

	assert.Equal(t, "value", rr.Header().Get("X-Custom"))
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	assert.Same(t, rr, w.Unwrap())
}
