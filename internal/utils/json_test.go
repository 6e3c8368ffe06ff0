package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string `json:"name"`
}

func TestDecodeStrict(t *testing.T) {
	var p payload
	require.NoError(t, DecodeStrict(strings.NewReader(`{"name":"x"}`), &p))
	assert.Equal(t, "x", p.Name)

	err := DecodeStrict(strings.NewReader(`{"name":"x","foo":1}`), &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown field "foo"`)

	err = DecodeStrict(strings.NewReader(`{"name":"x"} {"name":"y"}`), &p)
	require.Error(t, err)
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	WriteError(rr, http.StatusConflict, "duplicate")

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"duplicate"}`, rr.Body.String())
}
