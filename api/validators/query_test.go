package validators

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/calderasoft/erp-backend/pkg/errors"
)

func TestParseQueryInt(t *testing.T) {
	r := httptest.NewRequest("GET", "/?limit=25", nil)
	got, err := ParseQueryInt(r, "limit", 50, 1, 200)
	require.NoError(t, err)
	assert.Equal(t, 25, got)

	r = httptest.NewRequest("GET", "/", nil)
	got, err = ParseQueryInt(r, "limit", 50, 1, 200)
	require.NoError(t, err)
	assert.Equal(t, 50, got)

	r = httptest.NewRequest("GET", "/?limit=banana", nil)
	_, err = ParseQueryInt(r, "limit", 50, 1, 200)
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())

	r = httptest.NewRequest("GET", "/?limit=9999", nil)
	_, err = ParseQueryInt(r, "limit", 50, 1, 200)
	require.Error(t, err)
}

func TestParseQueryBool(t *testing.T) {
	r := httptest.NewRequest("GET", "/?lowStock=true", nil)
	got, err := ParseQueryBool(r, "lowStock", false)
	require.NoError(t, err)
	assert.True(t, got)

	r = httptest.NewRequest("GET", "/", nil)
	got, err = ParseQueryBool(r, "lowStock", false)
	require.NoError(t, err)
	assert.False(t, got)

	r = httptest.NewRequest("GET", "/?lowStock=yes-please", nil)
	_, err = ParseQueryBool(r, "lowStock", false)
	require.Error(t, err)
}

func TestParseQueryUUID(t *testing.T) {
	id := uuid.New()
	r := httptest.NewRequest("GET", "/?customerId="+id.String(), nil)
	got, err := ParseQueryUUID(r, "customerId")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, *got)

	r = httptest.NewRequest("GET", "/", nil)
	got, err = ParseQueryUUID(r, "customerId")
	require.NoError(t, err)
	assert.Nil(t, got)

	r = httptest.NewRequest("GET", "/?customerId=nope", nil)
	_, err = ParseQueryUUID(r, "customerId")
	require.Error(t, err)
}

func TestRequireQueryUUID(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	_, err := RequireQueryUUID(r, "productId")
	require.Error(t, err)
	assert.Equal(t, pkgerrors.CodeValidation, pkgerrors.As(err).Code())
}

func TestParseQueryDate(t *testing.T) {
	fallback := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	r := httptest.NewRequest("GET", "/?startDate=2026-03-15", nil)
	got, err := ParseQueryDate(r, "startDate", fallback)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), got)

	r = httptest.NewRequest("GET", "/", nil)
	got, err = ParseQueryDate(r, "startDate", fallback)
	require.NoError(t, err)
	assert.Equal(t, fallback, got)

	r = httptest.NewRequest("GET", "/?startDate=15-03-2026", nil)
	_, err = ParseQueryDate(r, "startDate", fallback)
	require.Error(t, err)
}
