package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockTileCounter mocks the TileCounter interface
type MockTileCounter struct {
	mock.Mock
}

func (m *MockTileCounter) TileCount(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	handler := HandleHealthz()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Soil Generated - Success", func(t *testing.T) {
		farm := &MockTileCounter{}
		farm.On("TileCount", mock.Anything).Return(8)

		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		HandleReadyz(farm).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
		assert.Contains(t, w.Body.String(), `"tiles":8`)
		farm.AssertExpectations(t)
	})

	t.Run("No Tiles Yet", func(t *testing.T) {
		farm := &MockTileCounter{}
		farm.On("TileCount", mock.Anything).Return(0)

		req := httptest.NewRequest("GET", "/readyz", nil)
		w := httptest.NewRecorder()

		HandleReadyz(farm).ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"unavailable"`)
		assert.Contains(t, w.Body.String(), "soil grid not generated")
		farm.AssertExpectations(t)
	})
}

func TestHandleVersion(t *testing.T) {
	req := httptest.NewRequest("GET", "/version", nil)
	w := httptest.NewRecorder()

	HandleVersion(BuildInfo{Service: "meofarm", Version: "1.4.0", Environment: "prod"}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `"service":"meofarm"`)
	assert.Contains(t, body, `"version":"1.4.0"`)
	assert.Contains(t, body, `"environment":"prod"`)
	assert.Contains(t, body, `"go_version"`)
}

func TestNewVersionInfo(t *testing.T) {
	t.Run("vcs stamp", func(t *testing.T) {
		read := func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "4f2a9c1"},
				{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
				{Key: "vcs.modified", Value: "true"},
				{Key: "GOOS", Value: "linux"},
			}}, true
		}

		info := newVersionInfo(BuildInfo{Version: "1.4.0"}, read)

		assert.Equal(t, "1.4.0", info.Version)
		assert.Equal(t, "4f2a9c1", info.Revision)
		assert.Equal(t, "2026-10-01T12:00:00Z", info.RevisionTime)
		assert.True(t, info.Modified)
	})

	t.Run("no build info", func(t *testing.T) {
		info := newVersionInfo(BuildInfo{}, func() (*debug.BuildInfo, bool) { return nil, false })

		assert.Equal(t, unknownVersion, info.Version)
		assert.Empty(t, info.Revision)
		assert.False(t, info.Modified)
	})
}
