package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blooddrive-backend/internal/domains/stats/model"
	"blooddrive-backend/internal/domains/stats/service"
)

var _ service.ServiceInterface = (*MockStatsService)(nil)

// MockStatsService is a mock implementation of the stats service.
type MockStatsService struct {
	GetStatsFunc  func(ctx context.Context) (*model.StatsResponse, error)
	IncrementFunc func(ctx context.Context, amount int64) (*model.DriveStats, error)
	SyncFunc      func(ctx context.Context) (*model.SyncResponse, error)
}

func (m *MockStatsService) GetStats(ctx context.Context) (*model.StatsResponse, error) {
	if m.GetStatsFunc != nil {
		return m.GetStatsFunc(ctx)
	}
	return nil, errors.New("GetStatsFunc not implemented in mock")
}

func (m *MockStatsService) Increment(ctx context.Context, amount int64) (*model.DriveStats, error) {
	if m.IncrementFunc != nil {
		return m.IncrementFunc(ctx, amount)
	}
	return nil, errors.New("IncrementFunc not implemented in mock")
}

func (m *MockStatsService) Sync(ctx context.Context) (*model.SyncResponse, error) {
	if m.SyncFunc != nil {
		return m.SyncFunc(ctx)
	}
	return nil, errors.New("SyncFunc not implemented in mock")
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func setupRouter(svc service.ServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewStatsHandler(svc)

	router := gin.New()
	router.GET("/api/stats", h.GetStats)
	router.POST("/api/sync-stats", h.SyncStats)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestGetStats_OK(t *testing.T) {
	updated := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := &MockStatsService{
		GetStatsFunc: func(ctx context.Context) (*model.StatsResponse, error) {
			return &model.StatsResponse{TotalUnits: 42, LastUpdated: updated}, nil
		},
	}
	router := setupRouter(svc)

	rec, env := doRequest(t, router, http.MethodGet, "/api/stats")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	var data model.StatsResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, int64(42), data.TotalUnits)
	assert.True(t, data.LastUpdated.Equal(updated))
}

func TestGetStats_StoreFailure(t *testing.T) {
	svc := &MockStatsService{
		GetStatsFunc: func(ctx context.Context) (*model.StatsResponse, error) {
			return nil, errors.New("connection refused")
		},
	}
	router := setupRouter(svc)

	rec, env := doRequest(t, router, http.MethodGet, "/api/stats")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Message)
}

func TestSyncStats_OK(t *testing.T) {
	svc := &MockStatsService{
		SyncFunc: func(ctx context.Context) (*model.SyncResponse, error) {
			return &model.SyncResponse{TotalUnits: 17}, nil
		},
	}
	router := setupRouter(svc)

	rec, env := doRequest(t, router, http.MethodPost, "/api/sync-stats")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	var data model.SyncResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, int64(17), data.TotalUnits)
}

func TestSyncStats_StoreFailure(t *testing.T) {
	svc := &MockStatsService{
		SyncFunc: func(ctx context.Context) (*model.SyncResponse, error) {
			return nil, errors.New("connection refused")
		},
	}
	router := setupRouter(svc)

	rec, env := doRequest(t, router, http.MethodPost, "/api/sync-stats")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, env.Success)
}
