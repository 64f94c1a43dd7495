package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blooddrive-backend/internal/domains/donor/model"
	"blooddrive-backend/internal/domains/donor/service"
)

var _ service.ServiceInterface = (*MockDonorService)(nil)

// MockDonorService is a mock implementation of the donor service.
type MockDonorService struct {
	RegisterFunc   func(ctx context.Context, req model.RegisterDonorRequest) (*model.RegistrationResponse, error)
	ListRecentFunc func(ctx context.Context, limit int) ([]model.RecentDonorResponse, error)
}

func (m *MockDonorService) Register(ctx context.Context, req model.RegisterDonorRequest) (*model.RegistrationResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, errors.New("RegisterFunc not implemented in mock")
}

func (m *MockDonorService) ListRecent(ctx context.Context, limit int) ([]model.RecentDonorResponse, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	return nil, errors.New("ListRecentFunc not implemented in mock")
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func setupRouter(svc service.ServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDonorHandler(svc)

	router := gin.New()
	router.POST("/api/donate", h.Register)
	router.GET("/api/donors", h.ListRecent)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestRegister_Created(t *testing.T) {
	svc := &MockDonorService{
		RegisterFunc: func(ctx context.Context, req model.RegisterDonorRequest) (*model.RegistrationResponse, error) {
			assert.Equal(t, "Jane Doe", req.FullName)
			return &model.RegistrationResponse{
				Donor:      model.RegisteredDonor{FullName: "Jane Doe", BloodGroup: "O-"},
				TotalUnits: 5,
			}, nil
		},
	}
	router := setupRouter(svc)

	rec, env := doRequest(t, router, http.MethodPost, "/api/donate", gin.H{
		"fullName":   "Jane Doe",
		"bloodGroup": "O-",
		"age":        30,
		"year":       "SY",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)

	var data model.RegistrationResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Jane Doe", data.Donor.FullName)
	assert.Equal(t, "O-", data.Donor.BloodGroup)
	assert.Equal(t, int64(5), data.TotalUnits)
}

func TestRegister_ValidationError(t *testing.T) {
	svc := &MockDonorService{
		RegisterFunc: func(ctx context.Context, req model.RegisterDonorRequest) (*model.RegistrationResponse, error) {
			return nil, model.NewValidationError(errors.New("age: age must be at least 18."))
		},
	}
	router := setupRouter(svc)

	rec, env := doRequest(t, router, http.MethodPost, "/api/donate", gin.H{
		"fullName":   "Al",
		"bloodGroup": "O-",
		"age":        17,
		"year":       "FY",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "age must be at least 18")
}

func TestRegister_MalformedBody(t *testing.T) {
	router := setupRouter(&MockDonorService{})

	req := httptest.NewRequest(http.MethodPost, "/api/donate", bytes.NewBufferString(`{"age":"thirty"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Message)
}

func TestRegister_StorageError(t *testing.T) {
	svc := &MockDonorService{
		RegisterFunc: func(ctx context.Context, req model.RegisterDonorRequest) (*model.RegistrationResponse, error) {
			return nil, model.NewStorageError("failed to save donor", errors.New("connection refused"))
		},
	}
	router := setupRouter(svc)

	rec, env := doRequest(t, router, http.MethodPost, "/api/donate", gin.H{
		"fullName":   "Jane Doe",
		"bloodGroup": "O-",
		"age":        30,
		"year":       "SY",
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, env.Success)
}

func TestRegister_IncrementFailureIsServerError(t *testing.T) {
	svc := &MockDonorService{
		RegisterFunc: func(ctx context.Context, req model.RegisterDonorRequest) (*model.RegistrationResponse, error) {
			return nil, model.NewStatsIncrementError(errors.New("connection refused"))
		},
	}
	router := setupRouter(svc)

	rec, env := doRequest(t, router, http.MethodPost, "/api/donate", gin.H{
		"fullName":   "Jane Doe",
		"bloodGroup": "O-",
		"age":        30,
		"year":       "SY",
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "sync-stats")
}

func TestListRecent_DefaultLimit(t *testing.T) {
	var gotLimit int
	svc := &MockDonorService{
		ListRecentFunc: func(ctx context.Context, limit int) ([]model.RecentDonorResponse, error) {
			gotLimit = limit
			return []model.RecentDonorResponse{}, nil
		},
	}
	router := setupRouter(svc)

	rec, env := doRequest(t, router, http.MethodGet, "/api/donors", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, model.DefaultRecentLimit, gotLimit)
}

func TestListRecent_ExplicitLimit(t *testing.T) {
	var gotLimit int
	svc := &MockDonorService{
		ListRecentFunc: func(ctx context.Context, limit int) ([]model.RecentDonorResponse, error) {
			gotLimit = limit
			return []model.RecentDonorResponse{
				{FullName: "Jane Doe", BloodGroup: "O-"},
			}, nil
		},
	}
	router := setupRouter(svc)

	rec, env := doRequest(t, router, http.MethodGet, "/api/donors?limit=1", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, 1, gotLimit)

	var data []model.RecentDonorResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 1)
	assert.Equal(t, "Jane Doe", data[0].FullName)
}

func TestListRecent_InvalidLimit(t *testing.T) {
	router := setupRouter(&MockDonorService{})

	for _, limit := range []string{"abc", "-1", "0"} {
		rec, env := doRequest(t, router, http.MethodGet, "/api/donors?limit="+limit, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, limit)
		assert.False(t, env.Success)
	}
}

func TestListRecent_StorageError(t *testing.T) {
	svc := &MockDonorService{
		ListRecentFunc: func(ctx context.Context, limit int) ([]model.RecentDonorResponse, error) {
			return nil, errors.New("connection refused")
		},
	}
	router := setupRouter(svc)

	rec, env := doRequest(t, router, http.MethodGet, "/api/donors", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, env.Success)
}
