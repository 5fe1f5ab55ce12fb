package tracking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixflow/internal/application/tracking/dto"
	"fixflow/internal/application/tracking/usecases"
	"fixflow/internal/shared/constants"
	apperrors "fixflow/internal/shared/errors"
)

type mockPublicLookupExecutor struct {
	ExecuteFunc func(ctx context.Context, query usecases.PublicLookupQuery) (*usecases.PublicLookupResult, error)
}

func (m *mockPublicLookupExecutor) Execute(ctx context.Context, query usecases.PublicLookupQuery) (*usecases.PublicLookupResult, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockDashboardExecutor struct {
	ExecuteFunc func(ctx context.Context, query usecases.GetDashboardQuery) (*usecases.GetDashboardResult, error)
}

func (m *mockDashboardExecutor) Execute(ctx context.Context, query usecases.GetDashboardQuery) (*usecases.GetDashboardResult, error) {
	return m.ExecuteFunc(ctx, query)
}

func setupTrackRouter(lookup *mockPublicLookupExecutor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewTrackingHandler(lookup, nil)

	engine := gin.New()
	engine.POST("/track", handler.Track)
	return engine
}

func TestTrackEndpoint(t *testing.T) {
	lookup := &mockPublicLookupExecutor{
		ExecuteFunc: func(ctx context.Context, query usecases.PublicLookupQuery) (*usecases.PublicLookupResult, error) {
			assert.Equal(t, "TK-12/25", query.TrackingNumber)
			assert.Equal(t, "jane@example.com", query.Email)
			return &usecases.PublicLookupResult{
				Item: dto.TrackableItemDTO{Number: "TK-12/25", Status: "active"},
			}, nil
		},
	}
	engine := setupTrackRouter(lookup)

	body, _ := json.Marshal(gin.H{
		"tracking_number": "TK-12/25",
		"email":           "jane@example.com",
	})
	req := httptest.NewRequest(http.MethodPost, "/track", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Item dto.TrackableItemDTO `json:"item"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "TK-12/25", resp.Data.Item.Number)
}

func TestTrackEndpointMissingFields(t *testing.T) {
	engine := setupTrackRouter(&mockPublicLookupExecutor{
		ExecuteFunc: func(ctx context.Context, query usecases.PublicLookupQuery) (*usecases.PublicLookupResult, error) {
			t.Fatal("use case must not run on binding failure")
			return nil, nil
		},
	})

	body, _ := json.Marshal(gin.H{"tracking_number": "TK-12/25"})
	req := httptest.NewRequest(http.MethodPost, "/track", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTrackEndpointMalformedNumberLooksLikeAMiss(t *testing.T) {
	engine := setupTrackRouter(&mockPublicLookupExecutor{
		ExecuteFunc: func(ctx context.Context, query usecases.PublicLookupQuery) (*usecases.PublicLookupResult, error) {
			assert.Equal(t, "INVOICE-12/25", query.TrackingNumber)
			return nil, apperrors.NewNotFoundError("no matching record found")
		},
	})

	body, _ := json.Marshal(gin.H{
		"tracking_number": "INVOICE-12/25",
		"email":           "jane@example.com",
	})
	req := httptest.NewRequest(http.MethodPost, "/track", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no matching record found")
}

func TestTrackEndpointNotFoundShape(t *testing.T) {
	engine := setupTrackRouter(&mockPublicLookupExecutor{
		ExecuteFunc: func(ctx context.Context, query usecases.PublicLookupQuery) (*usecases.PublicLookupResult, error) {
			return nil, apperrors.NewNotFoundError("no matching record found")
		},
	})

	body, _ := json.Marshal(gin.H{
		"tracking_number": "TK-999/25",
		"email":           "jane@example.com",
	})
	req := httptest.NewRequest(http.MethodPost, "/track", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no matching record found")
}

func TestDashboardEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	dashboard := &mockDashboardExecutor{
		ExecuteFunc: func(ctx context.Context, query usecases.GetDashboardQuery) (*usecases.GetDashboardResult, error) {
			assert.Equal(t, uint(7), query.CustomerID)
			assert.Equal(t, "orders", query.Tab)
			return &usecases.GetDashboardResult{
				Tab:     "orders",
				Items:   []dto.TrackableItemDTO{{Number: "WO-8/25"}},
				Summary: dto.SummaryDTO{Total: 4, Pending: 1, Active: 2, Completed: 1},
			}, nil
		},
	}
	handler := NewTrackingHandler(nil, dashboard)

	engine := gin.New()
	engine.GET("/dashboard", func(c *gin.Context) {
		c.Set(constants.ContextKeyCustomerID, uint(7))
		handler.Dashboard(c)
	})

	req := httptest.NewRequest(http.MethodGet, "/dashboard?tab=orders", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "WO-8/25")
	assert.Contains(t, rec.Body.String(), `"total":4`)
}

func TestDashboardEndpointWithoutIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewTrackingHandler(nil, &mockDashboardExecutor{
		ExecuteFunc: func(ctx context.Context, query usecases.GetDashboardQuery) (*usecases.GetDashboardResult, error) {
			t.Fatal("use case must not run without customer identity")
			return nil, nil
		},
	})

	engine := gin.New()
	engine.GET("/dashboard", handler.Dashboard)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
