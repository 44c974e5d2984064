package appearances

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/warpedwall/ninja-index/api/types"
	appearancesService "github.com/warpedwall/ninja-index/internal/services/appearances"
)

type MockAppearanceService struct {
	mock.Mock
}

func (m *MockAppearanceService) SetVerified(ctx context.Context, id uint, verified bool) error {
	return m.Called(ctx, id, verified).Error(0)
}

func performPatch(t *testing.T, deps *types.Dependencies, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	_, engine := gin.CreateTestContext(w)
	RegisterRoutes(engine.Group("/api/v1/appearances"), deps)

	req := httptest.NewRequest(http.MethodPatch, target, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	engine.ServeHTTP(w, req)
	return w
}

func TestPatchVerify(t *testing.T) {
	service := new(MockAppearanceService)
	service.On("SetVerified", mock.Anything, uint(5), true).Return(nil)

	w := performPatch(t, &types.Dependencies{AppearanceService: service}, "/api/v1/appearances/5/verify", "")
	assert.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}

func TestPatchVerifyClearsFlag(t *testing.T) {
	service := new(MockAppearanceService)
	service.On("SetVerified", mock.Anything, uint(5), false).Return(nil)

	w := performPatch(t, &types.Dependencies{AppearanceService: service},
		"/api/v1/appearances/5/verify", `{"verified": false}`)
	assert.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}

func TestPatchVerifyNotFound(t *testing.T) {
	service := new(MockAppearanceService)
	service.On("SetVerified", mock.Anything, uint(99), true).
		Return(appearancesService.NewNotFoundError(99))

	w := performPatch(t, &types.Dependencies{AppearanceService: service}, "/api/v1/appearances/99/verify", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPatchVerifyInvalidID(t *testing.T) {
	service := new(MockAppearanceService)

	w := performPatch(t, &types.Dependencies{AppearanceService: service}, "/api/v1/appearances/not-a-number/verify", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	service.AssertNotCalled(t, "SetVerified", mock.Anything, mock.Anything, mock.Anything)
}

func TestPatchVerifyServiceError(t *testing.T) {
	service := new(MockAppearanceService)
	service.On("SetVerified", mock.Anything, uint(5), true).Return(assert.AnError)

	w := performPatch(t, &types.Dependencies{AppearanceService: service}, "/api/v1/appearances/5/verify", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
