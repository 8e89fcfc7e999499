package create_bed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SpaBoard/internal/api/middleware"
	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	"github.com/m04kA/SMC-SpaBoard/internal/service/beds"
	"github.com/m04kA/SMC-SpaBoard/internal/service/beds/models"
	"github.com/m04kA/SMC-SpaBoard/pkg/logger"
	"github.com/m04kA/SMC-SpaBoard/pkg/validator"
)

type stubService struct {
	err error
}

func (s *stubService) Create(_ context.Context, _ *domain.User, req *models.BedRequest) (*models.BedResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.BedResponse{ID: 8, Name: req.Name, BranchID: req.BranchID, Status: string(domain.BedStatusAvailable)}, nil
}

func TestHandle(t *testing.T) {
	manager := &domain.User{ID: 2, Role: domain.RoleManager, BranchIDs: []int64{1}}
	body := `{"name":"Giường 8","room":"Phòng Massage A","branchId":1,"type":"massage","equipment":[]}`

	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "created", body: body, wantStatus: http.StatusCreated, wantBody: `"id":8`},
		{name: "bad body", body: `{"name":`, wantStatus: http.StatusBadRequest},
		{
			name: "validation", body: body,
			err:        fmt.Errorf("%w: %w", beds.ErrInvalidInput, &validator.FieldsError{Fields: map[string]string{"name": "notblank"}}),
			wantStatus: http.StatusBadRequest, wantBody: `"name":"notblank"`,
		},
		{name: "foreign branch", body: body, err: beds.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "internal", body: body, err: beds.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubService{err: tt.err}, logger.NewNop())
			req := httptest.NewRequest(http.MethodPost, "/api/v1/beds", strings.NewReader(tt.body))
			req = req.WithContext(middleware.WithUser(req.Context(), manager))
			rec := httptest.NewRecorder()

			h.Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}
