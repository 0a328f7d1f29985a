package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"eta/internal/core/domain/services"
	"eta/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantFields []string
	}{
		{
			name:       "not found",
			err:        fmt.Errorf("load: %w", errs.NewObjectNotFoundError("policy", "42")),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "no active warehouses",
			err:        services.ErrNoActiveWarehouses,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "empty order",
			err:        services.ErrNoLineItems,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "joined value errors",
			err: errors.Join(
				errs.NewValueIsRequiredError("fixedDays"),
				fmt.Errorf("override 0: %w", errs.NewValueIsInvalidError("region")),
				errs.NewValueIsOutOfRangeError("cutoffHour", 24, 0, 23),
			),
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"fixedDays", "region", "cutoffHour"},
		},
		{
			name:       "query parameter",
			err:        &paramError{name: "cutoffHour", err: errors.New("not an int")},
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"cutoffHour"},
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "unknown",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			status, body := classify(tt.err)

			// Assert
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantStatus, body.Code)
			for _, f := range tt.wantFields {
				assert.Contains(t, body.Fields, f)
			}
			if len(tt.wantFields) == 0 {
				assert.Empty(t, body.Fields)
			}
		})
	}
}

func TestClassify_InternalErrorHidesDetails(t *testing.T) {
	// Act
	_, body := classify(errors.New("pq: password authentication failed"))

	// Assert
	assert.Equal(t, "internal server error", body.Message)
}

func TestRequestValidator_UsesJSONNames(t *testing.T) {
	// Arrange
	v := NewRequestValidator()
	in := PlanInput{Items: []LineItem{{ProductID: "", Quantity: 0}}}

	// Act
	err := v.Validate(&in)

	// Assert
	var status int
	var body Error
	status, body = classify(err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body.Fields, "items[0].productId")
	assert.Contains(t, body.Fields, "items[0].quantity")
}
