package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-market-keeper/models"
)

func ptr[T any](v T) *T { return &v }

func TestRequestValidator_Validate(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name       string
		input      any
		wantFields []string
	}{
		{
			name:  "valid credentials",
			input: models.Credentials{Username: "root", Password: "secret"},
		},
		{
			name:       "empty credentials",
			input:      models.Credentials{},
			wantFields: []string{"username", "password"},
		},
		{
			name:  "long login credentials are left to authentication",
			input: models.Credentials{Username: strings.Repeat("u", 100), Password: strings.Repeat("p", 100)},
		},
		{
			name:       "admin secret longer than bcrypt accepts",
			input:      models.AdminInput{Username: "second", Password: strings.Repeat("p", 73)},
			wantFields: []string{"password"},
		},
		{
			name:       "admin username too long",
			input:      models.AdminInput{Username: strings.Repeat("u", 65), Password: "pa55word"},
			wantFields: []string{"username"},
		},
		{
			name:  "valid product",
			input: &models.ProductInput{Name: "Lamp", PriceCents: 1999, ImageID: "0123456789abcdef0123456789abcdef"},
		},
		{
			name:       "negative price",
			input:      models.ProductInput{Name: "Lamp", PriceCents: -1},
			wantFields: []string{"price_cents"},
		},
		{
			name:       "bad image id and category",
			input:      models.ProductInput{Name: "Lamp", CategoryID: ptr(int64(0)), ImageID: "xyz"},
			wantFields: []string{"category_id", "image_id"},
		},
		{
			name:       "missing category name",
			input:      models.CategoryInput{},
			wantFields: []string{"name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.input)
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidationFailed)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			got := make([]string, 0, len(verr.Fields))
			for _, f := range verr.Fields {
				got = append(got, f.Field)
			}
			assert.ElementsMatch(t, tt.wantFields, got)
		})
	}
}

func TestRequestValidator_ValidatePartial(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), models.ProductInput{PriceCents: 10}, "PriceCents")
	assert.NoError(t, err)

	err = v.Validate(context.Background(), models.ProductInput{PriceCents: 10}, "Name")
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestRequestValidator_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "text"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.Credentials)(nil)), ErrUnsupportedType)
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: []FieldError{
		{Field: "name", Rule: "required"},
		{Field: "name", Rule: "max", Param: "100"},
	}}

	assert.Equal(t, "validation failed: name: required, name: max=100", err.Error())
}
