package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/connector-sync/models"
)

func TestStructValidator_Endpoint(t *testing.T) {
	v := NewStructValidator()

	tests := []struct {
		name     string
		endpoint models.Endpoint
		wantErr  bool
		contains string
	}{
		{"valid", models.Endpoint{ManagementURL: "http://edc/management", APIKey: "k"}, false, ""},
		{"missing url", models.Endpoint{APIKey: "k"}, true, "managementUrl"},
		{"missing key", models.Endpoint{ManagementURL: "http://edc"}, true, "apiKey"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.endpoint)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrValidationFailed)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestStructValidator_PointerAndDTOs(t *testing.T) {
	v := NewStructValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, &models.ContractDefinitionDTO{AccessPolicyID: "a", ContractPolicyID: "c"}))
	assert.ErrorIs(t, v.Validate(ctx, &models.ContractDefinitionDTO{AccessPolicyID: "a"}), ErrValidationFailed)
	assert.ErrorIs(t, v.Validate(ctx, models.PolicyDefinitionDTO{}), ErrValidationFailed)
	assert.NoError(t, v.Validate(ctx, models.AssetDTO{}))
}

func TestStructValidator_PartialFields(t *testing.T) {
	v := NewStructValidator()
	ctx := context.Background()

	dto := models.ContractDefinitionDTO{AccessPolicyID: "a"}
	assert.NoError(t, v.Validate(ctx, dto, "accessPolicyId"))
	assert.ErrorIs(t, v.Validate(ctx, dto, "contractPolicyId"), ErrValidationFailed)
	assert.ErrorIs(t, v.Validate(ctx, dto, "nope"), ErrUnknownField)
}

func TestStructValidator_UnsupportedTypes(t *testing.T) {
	v := NewStructValidator()
	var nilEndpoint *models.Endpoint

	assert.ErrorIs(t, v.Validate(context.Background(), "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), nilEndpoint), ErrUnsupportedType)
}
