package response

import (
	"encoding/json"
	"testing"
	"time"

	"placement_service/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromPracticeApplication(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	r := FromPracticeApplication(entities.PracticeApplication{
		ID:            "a",
		PaymentAmount: decimal.NewFromInt(110000),
		Status:        entities.ApplicationStatusConfirmed,
		PaymentStatus: entities.PaymentStatusPaid,
		PaymentID:     "TX1",
		CreatedAt:     now,
	})

	assert.Equal(t, "110000", r.PaymentAmount)
	assert.Equal(t, "confirmed", r.Status)
	assert.Equal(t, "paid", r.PaymentStatus)
	assert.Equal(t, []string{}, r.EmploymentTypes)

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"employment_types":[]`)
}

func TestNewListResponse_EmptyIsArray(t *testing.T) {
	lr := NewListResponse[ConsultationResponse](nil, 0, entities.ListFilter{Page: 1, PageSize: 50})
	raw, err := json.Marshal(lr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[],"total":0,"page":1,"page_size":50}`, string(raw))
}

func TestFromConsultations(t *testing.T) {
	out := FromConsultations([]entities.Consultation{{ID: "1", Status: entities.ConsultationStatusInProgress}})
	require.Len(t, out, 1)
	assert.Equal(t, "in_progress", out[0].Status)
}
