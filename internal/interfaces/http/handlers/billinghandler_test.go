package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edifai-io/edifai/internal/domain/expense"
)

func bindCreateExpense(t *testing.T, body string) (CreateExpenseRequest, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest(http.MethodPost, "/condo/expenses", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	var parsed CreateExpenseRequest
	return parsed, c.ShouldBindJSON(&parsed)
}

func TestCreateExpenseRequest_AcceptsDomainExpenseTypes(t *testing.T) {
	for _, typ := range []string{"fixed", "variable", "reserve"} {
		body := fmt.Sprintf(`{"description":"Mantenimiento ascensor","amount":150.5,"type":%q,"category":"maintenance"}`, typ)
		parsed, err := bindCreateExpense(t, body)
		require.NoError(t, err, "type %s should bind", typ)
		// Every value the binding lets through must be a valid domain type.
		assert.True(t, expense.Type(parsed.Type).IsValid())
	}
}

func TestCreateExpenseRequest_RejectsUnknownExpenseTypes(t *testing.T) {
	for _, typ := range []string{"ordinary", "extraordinary", "misc", ""} {
		body := fmt.Sprintf(`{"description":"Mantenimiento ascensor","amount":150.5,"type":%q,"category":"maintenance"}`, typ)
		_, err := bindCreateExpense(t, body)
		assert.Error(t, err, "type %q should be rejected", typ)
	}
}

func TestCreateExpenseRequest_DateIsOptional(t *testing.T) {
	parsed, err := bindCreateExpense(t, `{"description":"Agua","amount":40,"type":"fixed","category":"utilities"}`)
	require.NoError(t, err)
	assert.True(t, parsed.Date.IsZero())

	parsed, err = bindCreateExpense(t, `{"description":"Agua","amount":40,"type":"fixed","category":"utilities","date":"2026-08-15T00:00:00Z"}`)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC), parsed.Date)
}
