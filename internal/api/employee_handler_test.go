package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeRoutes(t *testing.T) {
	newBody := func() map[string]any {
		return map[string]any{
			"firstName":  "Sam",
			"lastName":   "Lee",
			"email":      "sam.lee@example.com",
			"department": "Design",
		}
	}

	t.Run("should return 201 with Location header on create", func(t *testing.T) {
		fx := setupAPI(t)

		rec := fx.do(t, http.MethodPost, "/employees", newBody())

		require.Equal(t, http.StatusCreated, rec.Code)
		var body EmployeeResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Greater(t, body.ID, int64(0))
		assert.Equal(t, fmt.Sprintf("/employees/%d", body.ID), rec.Header().Get("Location"))
		assert.Equal(t, "sam.lee@example.com", body.Email)
	})

	t.Run("should return 400 for a missing required field", func(t *testing.T) {
		fx := setupAPI(t)
		body := newBody()
		delete(body, "email")

		rec := fx.do(t, http.MethodPost, "/employees", body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_input", decodeError(t, rec).Code)
	})

	t.Run("should list seeded employees", func(t *testing.T) {
		fx := setupAPI(t)

		rec := fx.do(t, http.MethodGet, "/employees", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var body []EmployeeResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		require.Len(t, body, 1)
		assert.Equal(t, "Jane", body[0].FirstName)
	})

	t.Run("should update an existing employee", func(t *testing.T) {
		fx := setupAPI(t)
		body := newBody()
		body["firstName"] = "Janet"

		rec := fx.do(t, http.MethodPut, fmt.Sprintf("/employees/%d", fx.employeeID), body)

		require.Equal(t, http.StatusOK, rec.Code)
		var updated EmployeeResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
		assert.Equal(t, fx.employeeID, updated.ID)
		assert.Equal(t, "Janet", updated.FirstName)
	})

	t.Run("should return 404 for unknown employee", func(t *testing.T) {
		fx := setupAPI(t)

		assert.Equal(t, http.StatusNotFound, fx.do(t, http.MethodGet, "/employees/999", nil).Code)
		assert.Equal(t, http.StatusNotFound, fx.do(t, http.MethodPut, "/employees/999", newBody()).Code)
	})

	t.Run("should not route DELETE", func(t *testing.T) {
		fx := setupAPI(t)

		rec := fx.do(t, http.MethodDelete, fmt.Sprintf("/employees/%d", fx.employeeID), nil)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}
