package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRoutes(t *testing.T) {
	newBody := func() map[string]any {
		return map[string]any{
			"name":        "Borealis",
			"code":        "BOR",
			"description": "Northern expansion",
			"active":      true,
		}
	}

	t.Run("should return 201 with Location header on create", func(t *testing.T) {
		fx := setupAPI(t)

		rec := fx.do(t, http.MethodPost, "/projects", newBody())

		require.Equal(t, http.StatusCreated, rec.Code)
		var body ProjectResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Greater(t, body.ID, int64(0))
		assert.Equal(t, fmt.Sprintf("/projects/%d", body.ID), rec.Header().Get("Location"))
		assert.Equal(t, "BOR", body.Code)
		assert.True(t, body.Active)
	})

	t.Run("should return 400 when active flag is missing", func(t *testing.T) {
		fx := setupAPI(t)
		body := newBody()
		delete(body, "active")

		rec := fx.do(t, http.MethodPost, "/projects", body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_input", decodeError(t, rec).Code)
	})

	t.Run("should update an existing project", func(t *testing.T) {
		fx := setupAPI(t)
		body := newBody()
		body["active"] = false

		rec := fx.do(t, http.MethodPut, fmt.Sprintf("/projects/%d", fx.projectID), body)

		require.Equal(t, http.StatusOK, rec.Code)
		var updated ProjectResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
		assert.Equal(t, fx.projectID, updated.ID)
		assert.False(t, updated.Active)
	})

	t.Run("should get a project by id", func(t *testing.T) {
		fx := setupAPI(t)

		rec := fx.do(t, http.MethodGet, fmt.Sprintf("/projects/%d", fx.projectID), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var body ProjectResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "APL", body.Code)
	})

	t.Run("should return 404 for unknown project", func(t *testing.T) {
		fx := setupAPI(t)

		assert.Equal(t, http.StatusNotFound, fx.do(t, http.MethodGet, "/projects/999", nil).Code)
	})

	t.Run("should not route DELETE", func(t *testing.T) {
		fx := setupAPI(t)

		rec := fx.do(t, http.MethodDelete, fmt.Sprintf("/projects/%d", fx.projectID), nil)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}
