package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mytodo/internal/client"
	"mytodo/internal/model"
)

func TestGetTodos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/todos", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		json.NewEncoder(w).Encode([]model.Todo{{ID: 1, Title: "one"}, {ID: 2, Title: "two"}})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	todos, err := c.GetTodos(context.Background(), client.ListOptions{})

	require.NoError(t, err)
	require.Len(t, todos, 2)
	assert.Equal(t, "one", todos[0].Title)
}

func TestGetTodos_ListOptionsBecomeQueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("skip"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "order", r.URL.Query().Get("sort"))
		json.NewEncoder(w).Encode([]model.Todo{})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	_, err := c.GetTodos(context.Background(), client.ListOptions{Skip: 10, Limit: 5, Sort: "order"})

	require.NoError(t, err)
}

func TestCreateTodo_StripsLocalID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var got model.Todo
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		// temporary client-side ids must never reach the server
		assert.Equal(t, 0, got.ID)

		got.ID = 17
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(got)
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	created, err := c.CreateTodo(context.Background(), model.Todo{ID: -3, Title: "new"})

	require.NoError(t, err)
	assert.Equal(t, 17, created.ID)
}

func TestUpdateTodo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/todos/4", r.URL.Path)
		var got model.Todo
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(got)
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	updated, err := c.UpdateTodo(context.Background(), model.Todo{ID: 4, Title: "edited"})

	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Title)
}

func TestDeleteTodo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/todos/9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	assert.NoError(t, c.DeleteTodo(context.Background(), 9))
}

func TestReorderTodos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/todos/reorder", r.URL.Path)
		var got map[string][]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, []int{3, 1, 2}, got["todo_orders"])
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	assert.NoError(t, c.ReorderTodos(context.Background(), []int{3, 1, 2}))
}

func TestAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"status 'undone' is no longer accepted, use 'pending'"}`))
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	_, err := c.CreateTodo(context.Background(), model.Todo{Title: "x", Status: "undone"})

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "undone")
}

func TestGetProject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/projects/2", r.URL.Path)
		json.NewEncoder(w).Encode(model.Project{ID: 2, Name: "Home"})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	project, err := c.GetProject(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, "Home", project.Name)
}
