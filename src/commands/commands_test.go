package commands

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hendrywilliam/launchpad/src/interactions"
	"github.com/hendrywilliam/launchpad/src/rest"
	"github.com/hendrywilliam/launchpad/src/structs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefinitions(t *testing.T) {
	defs := Definitions()
	require.Len(t, defs, 1)

	activities := defs[0]
	assert.Contains(t, activities.Name, interactions.ActivitiesPrefix)
	require.Len(t, activities.Options, 2)
	assert.Equal(t, structs.AppCmdOptionTypeString, activities.Options[0].Type)
	assert.Equal(t, structs.AppCmdOptionTypeChannel, activities.Options[1].Type)
	assert.NotEmpty(t, activities.Options[0].Choices)
}

func TestBulkOverwrite(t *testing.T) {
	var (
		gotMethod string
		gotPath   string
		gotCmds   []structs.AppCmd
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotCmds))
		_, _ = w.Write([]byte(`[{"id":"10","name":"activities","description":"d"}]`))
	}))
	defer srv.Close()

	api := New(rest.NewREST(srv.URL+"/api/v10", "token", time.Second))
	registered, err := api.BulkOverwrite(context.Background(), "42", Definitions())
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/v10/applications/42/commands", gotPath)
	require.Len(t, gotCmds, 1)
	assert.Equal(t, "activities", gotCmds[0].Name)
	require.Len(t, registered, 1)
	assert.Equal(t, "10", registered[0].ID)
}

func TestBulkOverwrite_NoApplicationID(t *testing.T) {
	api := New(rest.NewREST("http://localhost", "token", time.Second))
	_, err := api.BulkOverwrite(context.Background(), "", Definitions())
	require.ErrorIs(t, err, ErrNoApplicationID)
}

func TestBulkOverwrite_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"401: Unauthorized","code":0}`))
	}))
	defer srv.Close()

	api := New(rest.NewREST(srv.URL, "bad", time.Second))
	_, err := api.BulkOverwrite(context.Background(), "42", Definitions())
	var httpErr *rest.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
}
