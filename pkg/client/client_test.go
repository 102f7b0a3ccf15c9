package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edudham/edudham-api/internal/models"
	"github.com/edudham/edudham-api/pkg/directory"
	appErrors "github.com/edudham/edudham-api/pkg/errors"
)

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, data interface{}) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(map[string]interface{}{"data": data}))
}

func TestClientListUniversitiesSendsFacetsAndBearer(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/universities", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "lucknow", r.URL.Query().Get("search"))
		assert.Equal(t, "Kanpur", r.URL.Query().Get("location"))
		assert.Equal(t, "Engineering", r.URL.Query().Get("category"))
		writeEnvelope(t, w, http.StatusOK, []models.University{{ID: "u1", Name: "IIT Kanpur"}})
	}))
	defer server.Close()

	c := New(server.URL+"/api", func() string { return "token-123" })
	universities, err := c.ListUniversities(context.Background(), directory.Filter{
		Query:    "lucknow",
		Location: "Kanpur",
		Category: "Engineering",
	})
	require.NoError(t, err)
	require.Len(t, universities, 1)
	assert.Equal(t, "IIT Kanpur", universities[0].Name)
	assert.Equal(t, "Bearer token-123", gotAuth)
}

func TestClientAnonymousRequestOmitsBearer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeEnvelope(t, w, http.StatusOK, []models.University{})
	}))
	defer server.Close()

	c := New(server.URL+"/api", nil)
	_, err := c.ListUniversities(context.Background(), directory.Filter{})
	require.NoError(t, err)
}

func TestClientDecodesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":"NOT_FOUND","message":"university not found","status":404}}`))
	}))
	defer server.Close()

	c := New(server.URL+"/api", nil)
	_, err := c.GetUniversity(context.Background(), "missing")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "university not found", appErr.Message)
}

func TestClientLoginDecodesToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)
		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "admin@edudham.com", req.Email)
		writeEnvelope(t, w, http.StatusOK, models.TokenResponse{
			AccessToken: "jwt-token",
			TokenType:   "bearer",
			User:        models.UserInfo{Email: req.Email, Role: models.RoleAdmin},
		})
	}))
	defer server.Close()

	c := New(server.URL+"/api", nil)
	resp, err := c.Login(context.Background(), "admin@edudham.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", resp.AccessToken)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)
}

func TestClientUpdateApplicationStatusUsesQueryParam(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/applications/a1/status", r.URL.Path)
		assert.Equal(t, "completed", r.URL.Query().Get("status"))
		writeEnvelope(t, w, http.StatusOK, models.Application{ID: "a1", Status: "completed"})
	}))
	defer server.Close()

	c := New(server.URL+"/api", nil)
	app, err := c.UpdateApplicationStatus(context.Background(), "a1", "completed")
	require.NoError(t, err)
	assert.Equal(t, "completed", app.Status)
}

func TestClientUploadPhotoSendsMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close() //nolint:errcheck
		assert.Equal(t, "campus.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))
		writeEnvelope(t, w, http.StatusCreated, UploadedFile{URL: "/uploads/abc.png", Filename: "abc.png"})
	}))
	defer server.Close()

	c := New(server.URL+"/api", nil)
	url, err := c.UploadPhoto(context.Background(), "campus.png", "image/png", 4, strings.NewReader("data"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/abc.png", url)
}

func TestClientExportParsesAttachment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "u1", r.URL.Query().Get("university_id"))
		assert.Equal(t, "csv", r.URL.Query().Get("format"))
		w.Header().Set("Content-Disposition", "attachment; filename=applications_20260828.csv")
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("Name,Email\n"))
	}))
	defer server.Close()

	c := New(server.URL+"/api", nil)
	download, err := c.ExportApplications(context.Background(), "u1", "csv")
	require.NoError(t, err)
	assert.Equal(t, "applications_20260828.csv", download.Filename)
	assert.Equal(t, "text/csv", download.ContentType)
	assert.Equal(t, "Name,Email\n", string(download.Data))
}

func TestClientBulkUploadDecodesResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "import.xlsx", header.Filename)
		writeEnvelope(t, w, http.StatusOK, models.BulkImportResult{
			Message:      "Created 2 universities",
			CreatedCount: 2,
		})
	}))
	defer server.Close()

	c := New(server.URL+"/api", nil)
	result, err := c.BulkUpload(context.Background(), "import.xlsx", []byte("workbook"))
	require.NoError(t, err)
	assert.Equal(t, 2, result.CreatedCount)
}
