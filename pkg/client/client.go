package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/edudham/edudham-api/internal/models"
	"github.com/edudham/edudham-api/pkg/directory"
	appErrors "github.com/edudham/edudham-api/pkg/errors"
)

// TokenSource supplies the bearer token attached to authenticated
// requests. An empty string sends the request anonymously.
type TokenSource func() string

// Client is the typed gateway to the Edu Dham API. All responses travel
// in the common envelope; errors come back as *errors.Error carrying the
// server's code and status.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

// Download is a server-generated file, typically an export or template.
type Download struct {
	Filename    string
	ContentType string
	Data        []byte
}

// UploadedFile mirrors the server's upload response.
type UploadedFile struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// New builds a client against baseURL, e.g. "http://localhost:8080/api".
// token may be nil for anonymous use.
func New(baseURL string, token TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		token:   token,
	}
}

type envelope struct {
	Data  json.RawMessage  `json:"data"`
	Error *appErrors.Error `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp.StatusCode, raw)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, resp.StatusCode, "malformed response body")
	}
	if len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}
	return req, nil
}

func decodeError(status int, raw []byte) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Error != nil {
		env.Error.Status = status
		return env.Error
	}
	return appErrors.New(appErrors.ErrInternal.Code, status, fmt.Sprintf("request failed with status %d", status))
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*models.TokenResponse, error) {
	var out models.TokenResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, models.LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a student account.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.TokenResponse, error) {
	var out models.TokenResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RequestPasswordOTP starts the reset flow for an account email.
func (c *Client) RequestPasswordOTP(ctx context.Context, email string) (*models.OTPRequestResponse, error) {
	var out models.OTPRequestResponse
	if err := c.do(ctx, http.MethodPost, "/auth/forgot-password", nil, models.OTPRequest{Email: email}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetPassword completes the reset flow with the delivered code.
func (c *Client) ResetPassword(ctx context.Context, req models.OTPVerifyRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/reset-password", nil, req, nil)
}

// Me returns the account behind the current token.
func (c *Client) Me(ctx context.Context) (*models.UserInfo, error) {
	var out models.UserInfo
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUniversities fetches listings, optionally constrained server-side.
// It satisfies directory.Lister.
func (c *Client) ListUniversities(ctx context.Context, f directory.Filter) ([]models.University, error) {
	query := url.Values{}
	if f.Query != "" {
		query.Set("search", f.Query)
	}
	if f.Location != "" {
		query.Set("location", f.Location)
	}
	if f.Category != "" {
		query.Set("category", f.Category)
	}
	var out []models.University
	if err := c.do(ctx, http.MethodGet, "/universities", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetUniversity fetches one listing.
func (c *Client) GetUniversity(ctx context.Context, id string) (*models.University, error) {
	var out models.University
	if err := c.do(ctx, http.MethodGet, "/universities/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FilterOptions fetches the dropdown vocabulary for the listing screen.
func (c *Client) FilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	var out models.FilterOptions
	if err := c.do(ctx, http.MethodGet, "/universities/filters/options", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateUniversity adds a listing.
func (c *Client) CreateUniversity(ctx context.Context, input models.UniversityInput) (*models.University, error) {
	var out models.University
	if err := c.do(ctx, http.MethodPost, "/universities", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUniversity replaces a listing with the full document.
func (c *Client) UpdateUniversity(ctx context.Context, id string, input models.UniversityInput) (*models.University, error) {
	var out models.University
	if err := c.do(ctx, http.MethodPut, "/universities/"+url.PathEscape(id), nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUniversity removes a listing.
func (c *Client) DeleteUniversity(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/universities/"+url.PathEscape(id), nil, nil, nil)
}

// Categories lists the admin-curated category vocabulary.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CategoryNames returns just the names, for the course editor's
// vocabulary fallback.
func (c *Client) CategoryNames(ctx context.Context) ([]string, error) {
	categories, err := c.Categories(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(categories))
	for _, cat := range categories {
		names = append(names, cat.Name)
	}
	return names, nil
}

// CreateApplication submits a lead against a university.
func (c *Client) CreateApplication(ctx context.Context, input models.ApplicationInput) (*models.Application, error) {
	var out models.Application
	if err := c.do(ctx, http.MethodPost, "/applications", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListApplications returns the leads visible to the current account.
func (c *Client) ListApplications(ctx context.Context) ([]models.Application, error) {
	var out []models.Application
	if err := c.do(ctx, http.MethodGet, "/applications", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListUniversityApplications returns the leads against one university.
func (c *Client) ListUniversityApplications(ctx context.Context, universityID string) ([]models.Application, error) {
	var out []models.Application
	if err := c.do(ctx, http.MethodGet, "/universities/"+url.PathEscape(universityID)+"/applications", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateApplicationStatus moves a lead through the pipeline.
func (c *Client) UpdateApplicationStatus(ctx context.Context, id, status string) (*models.Application, error) {
	query := url.Values{"status": {status}}
	var out models.Application
	if err := c.do(ctx, http.MethodPut, "/applications/"+url.PathEscape(id)+"/status", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteApplication removes a lead.
func (c *Client) DeleteApplication(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/applications/"+url.PathEscape(id), nil, nil, nil)
}

// ExportApplications downloads the lead sheet in the given format
// (xlsx, csv or pdf). universityID narrows the export when non-empty.
func (c *Client) ExportApplications(ctx context.Context, universityID, format string) (*Download, error) {
	query := url.Values{}
	if universityID != "" {
		query.Set("university_id", universityID)
	}
	if format != "" {
		query.Set("format", format)
	}
	return c.download(ctx, "/applications/export", query)
}

// AdminStats fetches the dashboard counters.
func (c *Client) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	var out models.AdminStats
	if err := c.do(ctx, http.MethodGet, "/admin/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// HomepageConfig fetches the homepage configuration, defaults included.
func (c *Client) HomepageConfig(ctx context.Context) (*models.HomepageConfig, error) {
	var out models.HomepageConfig
	if err := c.do(ctx, http.MethodGet, "/homepage-config", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateHomepage saves the full homepage configuration in one call. It
// satisfies editor.HomepageSaver.
func (c *Client) UpdateHomepage(ctx context.Context, input models.HomepageConfigInput) (*models.HomepageConfig, error) {
	var out models.HomepageConfig
	if err := c.do(ctx, http.MethodPut, "/homepage-config", nil, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Branding fetches the lightweight branding block.
func (c *Client) Branding(ctx context.Context) (*models.Branding, error) {
	var out models.Branding
	if err := c.do(ctx, http.MethodGet, "/branding", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadPhoto pushes one image and returns its public URL. It satisfies
// editor.PhotoUploader.
func (c *Client) UploadPhoto(ctx context.Context, filename, contentType string, size int64, r io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/upload/photo", nil, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", decodeError(resp.StatusCode, raw)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, resp.StatusCode, "malformed response body")
	}
	var uploaded UploadedFile
	if err := json.Unmarshal(env.Data, &uploaded); err != nil {
		return "", err
	}
	return uploaded.URL, nil
}

// BulkTemplate downloads the import workbook with the expected columns.
func (c *Client) BulkTemplate(ctx context.Context) (*Download, error) {
	return c.download(ctx, "/universities/bulk-template", nil)
}

// BulkUpload pushes a filled import workbook and returns the row-level
// outcome.
func (c *Client) BulkUpload(ctx context.Context, filename string, data []byte) (*models.BulkImportResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/universities/bulk-upload", nil, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, decodeError(resp.StatusCode, raw)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, resp.StatusCode, "malformed response body")
	}
	var result models.BulkImportResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) download(ctx context.Context, path string, query url.Values) (*Download, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, decodeError(resp.StatusCode, raw)
	}

	download := &Download{
		ContentType: resp.Header.Get("Content-Type"),
		Data:        raw,
	}
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		download.Filename = params["filename"]
	}
	return download, nil
}
