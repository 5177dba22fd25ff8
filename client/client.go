// Package client is a Go facade over the clinic feedback API. It mirrors
// the HTTP surface one method per endpoint and maps the server's error
// envelope onto APIError values.
package client

import (
	"bytes"
	"fmt"
	"time"

	"api/internal/models"
	"api/internal/reporting"

	"github.com/go-resty/resty/v2"
)

// APIError carries the status and error codes returned by the server.
type APIError struct {
	Status int
	Codes  []string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %v", e.Status, e.Codes)
}

type errorEnvelope struct {
	Errors []string `json:"errors"`
}

type Client struct {
	http *resty.Client
}

func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(30 * time.Second),
	}
}

// SetToken installs the bearer token used by all subsequent requests.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

func checkResponse(response *resty.Response, err error) error {
	if err != nil {
		return err
	}
	if response.IsError() {
		envelope, _ := response.Error().(*errorEnvelope)
		apiErr := &APIError{Status: response.StatusCode()}
		if envelope != nil {
			apiErr.Codes = envelope.Errors
		}
		return apiErr
	}
	return nil
}

func get[T any](c *Client, path string, queryParams map[string]string) (T, error) {
	var result T
	request := c.http.R().SetResult(&result).SetError(&errorEnvelope{})
	if queryParams != nil {
		request.SetQueryParams(queryParams)
	}
	response, err := request.Get(path)
	if err := checkResponse(response, err); err != nil {
		return result, err
	}
	return result, nil
}

func post[T any](c *Client, path string, body any) (T, error) {
	var result T
	response, err := c.http.R().
		SetBody(body).
		SetResult(&result).
		SetError(&errorEnvelope{}).
		Post(path)
	if err := checkResponse(response, err); err != nil {
		return result, err
	}
	return result, nil
}

func patch[T any](c *Client, path string, body any) (T, error) {
	var result T
	response, err := c.http.R().
		SetBody(body).
		SetResult(&result).
		SetError(&errorEnvelope{}).
		Patch(path)
	if err := checkResponse(response, err); err != nil {
		return result, err
	}
	return result, nil
}

func del(c *Client, path string) error {
	response, err := c.http.R().SetError(&errorEnvelope{}).Delete(path)
	return checkResponse(response, err)
}

// --- session ---

// Login authenticates and installs the returned token on the client.
func (c *Client) Login(username, password string) (models.LoginResponse, error) {
	result, err := post[models.LoginResponse](c, "/api/login", models.LoginBody{
		Username: username,
		Password: password,
	})
	if err != nil {
		return models.LoginResponse{}, err
	}
	c.SetToken(result.AccessToken)
	return result, nil
}

func (c *Client) CurrentUser() (models.User, error) {
	return get[models.User](c, "/api/user", nil)
}

func (c *Client) UpdateProfile(body models.ProfileBody) (models.User, error) {
	return post[models.User](c, "/api/user/update", body)
}

func (c *Client) ResetPassword(body models.PasswordResetBody) error {
	_, err := post[struct{}](c, "/api/password/reset", body)
	return err
}

// --- dashboard and exports ---

// Dashboard fetches reviews and complaints for an interval. Nil bounds are
// omitted, which the server treats as unbounded.
func (c *Client) Dashboard(after, before *time.Time) (models.DashboardResponse, error) {
	return get[models.DashboardResponse](c, "/api/dashboard", dateBoundParams(after, before))
}

// ExportReviews downloads the review spreadsheet for an interval; nil bounds
// are omitted, same as Dashboard.
func (c *Client) ExportReviews(after, before *time.Time) ([]byte, error) {
	return c.download("/api/export/reviews", dateBoundParams(after, before))
}

func (c *Client) ExportComplaints(after, before *time.Time) ([]byte, error) {
	return c.download("/api/export/complaints", dateBoundParams(after, before))
}

func dateBoundParams(after, before *time.Time) map[string]string {
	queryParams := map[string]string{}
	if after != nil {
		queryParams["date_after"] = reporting.FormatYMD(*after)
	}
	if before != nil {
		queryParams["date_before"] = reporting.FormatYMD(*before)
	}
	return queryParams
}

func (c *Client) download(path string, queryParams map[string]string) ([]byte, error) {
	response, err := c.http.R().
		SetQueryParams(queryParams).
		SetError(&errorEnvelope{}).
		Get(path)
	if err := checkResponse(response, err); err != nil {
		return nil, err
	}
	return response.Body(), nil
}

// --- users (admin) ---

func (c *Client) ListUsers() ([]models.User, error) {
	return get[[]models.User](c, "/api/admin/users", nil)
}

func (c *Client) CreateUser(body models.UserBody) (models.User, error) {
	return post[models.User](c, "/api/admin/users", body)
}

func (c *Client) UpdateUser(id uint, body models.UserBody) (models.User, error) {
	return post[models.User](c, fmt.Sprintf("/api/admin/users/%d", id), body)
}

func (c *Client) DeleteUser(id uint) error {
	return del(c, fmt.Sprintf("/api/admin/users/%d", id))
}

// --- prompts (admin) ---

func (c *Client) ListPrompts() ([]models.Prompt, error) {
	return get[[]models.Prompt](c, "/api/admin/prompts", nil)
}

func (c *Client) GetPrompt(id string) (models.Prompt, error) {
	return get[models.Prompt](c, "/api/admin/prompts/"+id, nil)
}

func (c *Client) SavePrompt(body models.PromptBody) (models.Prompt, error) {
	return post[models.Prompt](c, "/api/admin/prompts", body)
}

func (c *Client) TestPrompt(body models.PromptBody) (models.GeneratedTextResponse, error) {
	return post[models.GeneratedTextResponse](c, "/api/admin/prompts/test", body)
}

// --- images ---

func (c *Client) UploadImage(filename string, content []byte) (models.UploadImageResponse, error) {
	var result models.UploadImageResponse
	response, err := c.http.R().
		SetFileReader("file", filename, bytes.NewReader(content)).
		SetResult(&result).
		SetError(&errorEnvelope{}).
		Post("/api/images/upload")
	if err := checkResponse(response, err); err != nil {
		return models.UploadImageResponse{}, err
	}
	return result, nil
}

// --- messenger linking ---

func (c *Client) TelegramLink() (models.StartLinkResponse, error) {
	return get[models.StartLinkResponse](c, "/api/telegram/link", nil)
}

func (c *Client) TelegramUnlink() error {
	_, err := post[struct{}](c, "/api/telegram/unlink", nil)
	return err
}

func (c *Client) MaxLink() (models.StartLinkResponse, error) {
	return get[models.StartLinkResponse](c, "/api/max/link", nil)
}

func (c *Client) MaxUnlink() error {
	_, err := post[struct{}](c, "/api/max/unlink", nil)
	return err
}

// --- public intake ---

func (c *Client) PublicCatalog() (models.PublicCatalogResponse, error) {
	return get[models.PublicCatalogResponse](c, "/api/public/catalog", nil)
}

func (c *Client) SubmitReview(body models.ReviewBody) (models.Review, error) {
	return post[models.Review](c, "/api/public/reviews", body)
}

func (c *Client) SubmitComplaint(body models.ComplaintBody) (models.Complaint, error) {
	return post[models.Complaint](c, "/api/public/complaints", body)
}
