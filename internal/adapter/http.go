package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/saarzint/candle-recall/internal/config"
	"github.com/saarzint/candle-recall/internal/logger"
	"github.com/saarzint/candle-recall/internal/utils"
	"github.com/saarzint/candle-recall/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.BaseURL and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// request starts a request bound to ctx that carries the bearer token when
// one is set.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}

// send executes req and maps transport and status failures. op names the
// call in error messages and logs.
func (h *httpServerAdapter) send(req *resty.Request, method, path, op string) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpServerAdapter."+op).Msg("request failed")
		return nil, fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().
			Str("func", "*httpServerAdapter."+op).
			Int("status", resp.StatusCode()).
			Err(err).
			Msg("server rejected request")
		return resp, err
	}
	return resp, nil
}

// Register implements [ServerAdapter]. It POSTs the sign-up form to
// POST /api/auth/register and keeps the bearer token from the Authorization
// response header.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, req, "/api/auth/register", "Register")
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login and keeps the bearer token from the Authorization
// response header.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	return h.authenticate(ctx, req, "/api/auth/login", "Login")
}

func (h *httpServerAdapter) authenticate(ctx context.Context, body any, path, op string) (models.AuthResponse, error) {
	var result models.AuthResponse

	resp, err := h.send(h.request(ctx).SetBody(body).SetResult(&result), resty.MethodPost, path, op)
	if err != nil {
		return models.AuthResponse{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrNoAuthToken, err)
	}

	h.SetToken(token)
	result.Token = token
	return result, nil
}

// ForgotPassword implements [ServerAdapter]. POST /api/auth/password/forgot.
func (h *httpServerAdapter) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) (models.ForgotPasswordResponse, error) {
	var result models.ForgotPasswordResponse
	_, err := h.send(h.request(ctx).SetBody(req).SetResult(&result), resty.MethodPost, "/api/auth/password/forgot", "ForgotPassword")
	return result, err
}

// ResetPassword implements [ServerAdapter]. POST /api/auth/password/reset.
func (h *httpServerAdapter) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	_, err := h.send(h.request(ctx).SetBody(req), resty.MethodPost, "/api/auth/password/reset", "ResetPassword")
	return err
}

// Profile implements [ServerAdapter]. GET /api/account.
func (h *httpServerAdapter) Profile(ctx context.Context) (models.Profile, error) {
	var result models.Profile
	_, err := h.send(h.request(ctx).SetResult(&result), resty.MethodGet, "/api/account", "Profile")
	return result, err
}

// ChangeUsername implements [ServerAdapter]. PUT /api/account/username.
func (h *httpServerAdapter) ChangeUsername(ctx context.Context, req models.UsernameChangeRequest) (models.Profile, error) {
	var result models.Profile
	_, err := h.send(h.request(ctx).SetBody(req).SetResult(&result), resty.MethodPut, "/api/account/username", "ChangeUsername")
	return result, err
}

// ChangePassword implements [ServerAdapter]. PUT /api/account/password.
func (h *httpServerAdapter) ChangePassword(ctx context.Context, req models.PasswordChangeRequest) error {
	_, err := h.send(h.request(ctx).SetBody(req), resty.MethodPut, "/api/account/password", "ChangePassword")
	return err
}

// StartEmailChange implements [ServerAdapter]. POST /api/account/email/password.
func (h *httpServerAdapter) StartEmailChange(ctx context.Context, req models.PasswordConfirmRequest) (models.EmailChangeState, error) {
	return h.emailStep(ctx, req, "/api/account/email/password", "StartEmailChange")
}

// VerifyCurrentEmail implements [ServerAdapter]. POST /api/account/email/code.
func (h *httpServerAdapter) VerifyCurrentEmail(ctx context.Context, req models.CodeRequest) (models.EmailChangeState, error) {
	return h.emailStep(ctx, req, "/api/account/email/code", "VerifyCurrentEmail")
}

// SubmitNewEmail implements [ServerAdapter]. POST /api/account/email/new.
func (h *httpServerAdapter) SubmitNewEmail(ctx context.Context, req models.NewEmailRequest) (models.EmailChangeState, error) {
	return h.emailStep(ctx, req, "/api/account/email/new", "SubmitNewEmail")
}

// ResendEmailCode implements [ServerAdapter]. POST /api/account/email/resend.
func (h *httpServerAdapter) ResendEmailCode(ctx context.Context) (models.EmailChangeState, error) {
	return h.emailStep(ctx, nil, "/api/account/email/resend", "ResendEmailCode")
}

func (h *httpServerAdapter) emailStep(ctx context.Context, body any, path, op string) (models.EmailChangeState, error) {
	var result models.EmailChangeState
	req := h.request(ctx).SetResult(&result)
	if body != nil {
		req.SetBody(body)
	}
	_, err := h.send(req, resty.MethodPost, path, op)
	return result, err
}

// ConfirmNewEmail implements [ServerAdapter]. POST /api/account/email/confirm.
func (h *httpServerAdapter) ConfirmNewEmail(ctx context.Context, req models.CodeRequest) (models.Profile, error) {
	var result models.Profile
	_, err := h.send(h.request(ctx).SetBody(req).SetResult(&result), resty.MethodPost, "/api/account/email/confirm", "ConfirmNewEmail")
	return result, err
}

// RequestDeletionCode implements [ServerAdapter]. POST /api/account/delete/code.
func (h *httpServerAdapter) RequestDeletionCode(ctx context.Context) (models.CodeSentResponse, error) {
	var result models.CodeSentResponse
	_, err := h.send(h.request(ctx).SetResult(&result), resty.MethodPost, "/api/account/delete/code", "RequestDeletionCode")
	return result, err
}

// DeleteAccount implements [ServerAdapter]. DELETE /api/account.
func (h *httpServerAdapter) DeleteAccount(ctx context.Context, req models.DeleteAccountRequest) error {
	_, err := h.send(h.request(ctx).SetBody(req), resty.MethodDelete, "/api/account", "DeleteAccount")
	return err
}

// CreateReport implements [ServerAdapter]. POST /api/reports.
func (h *httpServerAdapter) CreateReport(ctx context.Context, req models.ReportCreateRequest) (models.Report, error) {
	var result models.Report
	_, err := h.send(h.request(ctx).SetBody(req).SetResult(&result), resty.MethodPost, "/api/reports", "CreateReport")
	return result, err
}

// ListReports implements [ServerAdapter]. GET /api/reports with the
// non-empty filter values as query parameters.
func (h *httpServerAdapter) ListReports(ctx context.Context, filter models.ReportFilter) (models.ReportList, error) {
	var result models.ReportList

	req := h.request(ctx).SetResult(&result)
	if filter.Tag != "" {
		req.SetQueryParam("tag", filter.Tag)
	}
	if filter.Period != "" {
		req.SetQueryParam("period", string(filter.Period))
	}
	if filter.Sort != "" {
		req.SetQueryParam("sort", string(filter.Sort))
	}

	_, err := h.send(req, resty.MethodGet, "/api/reports", "ListReports")
	return result, err
}

// GetReport implements [ServerAdapter]. GET /api/reports/{id}.
func (h *httpServerAdapter) GetReport(ctx context.Context, reportID int64) (models.Report, error) {
	var result models.Report
	req := h.request(ctx).SetPathParam("id", strconv.FormatInt(reportID, 10)).SetResult(&result)
	_, err := h.send(req, resty.MethodGet, "/api/reports/{id}", "GetReport")
	return result, err
}

// UpdateReport implements [ServerAdapter]. PUT /api/reports/{id}.
func (h *httpServerAdapter) UpdateReport(ctx context.Context, reportID int64, body models.ReportUpdateRequest) (models.Report, error) {
	var result models.Report
	req := h.request(ctx).SetPathParam("id", strconv.FormatInt(reportID, 10)).SetBody(body).SetResult(&result)
	_, err := h.send(req, resty.MethodPut, "/api/reports/{id}", "UpdateReport")
	return result, err
}

// DeleteReport implements [ServerAdapter]. DELETE /api/reports/{id}.
func (h *httpServerAdapter) DeleteReport(ctx context.Context, reportID int64) error {
	req := h.request(ctx).SetPathParam("id", strconv.FormatInt(reportID, 10))
	_, err := h.send(req, resty.MethodDelete, "/api/reports/{id}", "DeleteReport")
	return err
}

// AddTag implements [ServerAdapter]. POST /api/reports/{id}/tags.
func (h *httpServerAdapter) AddTag(ctx context.Context, reportID int64, body models.TagRequest) (models.Report, error) {
	var result models.Report
	req := h.request(ctx).SetPathParam("id", strconv.FormatInt(reportID, 10)).SetBody(body).SetResult(&result)
	_, err := h.send(req, resty.MethodPost, "/api/reports/{id}/tags", "AddTag")
	return result, err
}

// RemoveTag implements [ServerAdapter]. DELETE /api/reports/{id}/tags/{tag};
// resty escapes the tag.
func (h *httpServerAdapter) RemoveTag(ctx context.Context, reportID int64, tag string) (models.Report, error) {
	var result models.Report
	req := h.request(ctx).
		SetPathParams(map[string]string{"id": strconv.FormatInt(reportID, 10), "tag": tag}).
		SetResult(&result)
	_, err := h.send(req, resty.MethodDelete, "/api/reports/{id}/tags/{tag}", "RemoveTag")
	return result, err
}

// ListTags implements [ServerAdapter]. GET /api/reports/tags.
func (h *httpServerAdapter) ListTags(ctx context.Context) ([]string, error) {
	var result []string
	_, err := h.send(h.request(ctx).SetResult(&result), resty.MethodGet, "/api/reports/tags", "ListTags")
	return result, err
}

// Version implements [ServerAdapter]. GET /api/version answers plain text.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.send(h.request(ctx).SetHeader("Accept", "text/plain"), resty.MethodGet, "/api/version", "Version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}
