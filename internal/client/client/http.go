package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/expensetracker/internal/client/models"
	"github.com/dmitrijs2005/expensetracker/internal/common"
	"github.com/dmitrijs2005/expensetracker/internal/logging"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	contentTypeJSON = "application/json"
	contentTypeForm = "application/x-www-form-urlencoded"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	log     logging.Logger
}

type Option func(*HTTPClient)

func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.http = c }
}

// WithTimeout bounds every request; zero means no client-side timeout.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTPClient) { h.timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(h *HTTPClient) { h.log = l }
}

func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ Client = (*HTTPClient)(nil)

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email string) error {
	body := map[string]string{"name": name, "email": email}
	return c.doJSON(ctx, http.MethodPost, "/auth/register", body, nil)
}

type loginResponse struct {
	User *models.User `json:"user"`
}

func (c *HTTPClient) Login(ctx context.Context, email, name string) (*models.User, error) {
	body := map[string]string{"email": email, "name": name}

	var resp loginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	if !resp.User.Valid() {
		return nil, fmt.Errorf("%w: login response carries no user", ErrUnavailable)
	}
	return resp.User, nil
}

func (c *HTTPClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.doJSON(ctx, http.MethodGet, "/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateCategory(ctx context.Context, name string) error {
	return c.doJSON(ctx, http.MethodPost, "/categories", map[string]string{"name": name}, nil)
}

func (c *HTTPClient) DeleteCategory(ctx context.Context, id int64, userEmail string) (*models.DeleteResult, error) {
	path := "/categories/" + strconv.FormatInt(id, 10) + "?" + url.Values{"userEmail": {userEmail}}.Encode()

	var out models.DeleteResult
	if err := c.doJSON(ctx, http.MethodDelete, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RenameCategory replaces the category's name. The server addresses a single
// category under /category, not /categories.
func (c *HTTPClient) RenameCategory(ctx context.Context, id int64, name string) error {
	body := models.Category{ID: id, Name: name}
	return c.doJSON(ctx, http.MethodPut, "/category/"+strconv.FormatInt(id, 10), body, nil)
}

func (c *HTTPClient) ListExpenses(ctx context.Context, userID int64) ([]models.Expense, error) {
	var out []models.Expense
	if err := c.doJSON(ctx, http.MethodGet, "/expenses/user/"+strconv.FormatInt(userID, 10), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateExpense(ctx context.Context, userID int64, e models.NewExpense) error {
	form := url.Values{
		"description": {e.Description},
		"amount":      {e.Amount},
		"date":        {e.Date},
		"location":    {e.Location},
		"userId":      {strconv.FormatInt(userID, 10)},
		"categoryId":  {e.CategoryID},
	}
	return c.do(ctx, http.MethodPost, "/expenses/create", contentTypeForm, strings.NewReader(form.Encode()), nil)
}

type idRef struct {
	ID int64 `json:"id"`
}

type expenseBody struct {
	Description string `json:"description"`
	Amount      any    `json:"amount"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	User        idRef  `json:"user"`
	Category    *idRef `json:"category"`
}

// UpdateExpense sends the edited expense as JSON. Values are not validated
// here: an amount that is not a number is sent as a string and a category
// id that is not a number as null, leaving the rejection to the server.
func (c *HTTPClient) UpdateExpense(ctx context.Context, id, userID int64, e models.NewExpense) error {
	body := expenseBody{
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date,
		Location:    e.Location,
		User:        idRef{ID: userID},
	}
	if d, err := decimal.NewFromString(e.Amount); err == nil {
		body.Amount = json.Number(d.String())
	}
	if catID, err := strconv.ParseInt(e.CategoryID, 10, 64); err == nil {
		body.Category = &idRef{ID: catID}
	}
	return c.doJSON(ctx, http.MethodPut, "/expenses/"+strconv.FormatInt(id, 10), body, nil)
}

func (c *HTTPClient) DeleteExpense(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, "/expenses/"+strconv.FormatInt(id, 10), nil, nil)
}

func (c *HTTPClient) MonthlySummary(ctx context.Context, userID int64, year int, month time.Month) (map[string]decimal.Decimal, error) {
	out := map[string]decimal.Decimal{}
	if err := c.doJSON(ctx, http.MethodGet, reportPath("summary", userID, year, month), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) MonthlyTotal(ctx context.Context, userID int64, year int, month time.Month) (decimal.Decimal, error) {
	var out struct {
		Total decimal.NullDecimal `json:"total"`
	}
	if err := c.doJSON(ctx, http.MethodGet, reportPath("total", userID, year, month), nil, &out); err != nil {
		return decimal.Zero, err
	}
	if !out.Total.Valid {
		return decimal.Zero, nil
	}
	return out.Total.Decimal, nil
}

func (c *HTTPClient) MonthlyExpenses(ctx context.Context, userID int64, year int, month time.Month) ([]models.Expense, error) {
	var out []models.Expense
	if err := c.doJSON(ctx, http.MethodGet, reportPath("monthly", userID, year, month), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func reportPath(kind string, userID int64, year int, month time.Month) string {
	return fmt.Sprintf("/expenses/%s/%d/%d/%d", kind, userID, year, int(month))
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, in, out any) error {
	if in == nil {
		return c.do(ctx, method, path, "", nil, out)
	}
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return c.do(ctx, method, path, contentTypeJSON, bytes.NewReader(b), out)
}

func (c *HTTPClient) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", contentTypeJSON)
	reqID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, reqID)

	log := c.log.With("method", method, "path", path, "request_id", reqID)
	log.Debug(ctx, "sending request")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Debug(ctx, "request rejected", "status", resp.StatusCode)
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("%w: empty response body", ErrUnavailable)
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Warn(ctx, "malformed response", "error", err)
		return fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}
	return nil
}

// errorMessage extracts {"message": "..."} from an error body, if any.
func errorMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return ""
	}
	return body.Message
}
