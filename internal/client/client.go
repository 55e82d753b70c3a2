package client

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/adhd-selfcheck/backend/internal/api"
)

// APIError is a non-2xx reply from the server.
type APIError struct {
	StatusCode int
	Message    string
	Details    []string
}

func (e *APIError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server returned %d: %s (%s)", e.StatusCode, e.Message, strings.Join(e.Details, "; "))
}

// Client talks to the self-check HTTP API.
type Client struct {
	http *resty.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

type submitBody struct {
	Answers []int `json:"answers"`
}

func (c *Client) Questions(ctx context.Context) (*api.CatalogResponse, error) {
	var out api.CatalogResponse
	if err := c.do(c.request(ctx, &out), "GET", "/api/questions"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Score previews answers without storing them.
func (c *Client) Score(ctx context.Context, answers []int) (*api.EvaluationResponse, error) {
	var out api.EvaluationResponse
	req := c.request(ctx, &out).SetBody(submitBody{Answers: answers})
	if err := c.do(req, "POST", "/api/score"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Submit(ctx context.Context, answers []int) (*api.SubmitAssessmentResponse, error) {
	var out api.SubmitAssessmentResponse
	req := c.request(ctx, &out).SetBody(submitBody{Answers: answers})
	if err := c.do(req, "POST", "/api/assessments"); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Get(ctx context.Context, id int64) (*api.AssessmentResponse, error) {
	var out api.AssessmentResponse
	if err := c.do(c.request(ctx, &out), "GET", "/api/assessments/"+strconv.FormatInt(id, 10)); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Report(ctx context.Context, id int64) (*api.ReportResponse, error) {
	var out api.ReportResponse
	path := "/api/assessments/" + strconv.FormatInt(id, 10) + "/report"
	if err := c.do(c.request(ctx, &out), "GET", path); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) List(ctx context.Context) ([]api.AssessmentResponse, error) {
	var out []api.AssessmentResponse
	if err := c.do(c.request(ctx, &out), "GET", "/api/assessments"); err != nil {
		return nil, err
	}
	return out, nil
}

// ExportXLSX downloads the spreadsheet export.
func (c *Client) ExportXLSX(ctx context.Context) ([]byte, error) {
	req := c.http.R().SetContext(ctx).SetError(&api.ErrorResponse{})
	resp, err := c.execute(req, "GET", "/api/export.xlsx")
	if err != nil {
		return nil, err
	}
	return resp.Body(), nil
}

func (c *Client) request(ctx context.Context, result any) *resty.Request {
	return c.http.R().
		SetContext(ctx).
		SetResult(result).
		SetError(&api.ErrorResponse{})
}

func (c *Client) do(req *resty.Request, method, path string) error {
	_, err := c.execute(req, method, path)
	return err
}

func (c *Client) execute(req *resty.Request, method, path string) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		apiErr := &APIError{StatusCode: resp.StatusCode(), Message: resp.Status()}
		if body, ok := resp.Error().(*api.ErrorResponse); ok && body.Message != "" {
			apiErr.Message = body.Message
			apiErr.Details = body.Errors
		}
		return nil, apiErr
	}
	return resp, nil
}
