package interviews

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://interviews.tools/api"

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the interviews backend. The auth token is held per
// instance and sent as a bearer header on every request; without a token
// requests go out unauthenticated and the server answers 401.
type Client struct {
	baseURL     string
	httpClient  HTTPClient
	rateLimiter *rate.Limiter
	validate    *validator.Validate

	mu        sync.RWMutex
	authToken string
}

func NewClient() *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{},
		validate:   validator.New(),
	}
}

func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

func (c *Client) SetAuthToken(token string) {
	c.mu.Lock()
	c.authToken = token
	c.mu.Unlock()
}

func (c *Client) FetchCompanies(ctx context.Context) ([]APICompany, error) {

	body, err := c.sendRequest(ctx, http.MethodGet, c.baseURL+"/companies", nil)
	if err != nil {
		return nil, err
	}

	var companies []APICompany
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&companies); err != nil {
		return nil, &DecodingError{Err: err}
	}

	return companies, nil
}

func (c *Client) FetchInterviews(ctx context.Context, parameters FetchParameters) ([]APIInterview, error) {

	if err := parameters.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	apiURL := c.baseURL + "/interviews"
	if params := parameters.ToUrlParams(); len(params) > 0 {
		apiURL += "?" + params.Encode()
	}

	body, err := c.sendRequest(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, err
	}

	var interviews []APIInterview
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&interviews); err != nil {
		return nil, &DecodingError{Err: err}
	}

	return interviews, nil
}

func (c *Client) CreateInterview(ctx context.Context, request CreateInterviewRequest) (*APIInterview, error) {

	if err := c.validate.Struct(request); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}

	body, err := c.sendRequest(ctx, http.MethodPost, c.baseURL+"/interview", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	var interview APIInterview
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&interview); err != nil {
		return nil, &DecodingError{Err: err}
	}

	return &interview, nil
}

func (c *Client) UpdateInterview(ctx context.Context, id int, request UpdateInterviewRequest) (*APIInterview, error) {

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}

	apiURL := fmt.Sprintf("%s/interview/%d", c.baseURL, id)
	body, err := c.sendRequest(ctx, http.MethodPut, apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	var interview APIInterview
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&interview); err != nil {
		return nil, &DecodingError{Err: err}
	}

	return &interview, nil
}

func (c *Client) sendRequest(ctx context.Context, method string, url string, body io.Reader) ([]byte, error) {

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	c.mu.RLock()
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}
	c.mu.RUnlock()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

func (c *Client) handleResponse(resp *http.Response) ([]byte, error) {

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ServerError{StatusCode: resp.StatusCode, Message: serverMessage(resp.StatusCode, body)}
	}

	return body, nil
}

// serverMessage extracts the message from an error body on a best-effort
// basis, falling back to "HTTP <code>".
func serverMessage(statusCode int, body []byte) string {
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != nil && *errResp.Message != "" {
		return *errResp.Message
	}
	return fmt.Sprintf("HTTP %d", statusCode)
}
