package opentdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"space-trivia-service/internal/domain"
)

// DefaultBaseURL is the public Open Trivia DB endpoint.
const DefaultBaseURL = "https://opentdb.com/api.php"

// Client fetches multiple-choice questions from the Open Trivia DB API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

type apiResponse struct {
	ResponseCode int                   `json:"response_code"`
	Results      []domain.BankQuestion `json:"results"`
}

// Fetch requests count questions for the given difficulty and category.
// Difficulty "any" and unknown categories widen the query instead of failing.
func (c *Client) Fetch(ctx context.Context, count int, difficulty, category string) ([]domain.BankQuestion, error) {
	query := url.Values{}
	query.Set("amount", fmt.Sprintf("%d", count))
	query.Set("type", "multiple")
	if difficulty != "" && difficulty != "any" {
		query.Set("difficulty", difficulty)
	}
	if id, ok := CategoryID(category); ok {
		query.Set("category", id)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build trivia request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch trivia questions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("trivia api status %d", resp.StatusCode)
	}

	var decoded apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode trivia response: %w", err)
	}
	if decoded.ResponseCode != 0 {
		return nil, fmt.Errorf("trivia api response code %d", decoded.ResponseCode)
	}
	if len(decoded.Results) == 0 {
		return nil, fmt.Errorf("trivia api returned no questions")
	}
	return decoded.Results, nil
}
