package trends

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"adcraft/pkg/httputil"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "adcraft/1.0"
)

type TwitterClient struct {
	httpClient *httputil.RetryClient
	baseURL    string
	apiKey     string
}

type Tweet struct {
	Text         string
	LikeCount    int
	RetweetCount int
}

type searchResponse struct {
	Data []tweetData `json:"data"`
}

type tweetData struct {
	Text         string `json:"text"`
	LikeCount    int    `json:"like_count"`
	RetweetCount int    `json:"retweet_count"`
}

func NewTwitterClient(baseURL, apiKey string) *TwitterClient {
	return &TwitterClient{
		httpClient: httputil.NewRetryClient(&http.Client{Timeout: defaultTimeout}, httputil.DefaultRetryConfig()),
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

func (c *TwitterClient) SearchTweets(ctx context.Context, query string, maxResults int) ([]Tweet, error) {
	if maxResults <= 0 || maxResults > 100 {
		maxResults = 20
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("max_results", strconv.Itoa(maxResults))
	params.Set("sort_order", "relevancy")

	body, err := c.doRequest(ctx, fmt.Sprintf("%s/tweet/search?%s", c.baseURL, params.Encode()))
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	tweets := make([]Tweet, 0, len(resp.Data))
	for _, data := range resp.Data {
		tweets = append(tweets, tweetFromData(data))
	}

	return tweets, nil
}

func (c *TwitterClient) doRequest(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("twitter api error: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	return body, nil
}

func tweetFromData(data tweetData) Tweet {
	return Tweet(data)
}
