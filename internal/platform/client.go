package platform

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hienthq-zcv/admin-service/internal/model"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// API is the surface of the upstream platform consumed by the admin panel.
type API interface {
	ListCommunityPosts(ctx context.Context) ([]model.Post, error)
	DeleteCommunityPost(ctx context.Context, id string) error
	FetchStatistics(ctx context.Context) (*model.Statistics, error)
}

type Client struct {
	logger *zap.Logger
	httpClient *http.Client
}

// NewClient builds the single configured client for the platform API.
// onUnauthorized fires once per 401 response, for any request, before the
// response reaches its caller.
func NewClient(logger *zap.Logger, tokens TokenSource, onUnauthorized func()) *Client {
	return &Client{
		logger: logger,
		httpClient: &http.Client{
			Timeout: time.Second * 10,
			Transport: &authTransport{
				base: http.DefaultTransport,
				tokens: tokens,
				onUnauthorized: onUnauthorized,
			},
		},
	}
}

func (c *Client) ListCommunityPosts(ctx context.Context) ([]model.Post, error) {
	endpoint := "/community"

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	posts, _, err := DecodePostList(body)
	if err != nil {
		c.logger.Sugar().Errorf("unrecognized response shape from platform endpoint(%s)", endpoint)
		return nil, err
	}

	return posts, nil
}

func (c *Client) DeleteCommunityPost(ctx context.Context, id string) error {
	endpoint := "/community/" + url.PathEscape(id)
	requestURL := viper.GetString("platform.origin") + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, requestURL, nil)
	if err != nil {
		c.logger.Sugar().Errorf("failed to create platform request: %s", err.Error())
		return ErrRequestFailed
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Sugar().Errorf("failed to send request to platform endpoint(%s): %s", endpoint, err.Error())
		return ErrRequestFailed
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Sugar().Errorf("ERROR from platform endpoint(%s), code(%d)", endpoint, resp.StatusCode)
		return ErrUnexpectedStatus
	}

	return nil
}

func (c *Client) FetchStatistics(ctx context.Context) (*model.Statistics, error) {
	endpoint := viper.GetString("platform.statistics_path")
	if endpoint == "" {
		endpoint = "/admin/statistics"
	}

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var stats model.Statistics
	if err := DecodeStatistics(body, &stats); err != nil {
		c.logger.Sugar().Errorf("failed to decode statistics response from platform: %s", err.Error())
		return nil, ErrUnrecognizedShape
	}

	return &stats, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	requestURL := viper.GetString("platform.origin") + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		c.logger.Sugar().Errorf("failed to create platform request: %s", err.Error())
		return nil, ErrRequestFailed
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Sugar().Errorf("failed to send request to platform endpoint(%s): %s", endpoint, err.Error())
		return nil, ErrRequestFailed
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Sugar().Errorf("failed to read response body from platform endpoint(%s): %s", endpoint, err.Error())
		return nil, ErrRequestFailed
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Sugar().Errorf("ERROR from platform endpoint(%s), code(%d)", endpoint, resp.StatusCode)
		return nil, ErrUnexpectedStatus
	}

	return body, nil
}
