package platform

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

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// Doer abstracts *http.Client for testing.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a thin JSON client for the advertising platform API, bound to
// one access token. Remote rejections are surfaced as *domain.RemoteError
// with the platform's message kept verbatim; transport failures are wrapped
// and never retried here — the caller owns retry policy.
type Client struct {
	baseURL    string
	token      string
	httpClient Doer
}

// NewClient creates a client for the given API base URL and access token.
// The timeout applies to every request.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + "/",
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SetHTTPClient replaces the underlying HTTP client (useful for testing).
func (c *Client) SetHTTPClient(d Doer) {
	c.httpClient = d
}

// do performs an authenticated JSON request and returns the raw response
// body after error-envelope checking.
func (c *Client) do(ctx context.Context, method, endpoint string, query url.Values, body any) ([]byte, error) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	reqURL := c.baseURL + endpoint
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if remoteErr := decodeError(respBody); remoteErr != nil {
		return nil, remoteErr
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d from %s %s: %s", resp.StatusCode, method, endpoint, respBody)
	}

	return respBody, nil
}

// decodeError returns the platform's error envelope as a RemoteError, or
// nil when the body carries none.
func decodeError(body []byte) *domain.RemoteError {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil
	}
	if env.Error != nil {
		return &domain.RemoteError{Code: env.Error.Code, Message: env.Error.Message}
	}
	if env.Code != "" && env.Message != "" {
		return &domain.RemoteError{Code: env.Code, Message: env.Message}
	}
	return nil
}

// ListURLObjects lists existing destination URL objects of the given type
// (single page).
func (c *Client) ListURLObjects(ctx context.Context, objectType string, limit int) ([]domain.UrlObject, error) {
	query := url.Values{}
	if objectType != "" {
		query.Set("_url_object_type", objectType)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	respBody, err := c.do(ctx, http.MethodGet, "urls.json", query, nil)
	if err != nil {
		return nil, err
	}

	var list urlObjectList
	if err := json.Unmarshal(respBody, &list); err != nil {
		return nil, fmt.Errorf("parse url objects response: %w", err)
	}
	return list.Items, nil
}

// CreateURLObject registers a new destination URL object.
func (c *Client) CreateURLObject(ctx context.Context, obj domain.UrlObject) (*domain.UrlObject, error) {
	respBody, err := c.do(ctx, http.MethodPost, "urls.json", nil, obj)
	if err != nil {
		return nil, err
	}

	var created domain.UrlObject
	if err := json.Unmarshal(respBody, &created); err != nil {
		return nil, fmt.Errorf("parse url object response: %w", err)
	}
	if created.ID == 0 {
		return nil, port.ErrMissingDestinationID
	}
	return &created, nil
}

// CreateAdPlan submits a campaign with nested ad groups and banners. The
// response may omit the ad groups; reconciliation is the caller's concern.
func (c *Client) CreateAdPlan(ctx context.Context, plan domain.AdPlan) (*port.AdPlanResponse, error) {
	respBody, err := c.do(ctx, http.MethodPost, "ad_plans.json", nil, plan)
	if err != nil {
		return nil, err
	}

	var created adPlanCreated
	if err := json.Unmarshal(respBody, &created); err != nil {
		return nil, fmt.Errorf("parse ad plan response: %w", err)
	}

	resp := &port.AdPlanResponse{ID: created.ID}
	for _, g := range created.AdGroups {
		resp.AdGroups = append(resp.AdGroups, toCreatedAdGroup(g))
	}
	return resp, nil
}

// ListAdGroups lists ad groups of a plan with their banner ids.
func (c *Client) ListAdGroups(ctx context.Context, adPlanID int64, limit int) ([]port.CreatedAdGroup, error) {
	query := url.Values{}
	query.Set("_ad_plan_id", strconv.FormatInt(adPlanID, 10))
	query.Set("fields", "id,banners")
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	respBody, err := c.do(ctx, http.MethodGet, "ad_groups.json", query, nil)
	if err != nil {
		return nil, err
	}

	var list adGroupList
	if err := json.Unmarshal(respBody, &list); err != nil {
		return nil, fmt.Errorf("parse ad groups response: %w", err)
	}

	groups := make([]port.CreatedAdGroup, 0, len(list.Items))
	for _, g := range list.Items {
		groups = append(groups, toCreatedAdGroup(g))
	}
	return groups, nil
}

// GetAdGroup fetches one ad group by id.
func (c *Client) GetAdGroup(ctx context.Context, adGroupID int64) (*port.AdGroupInfo, error) {
	endpoint := fmt.Sprintf("ad_groups/%d.json", adGroupID)
	respBody, err := c.do(ctx, http.MethodGet, endpoint, nil, nil)
	if err != nil {
		return nil, err
	}

	var item adGroupItem
	if err := json.Unmarshal(respBody, &item); err != nil {
		return nil, fmt.Errorf("parse ad group response: %w", err)
	}
	if item.ID == 0 {
		return nil, &domain.RemoteError{Message: fmt.Sprintf("ad group %d not found", adGroupID)}
	}
	return &port.AdGroupInfo{ID: item.ID, Name: item.Name, AdPlanID: item.AdPlanID}, nil
}

// DuplicateAdGroup creates one duplicate of the source ad group.
func (c *Client) DuplicateAdGroup(ctx context.Context, adGroupID int64) (int64, error) {
	endpoint := fmt.Sprintf("ad_groups/%d/duplicate.json", adGroupID)
	respBody, err := c.do(ctx, http.MethodPost, endpoint, nil, struct{}{})
	if err != nil {
		return 0, err
	}

	var created adGroupCreated
	if err := json.Unmarshal(respBody, &created); err != nil {
		return 0, fmt.Errorf("parse duplicate response: %w", err)
	}
	if created.ID == 0 {
		return 0, fmt.Errorf("duplicate of ad group %d returned no id", adGroupID)
	}
	return created.ID, nil
}

func toCreatedAdGroup(item adGroupItem) port.CreatedAdGroup {
	g := port.CreatedAdGroup{ID: item.ID}
	for _, b := range item.Banners {
		g.Banners = append(g.Banners, b.ID)
	}
	return g
}
