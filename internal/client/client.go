// Package client is a typed HTTP client for the matchmaker API.
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"matchmaker/internal/audit"
	matchmodels "matchmaker/internal/match/models"
	chatmodels "matchmaker/internal/matchmaker/models"
	onboardingmodels "matchmaker/internal/onboarding/models"
	profilemodels "matchmaker/internal/profile/models"
	"matchmaker/pkg/platform/httputil"
	"matchmaker/pkg/requestcontext"
)

const requestIDHeader = "X-Request-ID"

// APIError is a non-2xx response decoded from the error envelope.
type APIError struct {
	Status      int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("%d %s", e.Status, e.Code)
	}
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Description)
}

type Option func(*Client)

// WithTimeout bounds each request.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.rest.SetTimeout(d) }
}

// WithHTTPClient replaces the underlying transport client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.rest = resty.NewWithClient(hc).SetBaseURL(c.rest.BaseURL)
	}
}

// WithRequestID forwards the request id found in the request context.
func WithRequestID() Option {
	return func(c *Client) {
		c.rest.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if id := requestcontext.RequestID(req.Context()); id != "" {
				req.SetHeader(requestIDHeader, id)
			}
			return nil
		})
	}
}

type Client struct {
	rest *resty.Client
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{rest: resty.New().SetBaseURL(baseURL)}
	for _, opt := range opts {
		opt(c)
	}
	c.rest.SetHeader("Accept", "application/json")
	return c
}

// Onboarding

func (c *Client) State(ctx context.Context) (onboardingmodels.StateResponse, error) {
	return do[onboardingmodels.StateResponse](ctx, c, http.MethodGet, "/onboarding", nil)
}

func (c *Client) Policy(ctx context.Context) (onboardingmodels.PolicyResponse, error) {
	return do[onboardingmodels.PolicyResponse](ctx, c, http.MethodGet, "/onboarding/policy", nil)
}

func (c *Client) Start(ctx context.Context) (onboardingmodels.StateResponse, error) {
	return do[onboardingmodels.StateResponse](ctx, c, http.MethodPost, "/onboarding/start", nil)
}

func (c *Client) Login(ctx context.Context, provider string) (onboardingmodels.StateResponse, error) {
	return do[onboardingmodels.StateResponse](ctx, c, http.MethodPost, "/onboarding/login",
		onboardingmodels.LoginRequest{Provider: provider})
}

func (c *Client) AgreePolicy(ctx context.Context) (onboardingmodels.StateResponse, error) {
	return do[onboardingmodels.StateResponse](ctx, c, http.MethodPost, "/onboarding/policy/agree", nil)
}

func (c *Client) SubmitProfile(ctx context.Context, req profilemodels.SubmitRequest) (onboardingmodels.StateResponse, error) {
	return do[onboardingmodels.StateResponse](ctx, c, http.MethodPost, "/onboarding/profile", req)
}

func (c *Client) Approve(ctx context.Context) (onboardingmodels.StateResponse, error) {
	return do[onboardingmodels.StateResponse](ctx, c, http.MethodPost, "/onboarding/approve", nil)
}

func (c *Client) Advance(ctx context.Context, target string) (onboardingmodels.StateResponse, error) {
	return do[onboardingmodels.StateResponse](ctx, c, http.MethodPost, "/onboarding/advance",
		onboardingmodels.AdvanceRequest{Target: target})
}

// Profile

func (c *Client) Profile(ctx context.Context) (profilemodels.ProfileResponse, error) {
	return do[profilemodels.ProfileResponse](ctx, c, http.MethodGet, "/me/profile", nil)
}

func (c *Client) UpdateProfile(ctx context.Context, req profilemodels.UpdateRequest) (profilemodels.ProfileResponse, error) {
	return do[profilemodels.ProfileResponse](ctx, c, http.MethodPatch, "/me/profile", req)
}

// Matches and discovery

func (c *Client) Matches(ctx context.Context) (matchmodels.MatchListResponse, error) {
	return do[matchmodels.MatchListResponse](ctx, c, http.MethodGet, "/matches", nil)
}

func (c *Client) Match(ctx context.Context, id string) (matchmodels.MatchResponse, error) {
	return do[matchmodels.MatchResponse](ctx, c, http.MethodGet, "/matches/"+id, nil)
}

func (c *Client) CreateDemoMatch(ctx context.Context) (matchmodels.MatchResponse, error) {
	return do[matchmodels.MatchResponse](ctx, c, http.MethodPost, "/matches/demo", nil)
}

func (c *Client) SendMessage(ctx context.Context, matchID, text string) (matchmodels.MatchResponse, error) {
	return do[matchmodels.MatchResponse](ctx, c, http.MethodPost, "/matches/"+matchID+"/messages",
		matchmodels.SendMessageRequest{Text: text})
}

func (c *Client) Candidates(ctx context.Context) (matchmodels.CandidateListResponse, error) {
	return do[matchmodels.CandidateListResponse](ctx, c, http.MethodGet, "/discover", nil)
}

func (c *Client) RequestIntro(ctx context.Context, candidateID string) (matchmodels.IntroResponse, error) {
	return do[matchmodels.IntroResponse](ctx, c, http.MethodPost, "/discover/"+candidateID+"/intro", nil)
}

func (c *Client) IntroRequests(ctx context.Context) (matchmodels.IntroListResponse, error) {
	return do[matchmodels.IntroListResponse](ctx, c, http.MethodGet, "/discover/intros", nil)
}

func (c *Client) InstantMatch(ctx context.Context, candidateID string) (matchmodels.InstantMatchResponse, error) {
	return do[matchmodels.InstantMatchResponse](ctx, c, http.MethodPost, "/discover/"+candidateID+"/match", nil)
}

// Matchmaker conversation

func (c *Client) MatchmakerThread(ctx context.Context) (chatmodels.ThreadResponse, error) {
	return do[chatmodels.ThreadResponse](ctx, c, http.MethodGet, "/matchmaker/messages", nil)
}

func (c *Client) SendToMatchmaker(ctx context.Context, text string) (chatmodels.EntryResponse, error) {
	return do[chatmodels.EntryResponse](ctx, c, http.MethodPost, "/matchmaker/messages",
		chatmodels.SendRequest{Text: text})
}

// Audit

func (c *Client) Audit(ctx context.Context) (audit.ListResponse, error) {
	return do[audit.ListResponse](ctx, c, http.MethodGet, "/audit", nil)
}

func do[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var (
		out     T
		apiErr  httputil.ErrorResponse
		request = c.rest.R().SetContext(ctx).SetResult(&out).SetError(&apiErr)
	)
	if body != nil {
		request.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := request.Execute(method, path)
	if err != nil {
		return out, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		if apiErr.Error == "" {
			apiErr.Error = http.StatusText(resp.StatusCode())
		}
		return out, &APIError{Status: resp.StatusCode(), Code: apiErr.Error, Description: apiErr.ErrorDescription}
	}
	return out, nil
}
