// Package judge talks to the Codeforces public read API. The client fails
// closed: any transport error, non-200 status or non-OK envelope is reported
// to the caller, which treats it the same as "no qualifying submission".
// Nothing is retried.
package judge

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// envelope is the Codeforces API response wrapper.
type envelope struct {
	Status  string          `json:"status"`
	Comment string          `json:"comment"`
	Result  json.RawMessage `json:"result"`
}

type apiSubmission struct {
	ID                  int64 `json:"id"`
	CreationTimeSeconds int64 `json:"creationTimeSeconds"`
	Problem             struct {
		ContestID int    `json:"contestId"`
		Index     string `json:"index"`
		Name      string `json:"name"`
	} `json:"problem"`
	Verdict string `json:"verdict"`
}

// ValidSubmission is an accepted solve that qualifies for a daily problem.
type ValidSubmission struct {
	SubmissionID     int64
	SolveTimeSeconds int64
	TimeTakenSeconds int64
}

// FetchAcceptedSubmission returns the handle's earliest accepted submission
// to (contestID, index) created at or after postedAtSeconds, or nil if the
// handle has none. Ties on creation time go to the first entry the API
// returns.
func (c *Client) FetchAcceptedSubmission(ctx context.Context, handle string, contestID int, index string, postedAtSeconds int64) (*ValidSubmission, error) {
	env, err := c.get(ctx, "/user.status?handle="+url.QueryEscape(handle))
	if err != nil {
		return nil, err
	}

	var subs []apiSubmission
	if err := json.Unmarshal(env.Result, &subs); err != nil {
		return nil, fmt.Errorf("decode user.status result: %w", err)
	}

	var earliest *apiSubmission
	for i := range subs {
		sub := &subs[i]
		if sub.Problem.ContestID != contestID || sub.Problem.Index != index {
			continue
		}
		if sub.Verdict != "OK" {
			continue
		}
		if sub.CreationTimeSeconds < postedAtSeconds {
			continue
		}
		if earliest == nil || sub.CreationTimeSeconds < earliest.CreationTimeSeconds {
			earliest = sub
		}
	}

	if earliest == nil {
		return nil, nil
	}

	return &ValidSubmission{
		SubmissionID:     earliest.ID,
		SolveTimeSeconds: earliest.CreationTimeSeconds,
		TimeTakenSeconds: earliest.CreationTimeSeconds - postedAtSeconds,
	}, nil
}

// ValidateHandle reports whether the handle exists on the judge. Fails
// closed: any error counts as "does not exist".
func (c *Client) ValidateHandle(ctx context.Context, handle string) bool {
	_, err := c.get(ctx, "/user.info?handles="+url.QueryEscape(handle))
	if err != nil {
		zap.S().Debugf("handle validation for %q failed: %v", handle, err)
		return false
	}
	return true
}

func (c *Client) get(ctx context.Context, path string) (*envelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("judge API returned status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode judge API response: %w", err)
	}
	if env.Status != "OK" {
		return nil, fmt.Errorf("judge API status %q: %s", env.Status, env.Comment)
	}
	return &env, nil
}
