package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

const refreshPath = "auth/refresh/"

type refreshResult struct {
	token string
	err   error
}

// do sends cl with the current access token and runs the refresh protocol
// when the backend answers 401.
func (c *HTTPClient) do(ctx context.Context, cl *call) (*response, error) {
	token, _ := c.tokens.Access()
	return c.exchange(ctx, cl, token)
}

func (c *HTTPClient) exchange(ctx context.Context, cl *call, token string) (*response, error) {
	resp, err := c.send(ctx, cl, token)
	if err != nil {
		return nil, err
	}
	if resp.status != http.StatusUnauthorized || cl.skipAuthRefresh {
		return resp, resp.err()
	}
	return c.recoverUnauthorized(ctx, cl, resp, token)
}

// recoverUnauthorized handles a 401 for cl, which was sent with sentWith.
//
// State machine (per client): Idle <-> Refreshing. The first 401 while Idle
// starts the refresh; every other 401 while Refreshing parks on the queue.
// When the refresh settles the queue is drained FIFO and the client returns
// to Idle in the same critical section.
func (c *HTTPClient) recoverUnauthorized(ctx context.Context, cl *call, resp *response, sentWith string) (*response, error) {
	apiErr := resp.err()

	if cl.retried {
		c.endSession(ctx, "unauthorized after retry", cl)
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, apiErr)
	}

	refresh, ok := c.tokens.Refresh()
	if !ok {
		c.endSession(ctx, "no refresh token", cl)
		return nil, apiErr
	}

	c.mu.Lock()
	if c.refreshing {
		ch := make(chan refreshResult, 1)
		c.queue = append(c.queue, ch)
		queued := len(c.queue)
		c.mu.Unlock()

		c.log.Debug(ctx, "waiting for refresh", "path", cl.path, "position", queued)
		return c.awaitRefresh(ctx, cl, ch)
	}

	// A refresh finished after this call picked up its token: resend with
	// the new one instead of refreshing again.
	if current, ok := c.tokens.Access(); ok && current != sentWith {
		c.mu.Unlock()
		cl.retried = true
		return c.exchange(ctx, cl, current)
	}

	c.refreshing = true
	c.mu.Unlock()
	cl.retried = true

	token, err := c.runRefresh(ctx, refresh)
	if err != nil {
		return nil, err
	}
	return c.exchange(ctx, cl, token)
}

func (c *HTTPClient) awaitRefresh(ctx context.Context, cl *call, ch <-chan refreshResult) (*response, error) {
	select {
	case res := <-ch:
		if res.err != nil {
			return nil, res.err
		}
		cl.retried = true
		return c.exchange(ctx, cl, res.token)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// runRefresh performs the single in-flight refresh and settles the queue.
// It is detached from the caller's cancellation: once started, a refresh
// always completes so that queued callers get an answer.
func (c *HTTPClient) runRefresh(ctx context.Context, refresh string) (token string, err error) {
	ctx = context.WithoutCancel(ctx)

	defer func() {
		c.settle(refreshResult{token: token, err: err})
	}()

	c.log.Info(ctx, "refreshing access token")

	token, err = c.refreshAccess(ctx, refresh)
	if err != nil {
		c.log.Warn(ctx, "token refresh failed", "error", err)
		if cerr := c.tokens.Clear(ctx); cerr != nil {
			c.log.Error(ctx, "failed to clear tokens", "error", cerr)
		}
		return "", err
	}

	if serr := c.tokens.SetAccess(ctx, token); serr != nil {
		c.log.Error(ctx, "failed to store refreshed access token", "error", serr)
	}
	return token, nil
}

// settle returns the client to Idle and releases every queued caller, in
// the order they queued, with the same result.
func (c *HTTPClient) settle(res refreshResult) {
	c.mu.Lock()
	queue := c.queue
	c.queue = nil
	c.refreshing = false
	c.mu.Unlock()

	for _, ch := range queue {
		ch <- res
	}
}

func (c *HTTPClient) refreshAccess(ctx context.Context, refresh string) (string, error) {
	cl, err := jsonCall(http.MethodPost, refreshPath, map[string]string{"refresh": refresh})
	if err != nil {
		return "", err
	}
	cl.skipAuthRefresh = true

	var out struct {
		Access string `json:"access"`
	}
	if err := c.doJSON(ctx, cl, &out); err != nil {
		return "", err
	}
	if out.Access == "" {
		return "", ErrNoAccessToken
	}
	return out.Access, nil
}

func (c *HTTPClient) endSession(ctx context.Context, reason string, cl *call) {
	c.log.Warn(ctx, "session ended", "reason", reason, "method", cl.method, "path", cl.path)
	if err := c.tokens.Clear(context.WithoutCancel(ctx)); err != nil {
		c.log.Error(ctx, "failed to clear tokens", "error", err)
	}
}

// IsSessionEnded reports whether err means the session is gone and the user
// must log in again.
func IsSessionEnded(err error) bool {
	return errors.Is(err, ErrUnauthorized) || StatusOf(err) == http.StatusUnauthorized
}
