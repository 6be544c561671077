package captcha

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrVerificationFailed covers both an explicit non-success verdict and any
// transport failure. Callers treat the two the same and reject the request.
var ErrVerificationFailed = errors.New("captcha verification failed")

// Verifier proves a request came from a human browser.
type Verifier interface {
	Verify(token, remoteIP string) error
}

// TurnstileClient verifies tokens against Cloudflare's siteverify endpoint.
type TurnstileClient struct {
	secret     string
	httpClient *http.Client
	verifyURL  string
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

func NewTurnstileClient(secret string) *TurnstileClient {
	return &TurnstileClient{
		secret:     secret,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		verifyURL:  "https://challenges.cloudflare.com/turnstile/v0/siteverify",
	}
}

func (c *TurnstileClient) Verify(token, remoteIP string) error {
	if strings.TrimSpace(token) == "" {
		return ErrVerificationFailed
	}

	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	resp, err := c.httpClient.PostForm(c.verifyURL, form)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: siteverify returned status %d", ErrVerificationFailed, resp.StatusCode)
	}

	var result siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}
	if !result.Success {
		return fmt.Errorf("%w: %s", ErrVerificationFailed, strings.Join(result.ErrorCodes, ","))
	}
	return nil
}
