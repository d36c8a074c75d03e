package sms

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const apiBaseURL = "http://api.smsbao.com"

// statusMessages maps smsbao.com gateway status codes to readable errors
var statusMessages = map[string]string{
	"30": "invalid password",
	"40": "account does not exist",
	"41": "insufficient balance",
	"42": "account expired",
	"43": "IP address restricted",
	"50": "content contains forbidden words",
	"51": "invalid phone number",
}

// Client wraps the smsbao.com SMS gateway API.
// The gateway authenticates with the account name and an MD5 digest of the password.
type Client struct {
	username    string
	passwordMD5 string
	httpClient  *http.Client
}

// NewClient creates an SMS client. Returns nil when credentials are absent,
// in which case SMS delivery is simply disabled.
func NewClient(username, password string) *Client {
	if username == "" || password == "" {
		return nil
	}
	digest := md5.Sum([]byte(password))
	return &Client{
		username:    username,
		passwordMD5: hex.EncodeToString(digest[:]),
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Send delivers a single SMS message to the given phone number.
func (c *Client) Send(phone, content string) error {
	params := url.Values{}
	params.Set("u", c.username)
	params.Set("p", c.passwordMD5)
	params.Set("m", phone)
	params.Set("c", content)

	resp, err := c.httpClient.Get(apiBaseURL + "/sms?" + params.Encode())
	if err != nil {
		return fmt.Errorf("sms request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("sms response read failed: %w", err)
	}

	code := strings.TrimSpace(string(body))
	if code == "0" {
		return nil
	}
	if msg, ok := statusMessages[code]; ok {
		return errors.New("sms gateway: " + msg)
	}
	return fmt.Errorf("sms gateway: unexpected status %q", code)
}
