// client.go
//
// Storefront Studio: a storefront app builder and its configuration persistence service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of storefront-studio.
// storefront-studio is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// storefront-studio is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with storefront-studio.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package client talks to the persistence service over HTTP/JSON.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/localnerve/storefront-studio/internal/storefront"
	"github.com/localnerve/storefront-studio/internal/types"
	"go.uber.org/zap"
)

const (
	defaultTimeout = 10 * time.Second
	// DefaultBaseURL matches the server's default port and route prefix.
	DefaultBaseURL = "http://localhost:5001/api"
	// GenericErrorMessage is used when an error response carries no message.
	GenericErrorMessage = "Something went wrong"
	maxErrorBody        = 64 << 10
)

// ErrNotFound is returned when the service has no stored configuration.
var ErrNotFound = errors.New("not found")

// RemoteError is a non-2xx response from the service.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote status %d: %s", e.Status, e.Message)
}

// User is the account record returned by login and signup.
type User struct {
	ID        types.FlexString `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	CreatedAt string           `json:"createdAt,omitempty"`
}

// Client is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client for baseURL, e.g. "http://localhost:5001/api".
func New(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchConfig loads the stored document for userID. A malformed body
// degrades to defaults and is logged as a warning.
func (c *Client) FetchConfig(ctx context.Context, userID string) (storefront.Document, error) {
	endpoint, err := url.JoinPath(c.baseURL, "config", userID)
	if err != nil {
		return storefront.Document{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return storefront.Document{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return storefront.Document{}, fmt.Errorf("fetch config: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return storefront.Document{}, ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return storefront.Document{}, c.remoteError("fetch config", resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return storefront.Document{}, fmt.Errorf("fetch config: %w", err)
	}
	doc, degraded := storefront.Unmarshal(body, userID)
	if len(degraded) > 0 {
		c.logger.Warn("stored config degraded to defaults", zap.String("userId", userID), zap.Strings("fields", degraded))
	}
	return doc, nil
}

type publishRequest struct {
	UserID string          `json:"userId"`
	Config json.RawMessage `json:"config"`
}

type publishResponse struct {
	OK         bool  `json:"ok"`
	NewVersion int64 `json:"newVersion"`
}

// PublishConfig upserts doc as it is at call time and returns the server's
// version counter. Edits made while the request is pending are not included.
func (c *Client) PublishConfig(ctx context.Context, doc storefront.Document) (int64, error) {
	data, err := storefront.Marshal(doc)
	if err != nil {
		return 0, fmt.Errorf("publish config: %w", err)
	}
	var out publishResponse
	if err := c.post(ctx, "publish config", []string{"config"}, publishRequest{UserID: doc.UserID, Config: data}, &out); err != nil {
		return 0, err
	}
	return out.NewVersion, nil
}

type idResponse struct {
	ID types.FlexString `json:"id"`
}

// CreateCollection implements editor.IDAllocator.
func (c *Client) CreateCollection(ctx context.Context, appID, name string) (string, error) {
	body := map[string]string{"appId": appID, "name": name}
	var out idResponse
	if err := c.post(ctx, "create collection", []string{"collections"}, body, &out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", fmt.Errorf("create collection: response carried no id")
	}
	return out.ID.String(), nil
}

type productRequest struct {
	CollectionID string      `json:"collectionId"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Price        json.Number `json:"price"`
	Image        string      `json:"image"`
}

// CreateProduct implements editor.IDAllocator. The price is sent as a number.
func (c *Client) CreateProduct(ctx context.Context, collectionID string, p storefront.Product) (string, error) {
	body := productRequest{
		CollectionID: collectionID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        json.Number(storefront.ParsePrice(p.Price).String()),
		Image:        p.Image,
	}
	var out idResponse
	if err := c.post(ctx, "create product", []string{"products"}, body, &out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", fmt.Errorf("create product: response carried no id")
	}
	return out.ID.String(), nil
}

func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	var u User
	body := map[string]string{"email": email, "password": password}
	err := c.post(ctx, "login", []string{"auth", "login"}, body, &u)
	return u, err
}

func (c *Client) Signup(ctx context.Context, name, email, password string) (User, error) {
	var u User
	body := map[string]string{"name": name, "email": email, "password": password}
	err := c.post(ctx, "signup", []string{"auth", "signup"}, body, &u)
	return u, err
}

func (c *Client) post(ctx context.Context, op string, path []string, in, out any) error {
	endpoint, err := url.JoinPath(c.baseURL, path...)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("request failed", zap.String("op", op), zap.Error(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.remoteError(op, resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

// remoteError reads the service's "error" field, falling back to a generic
// message. The server text is logged for diagnostics.
func (c *Client) remoteError(op string, resp *http.Response) error {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_ = json.Unmarshal(raw, &body)

	msg := strings.TrimSpace(body.Error)
	if msg == "" {
		msg = GenericErrorMessage
	}
	c.logger.Error("remote error",
		zap.String("op", op),
		zap.Int("status", resp.StatusCode),
		zap.String("error", msg),
		zap.String("message", body.Message),
	)
	return &RemoteError{Status: resp.StatusCode, Message: msg}
}
