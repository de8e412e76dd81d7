// Package menuapi is the HTTP client for the remote menu REST API.
package menuapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"menuview/internal/credential"
	"menuview/internal/jsonutil"
	"menuview/internal/menu"
)

// RequestIDHeader carries a per-request uuid so server logs can be matched to ours.
const RequestIDHeader = "X-Request-ID"

// maxBodyBytes bounds how much of a response we read.
const maxBodyBytes = 1 << 20

// Client talks to the menu API. Mutating calls carry a bearer token from Credentials.
type Client struct {
	baseURL string
	http    *http.Client
	creds   credential.Provider
	tracer  oteltrace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithCredentials sets the bearer token source for create, update and delete.
func WithCredentials(p credential.Provider) Option {
	return func(c *Client) { c.creds = p }
}

// WithTracer records one span per API call.
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// New creates a client for baseURL (e.g. "https://api.mudoapi.site").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
		creds:   credential.Static(""),
		tracer:  noop.NewTracerProvider().Tracer("menuapi"),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// listEnvelope is the GET /menus response shape.
type listEnvelope struct {
	Data struct {
		Items        []menu.Item `json:"Data"`
		CurrentPage  int         `json:"currentPage"`
		PerPage      int         `json:"perPage"`
		Total        *int        `json:"total"`
		PreviousPage *int        `json:"previousPage"`
		NextPage     *int        `json:"nextPage"`
	} `json:"data"`
}

// List fetches one page. The returned PageState is exactly what the server echoed.
func (c *Client) List(ctx context.Context, page, perPage int) (menu.Page, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("perPage", strconv.Itoa(perPage))

	var env listEnvelope
	err := c.do(ctx, call{
		op:     "List",
		method: http.MethodGet,
		path:   "/menus",
		query:  q,
		attrs:  []attribute.KeyValue{attribute.Int("menu.page", page), attribute.Int("menu.per_page", perPage)},
	}, func(body []byte) error {
		return jsonutil.UnmarshalWithContext(body, &env, "decode menu list")
	})
	if err != nil {
		return menu.Page{}, err
	}

	d := env.Data
	state := menu.PageState{
		Page:    d.CurrentPage,
		PerPage: d.PerPage,
		Total:   -1,
		HasPrev: cursorSet(d.PreviousPage),
		HasNext: cursorSet(d.NextPage),
	}
	if d.Total != nil {
		state.Total = *d.Total
	}
	items := d.Items
	if items == nil {
		items = []menu.Item{}
	}
	return menu.Page{Items: items, State: state}, nil
}

// cursorSet treats null and 0 as "no such page".
func cursorSet(p *int) bool {
	return p != nil && *p > 0
}

// Get fetches a single item (GET /menu/{id}).
func (c *Client) Get(ctx context.Context, id menu.ID) (menu.Item, error) {
	var it menu.Item
	err := c.do(ctx, call{
		op:     "Get",
		method: http.MethodGet,
		path:   "/menu/" + url.PathEscape(id.String()),
		attrs:  []attribute.KeyValue{attribute.String("menu.id", id.String())},
	}, decodeItem(&it))
	return it, err
}

// Create posts a new item (POST /menu).
func (c *Client) Create(ctx context.Context, p menu.Payload) (menu.Item, error) {
	var it menu.Item
	err := c.do(ctx, call{
		op:     "Create",
		method: http.MethodPost,
		path:   "/menu",
		body:   p,
		auth:   true,
	}, decodeItem(&it))
	return it, err
}

// Update replaces an item (PUT /menu/{id}).
func (c *Client) Update(ctx context.Context, id menu.ID, p menu.Payload) (menu.Item, error) {
	var it menu.Item
	err := c.do(ctx, call{
		op:     "Update",
		method: http.MethodPut,
		path:   "/menu/" + url.PathEscape(id.String()),
		body:   p,
		auth:   true,
		attrs:  []attribute.KeyValue{attribute.String("menu.id", id.String())},
	}, decodeItem(&it))
	return it, err
}

// Delete removes an item (DELETE /menu/{id}).
func (c *Client) Delete(ctx context.Context, id menu.ID) error {
	return c.do(ctx, call{
		op:     "Delete",
		method: http.MethodDelete,
		path:   "/menu/" + url.PathEscape(id.String()),
		auth:   true,
		attrs:  []attribute.KeyValue{attribute.String("menu.id", id.String())},
	}, nil)
}

// decodeItem accepts both {"data": item} and a bare item. An empty body leaves it zero.
func decodeItem(it *menu.Item) func([]byte) error {
	return func(body []byte) error {
		if len(bytes.TrimSpace(body)) == 0 {
			return nil
		}
		var env struct {
			Data json.RawMessage `json:"data"`
		}
		if err := jsonutil.UnmarshalWithContext(body, &env, "decode menu item"); err != nil {
			return err
		}
		raw := env.Data
		if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
			raw = body
		}
		return jsonutil.UnmarshalWithContext(raw, it, "decode menu item")
	}
}

type call struct {
	op     string
	method string
	path   string
	query  url.Values
	body   interface{}
	auth   bool
	attrs  []attribute.KeyValue
}

// do performs one request inside a span. decode is called with the body of a
// 2xx response; non-2xx responses become *APIError.
func (c *Client) do(ctx context.Context, cl call, decode func([]byte) error) (err error) {
	ctx, span := c.tracer.Start(ctx, "menuapi."+cl.op, oteltrace.WithSpanKind(oteltrace.SpanKindClient))
	defer func() {
		if err != nil && !IsCanceled(err) {
			span.RecordError(err)
			span.SetStatus(codes.Error, Message(err))
		}
		span.End()
	}()

	requestID := uuid.NewString()
	span.SetAttributes(append(cl.attrs,
		attribute.String("http.method", cl.method),
		attribute.String("http.route", cl.path),
		attribute.String("menuapi.request_id", requestID),
	)...)

	u := c.baseURL + cl.path
	if len(cl.query) > 0 {
		u += "?" + cl.query.Encode()
	}

	var reqBody io.Reader
	if cl.body != nil {
		b, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("menuapi: encode %s body: %w", cl.op, err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, u, reqBody)
	if err != nil {
		return fmt.Errorf("menuapi: build %s request: %w", cl.op, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cl.auth {
		if err := c.authorize(ctx, req); err != nil {
			return err
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if !IsCanceled(err) {
			log.Printf("menuapi: %s %s failed: %v", cl.method, cl.path, err)
		}
		return fmt.Errorf("menuapi: %s: %w", cl.op, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("menuapi: read %s response: %w", cl.op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := parseError(resp.StatusCode, requestID, body)
		log.Printf("menuapi: %s %s -> %d (request %s): %s", cl.method, cl.path, resp.StatusCode, requestID, Message(apiErr))
		return apiErr
	}
	if decode == nil {
		return nil
	}
	if err := decode(body); err != nil {
		log.Printf("menuapi: %s %s: %v", cl.method, cl.path, err)
		return err
	}
	return nil
}

// authorize sets the bearer header. A missing token is not fatal: the request
// goes out unauthenticated and the server's rejection is shown to the user.
func (c *Client) authorize(ctx context.Context, req *http.Request) error {
	tok, err := c.creds.Token(ctx)
	switch {
	case errors.Is(err, credential.ErrNoToken):
		log.Printf("menuapi: no access token; sending %s %s unauthenticated", req.Method, req.URL.Path)
		return nil
	case err != nil:
		return fmt.Errorf("menuapi: read access token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	return nil
}
