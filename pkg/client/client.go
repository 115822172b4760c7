package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/statcalc/statcalc/internal/app/subsystems/api"
	"github.com/statcalc/statcalc/internal/util"
	"github.com/statcalc/statcalc/pkg/history"
)

//go:generate mockgen -source=client.go -destination=mock_client.go -package=client

// Client talks to a statcalc server over http.
type Client interface {
	Setup(string) error

	AddData(context.Context, float64) error
	Dataset(context.Context) ([]float64, error)
	Clear(context.Context) error

	Mean(context.Context) (float64, error)
	Median(context.Context) (float64, error)
	Mode(context.Context) (*Mode, error)
	StandardDeviation(context.Context) (float64, error)
	NCr(context.Context, int64, int64) (float64, error)
	NPr(context.Context, int64, int64) (float64, error)
	Binomial(context.Context, int64, int64, float64) (float64, error)
	EventOp(context.Context, *EventOpRequest) (*EventOutcome, error)

	History(context.Context) ([]history.Entry, error)
	Undo(context.Context) error
	Redo(context.Context) error
}

type Mode struct {
	Result float64   `json:"result"`
	Modes  []float64 `json:"modes"`
}

type EventOpRequest struct {
	Op    string   `json:"op"`
	PA    *float64 `json:"pa,omitempty"`
	PB    *float64 `json:"pb,omitempty"`
	PANot *float64 `json:"pa_not,omitempty"`
	PBNot *float64 `json:"pb_not,omitempty"`
	Inter *float64 `json:"inter,omitempty"`
}

type EventOutcome struct {
	Result float64 `json:"result"`
	Label  string  `json:"label"`
}

// Error is returned for every non 2xx response.
type Error struct {
	StatusCode int
	Message    string
	Details    []string
}

func (e *Error) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("%d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Message, strings.Join(e.Details, " "))
}

// Client

type client struct {
	server *url.URL
	http   *http.Client
}

func New() Client {
	return &client{
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *client) Setup(server string) error {
	u, err := url.Parse(server)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server must be an http or https url, got %q", server)
	}

	c.server = u
	return nil
}

// Dataset

func (c *client) AddData(ctx context.Context, value float64) error {
	return c.do(ctx, http.MethodPost, "/add-data", map[string]float64{"value": value}, nil)
}

func (c *client) Dataset(ctx context.Context) ([]float64, error) {
	var values []float64
	if err := c.do(ctx, http.MethodGet, "/dataset", nil, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func (c *client) Clear(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/clear", nil, nil)
}

// Calculate

type result struct {
	Result float64 `json:"result"`
}

func (c *client) Mean(ctx context.Context) (float64, error) {
	return c.result(ctx, http.MethodGet, "/calculate/mean", nil)
}

func (c *client) Median(ctx context.Context) (float64, error) {
	return c.result(ctx, http.MethodGet, "/calculate/median", nil)
}

func (c *client) Mode(ctx context.Context) (*Mode, error) {
	var mode Mode
	if err := c.do(ctx, http.MethodGet, "/calculate/mode", nil, &mode); err != nil {
		return nil, err
	}
	return &mode, nil
}

func (c *client) StandardDeviation(ctx context.Context) (float64, error) {
	return c.result(ctx, http.MethodGet, "/calculate/sd", nil)
}

func (c *client) NCr(ctx context.Context, n int64, r int64) (float64, error) {
	return c.result(ctx, http.MethodPost, "/calculate/ncr", map[string]int64{"n": n, "r": r})
}

func (c *client) NPr(ctx context.Context, n int64, r int64) (float64, error) {
	return c.result(ctx, http.MethodPost, "/calculate/npr", map[string]int64{"n": n, "r": r})
}

func (c *client) Binomial(ctx context.Context, n int64, k int64, p float64) (float64, error) {
	return c.result(ctx, http.MethodPost, "/calculate/binomial", map[string]any{"n": n, "k": k, "p": p})
}

func (c *client) EventOp(ctx context.Context, req *EventOpRequest) (*EventOutcome, error) {
	var outcome EventOutcome
	if err := c.do(ctx, http.MethodPost, "/calculate/event-op", req, &outcome); err != nil {
		return nil, err
	}
	return &outcome, nil
}

// History

func (c *client) History(ctx context.Context) ([]history.Entry, error) {
	var entries []history.Entry
	if err := c.do(ctx, http.MethodGet, "/history", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *client) Undo(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/undo", nil, nil)
}

func (c *client) Redo(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/redo", nil, nil)
}

// Helper functions

func (c *client) result(ctx context.Context, method string, path string, body any) (float64, error) {
	var res result
	if err := c.do(ctx, method, path, body, &res); err != nil {
		return 0, err
	}
	return res.Result, nil
}

func (c *client) do(ctx context.Context, method string, path string, body any, out any) error {
	util.Assert(c.server != nil, "client must be setup before use")

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.server.JoinPath(path).String(), r)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer util.DeferAndLog(res.Body.Close)

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return decodeError(res.StatusCode, b)
	}

	if out == nil {
		return nil
	}

	return json.Unmarshal(b, out)
}

func decodeError(code int, b []byte) error {
	var res api.ErrorResponse
	if err := json.Unmarshal(b, &res); err != nil || res.Error == nil {
		return &Error{StatusCode: code, Message: http.StatusText(code)}
	}

	details := make([]string, len(res.Error.Details))
	for i, d := range res.Error.Details {
		details[i] = d.Message
	}

	return &Error{StatusCode: code, Message: res.Error.Message, Details: details}
}
