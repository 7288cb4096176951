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
	"strconv"
	"strings"

	"tapecalc/internal/domain"
	"tapecalc/internal/imperial"
	"tapecalc/internal/layout"
)

// StatusError is a non-2xx response.
type StatusError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d %s: %s", e.Method, e.Path, e.Status, http.StatusText(e.Status), e.Message)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
}

// Unwrap maps well-known statuses back onto domain and imperial errors so
// callers can use errors.Is the same way for local and remote backends.
func (e *StatusError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusUnprocessableEntity:
		return imperial.ErrDivideByZero
	case http.StatusBadRequest:
		return domain.ErrInvalidRequest
	}
	return nil
}

type HTTP struct {
	Base string
	HTTP *http.Client
}

// NewHTTP returns a client for the server at base. A nil hc means
// http.DefaultClient.
func NewHTTP(base string, hc *http.Client) *HTTP {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

func (c *HTTP) Calculate(ctx context.Context, req domain.CalculateRequest) (domain.Calculation, error) {
	var out domain.Calculation
	return out, c.do(ctx, http.MethodPost, "/api/calculate", req, &out)
}

func (c *HTTP) Layout(ctx context.Context, req layout.Request, precision int) (domain.LayoutResult, error) {
	body := struct {
		layout.Request
		Precision int `json:"precision,omitempty"`
	}{Request: req, Precision: precision}
	var out domain.LayoutResult
	return out, c.do(ctx, http.MethodPost, "/api/layout", body, &out)
}

func (c *HTTP) AddHistory(ctx context.Context, entry domain.NewHistoryEntry) (domain.HistoryEntry, error) {
	var out domain.HistoryEntry
	return out, c.do(ctx, http.MethodPost, "/api/history", entry, &out)
}

func (c *HTTP) ListHistory(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	path := "/api/history"
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var out []domain.HistoryEntry
	return out, c.do(ctx, http.MethodGet, path, nil, &out)
}

func (c *HTTP) ClearHistory(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/history", nil, nil)
}

func (c *HTTP) AddSaved(ctx context.Context, m domain.NewSavedMeasurement) (domain.SavedMeasurement, error) {
	var out domain.SavedMeasurement
	return out, c.do(ctx, http.MethodPost, "/api/saved-measurements", m, &out)
}

func (c *HTTP) ListSaved(ctx context.Context) ([]domain.SavedMeasurement, error) {
	var out []domain.SavedMeasurement
	return out, c.do(ctx, http.MethodGet, "/api/saved-measurements", nil, &out)
}

func (c *HTTP) DeleteSaved(ctx context.Context, id domain.MeasurementID) error {
	return c.do(ctx, http.MethodDelete, "/api/saved-measurements/"+url.PathEscape(id.String()), nil, nil)
}

func (c *HTTP) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		se := &StatusError{Method: method, Path: path, Status: resp.StatusCode}
		var e struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&e) == nil {
			se.Message = e.Message
			if se.Message == "" {
				se.Message = e.Error
			}
		}
		return se
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

var _ domain.RemoteClient = (*HTTP)(nil)
