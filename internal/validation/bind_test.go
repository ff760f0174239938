package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/go-shops/internal/errs"
	"github.com/labstack/echo/v4"
)

type bodyRequest struct {
	ID    string   `param:"id" json:"-"`
	Title *string  `json:"title"`
	Price *float64 `json:"price"`
}

func (r *bodyRequest) Schemas() (Schema, Schema) { return ShopBody, nil }

type paramRequest struct {
	ID string `param:"id" json:"-"`
}

func (r *paramRequest) Schemas() (Schema, Schema) { return nil, ShopIDParam }

type looseRequest struct {
	ID    string  `param:"id" json:"-"`
	Title *string `json:"title"`
	Price *int64  `json:"price"`
}

func (r *looseRequest) Schemas() (Schema, Schema) { return nil, nil }

type brokenRequest struct{}

func (r *brokenRequest) Schemas() (Schema, Schema) {
	return Schema{{Name: "title", Type: String, Rules: "bogus_rule"}}, nil
}

func newContext(method, body string, params map[string]string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, "/shops", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())
	for name, value := range params {
		c.SetParamNames(append(c.ParamNames(), name)...)
		c.SetParamValues(append(c.ParamValues(), value)...)
	}
	return c
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T: %v", err, err)
	}
	return httpErr
}

func TestBindAndValidateBody(t *testing.T) {
	c := newContext(http.MethodPost, `{"title":"Hat","price":1200}`, nil)
	req := &bodyRequest{}

	if err := BindAndValidate(c, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Title == nil || *req.Title != "Hat" || req.Price == nil || *req.Price != 1200 {
		t.Fatalf("payload not bound: %+v", req)
	}
}

func TestBindAndValidateNumberLiterals(t *testing.T) {
	tests := map[string]float64{
		`12.5`: 12.5,
		`1.0`:  1,
		`1e3`:  1000,
		`-0.5`: -0.5,
	}
	for literal, want := range tests {
		req := &bodyRequest{}
		c := newContext(http.MethodPost, `{"title":"Hat","price":`+literal+`}`, nil)
		if err := BindAndValidate(c, req); err != nil {
			t.Errorf("price %s: unexpected error: %v", literal, err)
			continue
		}
		if req.Price == nil || *req.Price != want {
			t.Errorf("price %s: got %v, want %v", literal, req.Price, want)
		}
	}
}

func TestBindIgnoresClientContentType(t *testing.T) {
	for _, ctype := range []string{"", echo.MIMETextPlain, echo.MIMEApplicationForm} {
		c := newContext(http.MethodPost, `{"title":"Hat","price":3}`, nil)
		c.Request().Header.Set(echo.HeaderContentType, ctype)

		req := &bodyRequest{}
		if err := BindAndValidate(c, req); err != nil {
			t.Errorf("content type %q: unexpected error: %v", ctype, err)
			continue
		}
		if req.Title == nil || *req.Title != "Hat" || req.Price == nil || *req.Price != 3 {
			t.Errorf("content type %q: payload not bound: %+v", ctype, req)
		}
	}
}

func TestBindAndValidateBodyFailure(t *testing.T) {
	c := newContext(http.MethodPost, `{"description":"no title"}`, nil)

	httpErr := asHTTPError(t, BindAndValidate(c, &bodyRequest{}))
	if httpErr.Status != http.StatusBadRequest || httpErr.Kind != errs.KindInvalidData {
		t.Fatalf("unexpected error: %+v", httpErr)
	}
	if len(httpErr.Details) != 2 ||
		httpErr.Details[0].Message != "title is required" ||
		httpErr.Details[1].Message != "price is required" {
		t.Fatalf("unexpected details: %+v", httpErr.Details)
	}
}

func TestBindAndValidateParams(t *testing.T) {
	id := "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	req := &paramRequest{}
	if err := BindAndValidate(newContext(http.MethodGet, "", map[string]string{"id": id}), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.ID != id {
		t.Fatalf("expected id %q to be bound, got %q", id, req.ID)
	}

	httpErr := asHTTPError(t, BindAndValidate(newContext(http.MethodGet, "", map[string]string{"id": "nope"}), &paramRequest{}))
	if len(httpErr.Details) != 1 || httpErr.Details[0].Message != "id is not a valid UUID" {
		t.Fatalf("unexpected details: %+v", httpErr.Details)
	}
}

func TestBindWithoutSchemas(t *testing.T) {
	// Routes without schemas accept partial bodies.
	req := &looseRequest{}
	c := newContext(http.MethodPut, `{"price":5}`, map[string]string{"id": "anything"})
	if err := BindAndValidate(c, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.ID != "anything" || req.Title != nil || req.Price == nil || *req.Price != 5 {
		t.Fatalf("unexpected payload: %+v", req)
	}

	// Body keys never override the path id.
	req = &looseRequest{}
	c = newContext(http.MethodPut, `{"id":"other","title":"x"}`, map[string]string{"id": "anything"})
	if err := BindAndValidate(c, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.ID != "anything" {
		t.Fatalf("expected path id to win, got %q", req.ID)
	}
}

func TestBindTypeErrors(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{body: `{"title":5}`, want: "title is expected string, received number"},
		{body: `{"price":"x"}`, want: "price is expected integer, received string"},
		{body: `"abc"`, want: "body is expected object, received string"},
		{body: `{"title":`, want: "body is malformed JSON"},
		{body: `{"price":1.5}`, want: "price is expected integer, received number 1.5"},
	}
	for _, tt := range tests {
		c := newContext(http.MethodPut, tt.body, map[string]string{"id": "x"})
		httpErr := asHTTPError(t, BindAndValidate(c, &looseRequest{}))
		if len(httpErr.Details) != 1 || httpErr.Details[0].Message != tt.want {
			t.Errorf("body %s: got %+v, want %q", tt.body, httpErr.Details, tt.want)
		}
	}
}

func TestBindAndValidateInternalFailure(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodPost, `{"title":"Hat"}`, nil), &brokenRequest{})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		t.Fatalf("internal failure must not be a client error")
	}
}

func TestBindAndValidateBodyIsRestored(t *testing.T) {
	c := newContext(http.MethodPost, `{"title":"Hat","price":1}`, nil)
	if err := BindAndValidate(c, &bodyRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rest, err := readBody(c)
	if err != nil || string(rest) != `{"title":"Hat","price":1}` {
		t.Fatalf("expected body to be readable again, got %q (%v)", rest, err)
	}
}
