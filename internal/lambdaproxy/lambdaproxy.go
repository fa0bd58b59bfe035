// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lambdaproxy runs an http.Handler behind AWS API Gateway proxy
// events, so the same endpoints can be deployed as a Lambda function.
package lambdaproxy

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

const headerRequestID = "X-Request-ID"

// Adapter translates proxy events to HTTP requests for one handler.
type Adapter struct {
	handler http.Handler
}

// New returns an Adapter serving h.
func New(h http.Handler) *Adapter {
	return &Adapter{handler: h}
}

// Handle serves one API Gateway proxy event. The returned error is non-nil
// only when the event itself cannot be turned into a request.
func (a *Adapter) Handle(ctx context.Context, ev events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req, err := toRequest(ctx, ev)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	rw := newResponseWriter()
	a.handler.ServeHTTP(rw, req)
	return rw.response(), nil
}

func toRequest(ctx context.Context, ev events.APIGatewayProxyRequest) (*http.Request, error) {
	body := []byte(ev.Body)
	if ev.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(ev.Body)
		if err != nil {
			return nil, fmt.Errorf("decoding base64 body: %w", err)
		}
		body = decoded
	}

	u := url.URL{Path: ev.Path, RawQuery: query(ev).Encode()}
	req, err := http.NewRequestWithContext(ctx, ev.HTTPMethod, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	for k, v := range ev.Headers {
		req.Header.Set(k, v)
	}
	for k, vs := range ev.MultiValueHeaders {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if req.Header.Get(headerRequestID) == "" && ev.RequestContext.RequestID != "" {
		req.Header.Set(headerRequestID, ev.RequestContext.RequestID)
	}
	req.RemoteAddr = ev.RequestContext.Identity.SourceIP
	return req, nil
}

func query(ev events.APIGatewayProxyRequest) url.Values {
	q := url.Values{}
	for k, v := range ev.QueryStringParameters {
		q.Set(k, v)
	}
	for k, vs := range ev.MultiValueQueryStringParameters {
		q[k] = append([]string(nil), vs...)
	}
	return q
}

// responseWriter buffers a handler's response in memory.
type responseWriter struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newResponseWriter() *responseWriter {
	return &responseWriter{header: http.Header{}}
}

func (w *responseWriter) Header() http.Header { return w.header }

func (w *responseWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.body.Write(b)
}

func (w *responseWriter) response() events.APIGatewayProxyResponse {
	status := w.status
	if status == 0 {
		status = http.StatusOK
	}
	single := make(map[string]string, len(w.header))
	for k, vs := range w.header {
		single[k] = strings.Join(vs, ", ")
	}
	return events.APIGatewayProxyResponse{
		StatusCode:        status,
		Headers:           single,
		MultiValueHeaders: w.header,
		Body:              w.body.String(),
	}
}
