package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// AstraClient talks to the DataStax Astra Data API: one POST per command
// document, authenticated with the application token header.
type AstraClient struct {
	endpoint   string
	token      string
	keyspace   string
	httpClient *http.Client
}

// NewAstraClient builds a client for one database/keyspace. The endpoint is
// the database's API endpoint, e.g.
// https://<db-id>-<region>.apps.astra.datastax.com.
func NewAstraClient(endpoint, token, keyspace string) *AstraClient {
	return &AstraClient{
		endpoint: strings.TrimRight(endpoint, "/"),
		token:    token,
		keyspace: keyspace,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type astraEnvelope struct {
	Status *astraStatus `json:"status"`
	Data   *astraData   `json:"data"`
	Errors []astraError `json:"errors"`
}

type astraStatus struct {
	InsertedIDs []string `json:"insertedIds"`
	Count       int64    `json:"count"`
}

type astraData struct {
	Document      json.RawMessage   `json:"document"`
	Documents     []json.RawMessage `json:"documents"`
	NextPageState string            `json:"nextPageState"`
}

type astraError struct {
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode"`
}

// command posts one Data API command to a collection and decodes the
// response envelope, surfacing transport and API-level errors alike.
func (c *AstraClient) command(ctx context.Context, collection string, body interface{}) (*astraEnvelope, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/api/json/v1/%s/%s", c.endpoint, c.keyspace, collection)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("astra: %s returned %d: %s", url, resp.StatusCode, snippet(raw))
	}

	var envelope astraEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("astra: decoding response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		e := envelope.Errors[0]
		return nil, fmt.Errorf("astra: %s (%s)", e.Message, e.ErrorCode)
	}
	return &envelope, nil
}

func snippet(b []byte) string {
	const max = 256
	if len(b) > max {
		b = b[:max]
	}
	return string(b)
}
