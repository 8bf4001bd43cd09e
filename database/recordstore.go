package database

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Error kinds for record store operations. Every list-read failure (network,
// non-2xx status or an unparsable body downstream) surfaces as ErrFetch;
// every create failure surfaces as ErrSubmit.
var (
	ErrFetch  = errors.New("record store fetch failed")
	ErrSubmit = errors.New("record store submit failed")
)

// Store is the global record store client. All patient, doctor, appointment
// and inventory records live behind it; this service keeps no database of
// its own.
var Store *RecordStore

// RecordStore is a plain HTTP + JSON client for the hospital record store.
type RecordStore struct {
	baseURL string
	client  *http.Client
}

// InitRecordStore initializes the global record store client and verifies
// the base URL is well formed.
func InitRecordStore(baseURL string, timeout time.Duration) error {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.Errorf("invalid record store URL %q", baseURL)
	}
	Store = NewRecordStore(baseURL, timeout)
	log.Printf("Record store client initialized for %s", parsed.Host)
	return nil
}

// NewRecordStore creates a record store client for the given base URL.
func NewRecordStore(baseURL string, timeout time.Duration) *RecordStore {
	return &RecordStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// GetList reads a collection endpoint and returns the raw JSON array body.
func (s *RecordStore) GetList(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, errors.Wrapf(ErrFetch, "build request for %s: %v", path, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(ErrFetch, "get %s: %v", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Wrapf(ErrFetch, "get %s: status %d", path, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(ErrFetch, "read %s response: %v", path, err)
	}
	return body, nil
}

// PostJSON creates a record on a collection endpoint and returns the raw
// JSON object body of the created record.
func (s *RecordStore) PostJSON(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrapf(ErrSubmit, "encode %s payload: %v", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, errors.Wrapf(ErrSubmit, "build request for %s: %v", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(ErrSubmit, "post %s: %v", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Wrapf(ErrSubmit, "post %s: status %d", path, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(ErrSubmit, "read %s response: %v", path, err)
	}
	return body, nil
}
