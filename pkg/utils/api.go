package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// StatusError reports a non-2xx upstream response. The error body is not
// consumed, only the status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

// API is a minimal JSON GET client for a single upstream base URL.
type API struct {
	client  *http.Client
	baseURL string
}

func NewAPI(baseURL string) *API {
	return &API{client: http.DefaultClient, baseURL: baseURL}
}

// Get fetches baseURL+path and decodes the JSON body into v. A non-2xx
// response yields a *StatusError without reading the body.
func (a *API) Get(path string, v any) error {
	req, err := http.NewRequest("GET", fmt.Sprintf("%s%s", a.baseURL, path), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Code: resp.StatusCode}
	}

	return json.NewDecoder(resp.Body).Decode(v)
}
