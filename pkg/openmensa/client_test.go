package openmensa

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_FetchCanteens_Mock(t *testing.T) {
	mockResponse := `[
		{
			"id": 1,
			"name": "Mensa Academica",
			"city": "Aachen",
			"address": "Pontwall 3, 52062 Aachen",
			"coordinates": [50.7806, 6.0796]
		},
		{
			"id": 2,
			"name": "Mensa Vita",
			"city": "Aachen",
			"address": "Helmertweg 1, 52074 Aachen",
			"coordinates": null
		}
	]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/canteens" {
			t.Errorf("expected request path /canteens, got %s", r.URL.Path)
		}
		if r.Header.Get("User-Agent") != userAgent {
			t.Errorf("expected User-Agent %q, got %q", userAgent, r.Header.Get("User-Agent"))
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockResponse))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL, HTTPClient: server.Client()}

	canteens, err := client.FetchCanteens(context.Background())
	if err != nil {
		t.Fatalf("unexpected error fetching mocked catalogue: %v", err)
	}

	if len(canteens) != 2 {
		t.Fatalf("expected 2 canteens, got %d", len(canteens))
	}

	if canteens[0].ID != 1 || canteens[0].Name != "Mensa Academica" {
		t.Errorf("first canteen decoded wrong: %+v", canteens[0])
	}
	if canteens[0].Coordinates == nil {
		t.Fatalf("expected coordinates on first canteen, got nil")
	}
	if canteens[0].Coordinates.Latitude() != 50.7806 || canteens[0].Coordinates.Longitude() != 6.0796 {
		t.Errorf("coordinates decoded wrong: %+v", *canteens[0].Coordinates)
	}

	// null coordinates must decode to absence, not zeros
	if canteens[1].Coordinates != nil {
		t.Errorf("expected nil coordinates on second canteen, got %+v", *canteens[1].Coordinates)
	}
}

func TestClient_FetchCanteens_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "something broke"}`))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL, HTTPClient: server.Client()}

	_, err := client.FetchCanteens(context.Background())
	if err == nil {
		t.Fatalf("expected an error for a 500 response, got nil")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected a *StatusError, got %T: %v", err, err)
	}
	if statusErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status code 500, got %d", statusErr.StatusCode)
	}
	if statusErr.NotFound() {
		t.Errorf("a 500 must not report NotFound")
	}
}

func TestClient_FetchCanteens_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{invalid json`))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL, HTTPClient: server.Client()}

	_, err := client.FetchCanteens(context.Background())
	if err == nil {
		t.Fatalf("expected an error for a malformed body, got nil")
	}

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected a *DecodeError, got %T: %v", err, err)
	}
	if decodeErr.URL != server.URL+"/canteens" {
		t.Errorf("decode error should carry the request URL, got %q", decodeErr.URL)
	}
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close() // the address now refuses connections

	client := &Client{BaseURL: url}

	_, err := client.FetchCanteens(context.Background())
	if err == nil {
		t.Fatalf("expected an error against a closed server, got nil")
	}

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected a *TransportError, got %T: %v", err, err)
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL, HTTPClient: server.Client()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchCanteens(ctx)
	if err == nil {
		t.Fatalf("expected an error for a cancelled context, got nil")
	}

	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("expected a *TransportError, got %T: %v", err, err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected the error chain to contain context.Canceled, got: %v", err)
	}
}

func TestClient_ZeroValueTalksToDefaultEndpoint(t *testing.T) {
	var client Client
	if got := client.baseURL(); got != defaultBaseURL {
		t.Errorf("expected zero-value client to target %s, got %s", defaultBaseURL, got)
	}
	if client.httpClient() == nil {
		t.Errorf("expected zero-value client to build a usable transport")
	}
}
