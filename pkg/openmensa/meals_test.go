package openmensa

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

func TestClient_FetchMeals_Mock(t *testing.T) {
	mockResponse := `[
		{
			"id": 5001,
			"name": "Vegan Schnitzel",
			"category": "Main dish",
			"prices": {
				"students": 2.60,
				"employees": 3.80,
				"pupils": null,
				"others": 4.90
			},
			"notes": ["vegan", "contains soy"],
			"image": "https://example.org/schnitzel.jpg"
		},
		{
			"id": 5002,
			"name": "Chocolate Pudding",
			"category": "Dessert",
			"prices": {},
			"notes": []
		}
	]`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/canteens/42/days/2024-07-05/meals" {
			t.Errorf("unexpected request path: %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(mockResponse))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL, HTTPClient: server.Client()}

	canteen := Canteen{ID: 42, Name: "Mensa Nord"}
	meals, err := client.FetchMeals(context.Background(), canteen, "2024-07-05")
	if err != nil {
		t.Fatalf("unexpected error fetching mocked meals: %v", err)
	}

	if len(meals) != 2 {
		t.Fatalf("expected 2 meals, got %d", len(meals))
	}

	// Unknown fields like "image" are ignored, everything else decodes
	want := Meal{
		ID:       5001,
		Name:     "Vegan Schnitzel",
		Category: "Main dish",
		Prices: Prices{
			Students:  floatPtr(2.60),
			Employees: floatPtr(3.80),
			Others:    floatPtr(4.90),
		},
		Notes: []string{"vegan", "contains soy"},
	}
	if !reflect.DeepEqual(meals[0], want) {
		t.Errorf("first meal mismatch.\nGot: %+v\nExpected: %+v", meals[0], want)
	}

	if meals[1].Prices.Students != nil || meals[1].Prices.Others != nil {
		t.Errorf("expected absent price tiers to stay nil, got %+v", meals[1].Prices)
	}
	if len(meals[1].Notes) != 0 {
		t.Errorf("expected empty notes, got %v", meals[1].Notes)
	}
}

func TestClient_FetchMeals_EmptyDay(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL, HTTPClient: server.Client()}

	meals, err := client.FetchMeals(context.Background(), Canteen{ID: 42}, "2024-07-05")
	if err != nil {
		t.Fatalf("a day with zero meals is valid, but got error: %v", err)
	}
	if len(meals) != 0 {
		t.Errorf("expected no meals, got %+v", meals)
	}
}

func TestClient_FetchMeals_DecodeErrorCarriesURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message": "this is not a meal list"}`))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL, HTTPClient: server.Client()}

	_, err := client.FetchMeals(context.Background(), Canteen{ID: 42}, "2024-07-05")
	if err == nil {
		t.Fatalf("expected a decode error for a mis-shaped body, got nil")
	}

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected a *DecodeError, got %T: %v", err, err)
	}
	if !strings.Contains(decodeErr.URL, "/canteens/42/days/2024-07-05/meals") {
		t.Errorf("decode error should reference the meals URL, got %q", decodeErr.URL)
	}
}

func TestClient_FetchMeals_UnknownDayIsStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "day not found"}`))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL, HTTPClient: server.Client()}

	_, err := client.FetchMeals(context.Background(), Canteen{ID: 42}, "not-a-date")
	if err == nil {
		t.Fatalf("expected a 404 on the meals endpoint to surface as an error")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected a *StatusError, got %T: %v", err, err)
	}
	if !statusErr.NotFound() {
		t.Errorf("expected NotFound() to report true for a 404, status was %d", statusErr.StatusCode)
	}
}
