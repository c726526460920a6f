package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/montluxe/storefront/pkg/errors"
)

func TestLoginSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/login" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body.Username != "alice" || body.Password != "correct-pw" {
			t.Fatalf("unexpected credentials: %+v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"user_id":"42","access_token":"token-abc","user":{"username":"alice"},"plan":"gold"}}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	result, err := client.Login(context.Background(), "alice", "correct-pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.UserID != "42" || result.Username != "alice" || result.AccessToken != "token-abc" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Claims["plan"] != "gold" {
		t.Fatalf("expected extra claims preserved, got %v", result.Claims)
	}
}

func TestLoginRejectedCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client, _ := NewClient(server.URL)
	_, err := client.Login(context.Background(), "alice", "wrong-pw")

	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func TestLoginTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, _ := NewClient(server.URL)
	_, err := client.Login(context.Background(), "alice", "correct-pw")

	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestLoginMissingUserID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"access_token":"token"}}`))
	}))
	defer server.Close()

	client, _ := NewClient(server.URL)
	_, err := client.Login(context.Background(), "alice", "correct-pw")
	if err == nil {
		t.Fatalf("expected error for missing user_id")
	}
}

func TestDeleteUserSendsBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/users/42" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer token-abc" {
			t.Fatalf("unexpected auth header: %s", got)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, _ := NewClient(server.URL)
	if err := client.DeleteUser(context.Background(), "42", "token-abc"); err != nil {
		t.Fatalf("delete user: %v", err)
	}
}

func TestProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"data":{"products":[{"id":"p1","name":"Alpine Elegance","price_cents":129999,"image_url":"/images/alpine.png","href":"/products/alpine-elegance"}]}}`))
	}))
	defer server.Close()

	client, _ := NewClient(server.URL)
	products, err := client.Products(context.Background())
	if err != nil {
		t.Fatalf("products: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Alpine Elegance" || products[0].PriceCents != 129999 {
		t.Fatalf("unexpected products: %+v", products)
	}
}

func TestCategories(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/categories" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"data":{"categories":[{"id":"c1","name":"Genesis"},{"id":"c2","name":"Elite"}]}}`))
	}))
	defer server.Close()

	client, _ := NewClient(server.URL)
	categories, err := client.Categories(context.Background())
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(categories) != 2 || categories[0].Name != "Genesis" {
		t.Fatalf("unexpected categories: %+v", categories)
	}
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	if _, err := NewClient("   "); err == nil {
		t.Fatalf("expected error for empty base url")
	}
}
