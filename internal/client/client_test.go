package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gatherly/gatherly-go/internal/model"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

func TestDo_AttachesBearerTokenWhenPresent(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]model.EventResponse{})
	}))
	defer server.Close()

	c := New(server.URL, server.Client(), staticToken("tok-123"), nil)

	if _, err := c.ListEvents(context.Background()); err != nil {
		t.Fatalf("ListEvents() unexpected error: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer tok-123")
	}
}

func TestDo_OmitsAuthorizationWithoutToken(t *testing.T) {
	var gotAuth string
	var hadHeader bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hadHeader = r.Header["Authorization"]
		json.NewEncoder(w).Encode([]model.EventResponse{})
	}))
	defer server.Close()

	c := New(server.URL, server.Client(), staticToken(""), nil)

	if _, err := c.ListEvents(context.Background()); err != nil {
		t.Fatalf("ListEvents() unexpected error: %v", err)
	}
	if hadHeader {
		t.Errorf("Authorization header present (%q), want omitted", gotAuth)
	}
}

func TestDo_UnauthorizedFiresTeardownHook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid or expired token"})
	}))
	defer server.Close()

	var tornDown bool
	c := New(server.URL, server.Client(), staticToken("stale"), func() { tornDown = true })

	_, err := c.ListEvents(context.Background())
	if err == nil {
		t.Fatal("ListEvents() expected error for 401 response")
	}
	if !tornDown {
		t.Error("expected unauthorized hook to fire on 401")
	}
	if !IsUnauthorized(err) {
		t.Errorf("IsUnauthorized(%v) = false, want true", err)
	}
}

func TestDo_LoginEndpointDoesNotFireTeardownHook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid email or password"})
	}))
	defer server.Close()

	var tornDown bool
	c := New(server.URL, server.Client(), nil, func() { tornDown = true })

	_, err := c.Login(context.Background(), "a@b.com", "wrong")
	if err == nil {
		t.Fatal("Login() expected error for 401 response")
	}
	if tornDown {
		t.Error("unauthorized hook must not fire for the login endpoint")
	}
	if got := ErrorMessage(err); got != "invalid email or password" {
		t.Errorf("ErrorMessage() = %q, want server message", got)
	}
}

func TestDo_ErrorMessageFallbacks(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"error field", `{"error":"event not found"}`, "event not found"},
		{"message fallback", `{"message":"upstream unavailable"}`, "upstream unavailable"},
		{"unparseable body", `<html>oops</html>`, "request failed"},
		{"empty body", ``, "request failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := New(server.URL, server.Client(), nil, nil)

			_, err := c.ListEvents(context.Background())
			if err == nil {
				t.Fatal("ListEvents() expected error")
			}
			if got := ErrorMessage(err); got != tt.want {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDo_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "event not found"})
	}))
	defer server.Close()

	c := New(server.URL, server.Client(), nil, nil)

	_, err := c.GetEvent(context.Background(), 99)
	if !IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = false, want true", err)
	}
}

func TestDo_DecodesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/events/3" {
			t.Errorf("path = %s, want /events/3", r.URL.Path)
		}
		json.NewEncoder(w).Encode(model.EventResponse{ID: 3, Name: "Jazz Night", OwnerID: 1})
	}))
	defer server.Close()

	c := New(server.URL, server.Client(), nil, nil)

	event, err := c.GetEvent(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetEvent() unexpected error: %v", err)
	}
	if event.ID != 3 || event.Name != "Jazz Night" || event.OwnerID != 1 {
		t.Errorf("GetEvent() = %+v, want ID 3 / Jazz Night / owner 1", event)
	}
}

func TestDo_SendsJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		var req model.EventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		if req.Name != "Tech Meetup" {
			t.Errorf("name = %q, want Tech Meetup", req.Name)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(model.EventResponse{ID: 1, Name: req.Name})
	}))
	defer server.Close()

	c := New(server.URL, server.Client(), nil, nil)

	event, err := c.CreateEvent(context.Background(), model.EventRequest{Name: "Tech Meetup"})
	if err != nil {
		t.Fatalf("CreateEvent() unexpected error: %v", err)
	}
	if event.ID != 1 {
		t.Errorf("CreateEvent() ID = %d, want 1", event.ID)
	}
}

func TestDo_NoContentResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := New(server.URL, server.Client(), nil, nil)

	if err := c.DeleteEvent(context.Background(), 5); err != nil {
		t.Fatalf("DeleteEvent() unexpected error: %v", err)
	}
}
