package proxy

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSupplier_NoProxies(t *testing.T) {
	s := NewSupplier(t.Context(), nil, "http://example.invalid/")

	if got := s.Get(); got != "" {
		t.Errorf("Get() = %q, want empty", got)
	}
}

func TestSupplier_RoundRobin(t *testing.T) {
	s := &supplier{proxies: []string{"http://a:1", "http://b:2"}}

	want := []string{"http://a:1", "http://b:2", "http://a:1"}
	for i, w := range want {
		if got := s.Get(); got != w {
			t.Errorf("call %d: Get() = %q, want %q", i, got, w)
		}
	}
}

func TestNewSupplier_DropsDeadProxies(t *testing.T) {
	// Plain HTTP proxies receive the absolute request URL; answering 200 is enough to pass the probe.
	working := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer working.Close()

	refusing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer refusing.Close()

	s := NewSupplier(t.Context(), []string{refusing.URL, working.URL}, "http://catalog.test/api/character")

	if got := s.Get(); got != working.URL {
		t.Errorf("Get() = %q, want %q", got, working.URL)
	}
	if got := s.Get(); got != working.URL {
		t.Errorf("second Get() = %q, want %q", got, working.URL)
	}
}
