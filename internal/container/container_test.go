package container

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"rickmorty/catalog/internal/config"
	"rickmorty/catalog/internal/domain"

	"github.com/alicebob/miniredis/v2"
)

// apiServer serves three pages of two characters and fails the pages listed in broken.
func apiServer(t *testing.T, broken ...int) *httptest.Server {
	t.Helper()
	const pages = 3

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 1 || page > pages {
			http.Error(w, `{"error":"There is nothing here"}`, http.StatusNotFound)
			return
		}
		for _, b := range broken {
			if b == page {
				http.Error(w, "upstream unavailable", http.StatusBadGateway)
				return
			}
		}

		body := domain.CharacterPage{Info: domain.PageInfo{Count: pages * 2, Pages: pages}}
		if page < pages {
			next := fmt.Sprintf("http://%s/api/character?page=%d", r.Host, page+1)
			body.Info.Next = &next
		}
		for i := 1; i <= 2; i++ {
			id := (page-1)*2 + i
			body.Results = append(body.Results, domain.Character{ID: id, Name: fmt.Sprintf("Rick %d", id), Status: "Alive"})
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		API: config.APIConfig{
			BaseURL:   baseURL + "/api",
			Timeout:   5,
			UserAgent: "container-test",
		},
		Labels: config.LabelsConfig{Language: "es"},
	}
}

func TestContainer_SearchAcrossPages(t *testing.T) {
	srv := apiServer(t)

	c, err := New(t.Context(), testConfig(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = c.Close() }()

	matches, report, err := c.Service.Search(t.Context(), "rick 5")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(matches) != 1 || matches[0].ID != 5 {
		t.Errorf("matches = %+v", matches)
	}
	if report.Characters != 6 || report.PagesLoaded != 3 || report.Partial {
		t.Errorf("unexpected report: %+v", report)
	}
}

func TestContainer_PartialLoad(t *testing.T) {
	srv := apiServer(t, 2)

	c, err := New(t.Context(), testConfig(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = c.Close() }()

	report, err := c.Service.Load(t.Context())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !report.Partial || report.FailedPage != 2 || report.Characters != 2 {
		t.Errorf("unexpected report: %+v", report)
	}
	msg, failed := c.Catalog.ErrorMessage()
	if !failed || msg != c.Translator.Messages().LoadError {
		t.Errorf("ErrorMessage() = %q, %v", msg, failed)
	}
}

func TestContainer_RedisNotifications(t *testing.T) {
	srv := apiServer(t)
	mr := miniredis.RunT(t)
	host, portStr, _ := net.SplitHostPort(mr.Addr())
	port, _ := strconv.Atoi(portStr)

	cfg := testConfig(srv.URL)
	cfg.Notify.Redis = config.RedisConfig{Enabled: true, Host: host, Port: port, Channel: "loads", Timeout: 1}

	c, err := New(t.Context(), cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer func() { _ = c.Close() }()

	sub := mr.NewSubscriber()
	sub.Subscribe("loads")
	received := make(chan miniredis.PubsubMessage, 1)
	go func() { received <- <-sub.Messages() }()

	report, err := c.Service.Load(t.Context())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	msg := <-received
	var got domain.LoadReport
	if err := json.Unmarshal([]byte(msg.Message), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ID != report.ID {
		t.Errorf("published id %q, want %q", got.ID, report.ID)
	}
}

func TestContainer_RedisUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	host, portStr, _ := net.SplitHostPort(mr.Addr())
	port, _ := strconv.Atoi(portStr)
	mr.Close()

	cfg := testConfig("http://127.0.0.1:1")
	cfg.Notify.Redis = config.RedisConfig{Enabled: true, Host: host, Port: port, Channel: "loads"}

	if _, err := New(t.Context(), cfg); err == nil {
		t.Fatal("expected error when Redis is unreachable")
	}
}
