package odata_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crm-admin-gateway/internal/crm/repository"
	"crm-admin-gateway/internal/crm/repository/odata"
	"crm-admin-gateway/internal/model"
)

func newTestClient(t *testing.T, mux *http.ServeMux) *odata.Client {
	t.Helper()
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return odata.NewClient(odata.ClientConfig{
		BaseURL:     ts.URL,
		AccessToken: "test-token",
		Timeout:     5 * time.Second,
	})
}

func TestODataClient(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/Accounts", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.Method {
		case http.MethodGet:
			if r.URL.Query().Get("$count") != "true" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			count := 42
			json.NewEncoder(w).Encode(map[string]any{
				"value":        []map[string]any{{"Id": "1", "Name": "Initech"}},
				"@odata.count": count,
			})
		case http.MethodPost:
			var rec map[string]any
			json.NewDecoder(r.Body).Decode(&rec)
			rec["Id"] = "2"
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(rec)
		}
	})

	mux.HandleFunc("/Accounts('1')", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]any{"Id": "1", "Name": "Initech"})
		case http.MethodPatch:
			// OData services commonly answer PATCH with 204.
			w.WriteHeader(http.StatusNoContent)
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})

	client := newTestClient(t, mux)
	ctx := context.Background()

	t.Run("List", func(t *testing.T) {
		res, err := client.List(ctx, model.EntityAccounts, "?$top=20&$skip=0&$count=true")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Items) != 1 || res.Count != 42 {
			t.Errorf("unexpected list result: %d items, count %d", len(res.Items), res.Count)
		}
	})

	t.Run("Get", func(t *testing.T) {
		raw, err := client.Get(ctx, model.EntityAccounts, "1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var rec map[string]any
		json.Unmarshal(raw, &rec)
		if rec["Name"] != "Initech" {
			t.Errorf("unexpected record: %v", rec)
		}
	})

	t.Run("Get Missing Maps To ErrNotFound", func(t *testing.T) {
		_, err := client.Get(ctx, model.EntityAccounts, "nope")
		if !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Create", func(t *testing.T) {
		raw, err := client.Create(ctx, model.EntityAccounts, map[string]any{"Name": "Globex"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var rec map[string]any
		json.Unmarshal(raw, &rec)
		if rec["Id"] != "2" {
			t.Errorf("unexpected created record: %v", rec)
		}
	})

	t.Run("Update Refetches After 204", func(t *testing.T) {
		raw, err := client.Update(ctx, model.EntityAccounts, "1", map[string]any{"Name": "Initech"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var rec map[string]any
		json.Unmarshal(raw, &rec)
		if rec["Id"] != "1" {
			t.Errorf("expected refetched record, got %v", rec)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := client.Delete(ctx, model.EntityAccounts, "1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Count Falls Back To Page Length", func(t *testing.T) {
		fallbackMux := http.NewServeMux()
		fallbackMux.HandleFunc("/Leads", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"value": []map[string]any{{"Id": "a"}, {"Id": "b"}},
			})
		})
		fallbackClient := newTestClient(t, fallbackMux)

		res, err := fallbackClient.List(ctx, model.EntityLeads, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Count != 2 {
			t.Errorf("expected count fallback to 2, got %d", res.Count)
		}
	})
}
