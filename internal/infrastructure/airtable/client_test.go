package airtable

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartethnic/internal/domain/entity"
)

type fakeAirtable struct {
	mu       sync.Mutex
	created  []createRequest
	existing []record
	deleted  []string
}

func (f *fakeAirtable) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "/base-id/OTPs", r.URL.Path)

		switch r.Method {
		case http.MethodPost:
			var req createRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			f.created = append(f.created, req)
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, `{}`)
		case http.MethodGet:
			assert.Contains(t, r.URL.Query().Get("filterByFormula"), "DATETIME_DIFF")
			json.NewEncoder(w).Encode(listResponse{Records: f.existing})
		case http.MethodDelete:
			ids := r.URL.Query()["records[]"]
			assert.LessOrEqual(t, len(ids), destroyBatchSize)
			f.deleted = append(f.deleted, ids...)
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, `{}`)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}
}

func testClient(server *httptest.Server) *Client {
	return NewClient(Config{
		APIKey:  "test-key",
		BaseID:  "base-id",
		Table:   "OTPs",
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	}, server.Client())
}

func TestAppendCreatesRecord(t *testing.T) {
	fake := &fakeAirtable{}
	server := httptest.NewServer(fake.handler(t))
	defer server.Close()

	client := testClient(server)
	err := client.Append(context.Background(), &entity.OTPRecord{
		Email:     "priya@example.com",
		Code:      "123456",
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)

	require.Len(t, fake.created, 1)
	assert.Equal(t, "priya@example.com", fake.created[0].Fields.Email)
	assert.Equal(t, "123456", fake.created[0].Fields.OTP)
}

func TestAppendSurfacesAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := testClient(server)
	err := client.Append(context.Background(), &entity.OTPRecord{Email: "a@b.com", Code: "123456"})
	require.Error(t, err)
}

func TestDeleteOlderThanDestroysInBatches(t *testing.T) {
	fake := &fakeAirtable{}
	for i := 0; i < 23; i++ {
		fake.existing = append(fake.existing, record{ID: fmt.Sprintf("rec%02d", i)})
	}
	server := httptest.NewServer(fake.handler(t))
	defer server.Close()

	client := testClient(server)
	deleted, err := client.DeleteOlderThan(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 23, deleted)
	assert.Len(t, fake.deleted, 23)
}

func TestNewClientAppliesDefaults(t *testing.T) {
	client := NewClient(Config{APIKey: "k", BaseID: "base-id", Table: "OTPs"}, nil)

	assert.Equal(t, "https://api.airtable.com/v0/base-id/OTPs", client.tableURL())
	assert.Equal(t, defaultTimeout, client.client.Timeout)
}

func TestDeleteOlderThanFollowsPagination(t *testing.T) {
	var mu sync.Mutex
	var deleted []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()

		switch r.Method {
		case http.MethodGet:
			if r.URL.Query().Get("offset") == "" {
				json.NewEncoder(w).Encode(listResponse{
					Records: []record{{ID: "rec01"}, {ID: "rec02"}},
					Offset:  "page2",
				})
				return
			}
			assert.Equal(t, "page2", r.URL.Query().Get("offset"))
			json.NewEncoder(w).Encode(listResponse{Records: []record{{ID: "rec03"}}})
		case http.MethodDelete:
			deleted = append(deleted, r.URL.Query()["records[]"]...)
			fmt.Fprint(w, `{}`)
		}
	}))
	defer server.Close()

	client := testClient(server)
	n, err := client.DeleteOlderThan(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.ElementsMatch(t, []string{"rec01", "rec02", "rec03"}, deleted)
}

func TestDeleteOlderThanNoMatches(t *testing.T) {
	fake := &fakeAirtable{}
	server := httptest.NewServer(fake.handler(t))
	defer server.Close()

	client := testClient(server)
	deleted, err := client.DeleteOlderThan(context.Background(), 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 0, deleted)
	assert.Empty(t, fake.deleted)
}
