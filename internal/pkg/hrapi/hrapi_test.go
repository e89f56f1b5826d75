package hrapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID     string `json:"_id"`
	UserID string `json:"userId"`
}

func TestDecodeList_Shapes(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		shape Shape
		ids   []string
	}{
		{"bare array", `[{"_id":"a"},{"_id":"b"}]`, ShapeArray, []string{"a", "b"}},
		{"envelope", `{"success":true,"data":[{"_id":"c"}],"pagination":{"currentPage":1,"totalPages":1}}`, ShapeEnvelope, []string{"c"}},
		{"users", `{"success":true,"users":[{"_id":"u1"}]}`, ShapeUsers, []string{"u1"}},
		{"object data", `{"success":true,"data":{"_id":"x"}}`, ShapeUnknown, nil},
		{"string", `"nope"`, ShapeUnknown, nil},
		{"empty", ``, ShapeUnknown, nil},
		{"null", `null`, ShapeUnknown, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			page, err := DecodeList[record]([]byte(c.body))
			require.NoError(t, err)
			assert.Equal(t, c.shape, page.Shape)
			require.NotNil(t, page.Items)

			var ids []string
			for _, item := range page.Items {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, c.ids, ids)
		})
	}
}

func TestDecodeList_SuccessFalse(t *testing.T) {
	_, err := DecodeList[record]([]byte(`{"success":false,"message":"boom"}`))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 0, apiErr.StatusCode)
	assert.Equal(t, "boom", apiErr.Message)
}

func TestDecodeOne(t *testing.T) {
	item, err := DecodeOne[record]([]byte(`{"_id":"a","userId":"u1"}`))
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "a", item.ID)

	item, err = DecodeOne[record]([]byte(`{"success":true,"data":{"_id":"b"}}`))
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "b", item.ID)

	item, err = DecodeOne[record]([]byte(`{"success":true,"message":"deleted"}`))
	require.NoError(t, err)
	assert.Nil(t, item)

	_, err = DecodeOne[record]([]byte(`{"success":false,"message":"duplicate"}`))
	assert.Error(t, err)
}

func TestResource_ListAllFollowsPages(t *testing.T) {
	var pages []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		pages = append(pages, r.URL.Query().Get("page"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		assert.Equal(t, "2024-05-01", r.URL.Query().Get("date"))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    []record{{ID: "p" + strconv.Itoa(page)}},
			"pagination": Pagination{
				CurrentPage: page, TotalPages: 3, TotalRecords: 3, Limit: 50,
			},
		})
	}))
	defer srv.Close()

	res := NewResource[record](NewClient(srv.URL, time.Second, 50), "/api/hr/attendance")
	items, err := res.ListAll(context.Background(), ListOptions{Date: "2024-05-01"})
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "3"}, pages)
	require.Len(t, items, 3)
	assert.Equal(t, "p3", items[2].ID)
}

func TestResource_ListAllBareArrayStopsAfterOneCall(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = io.WriteString(w, `[{"_id":"a"}]`)
	}))
	defer srv.Close()

	res := NewResource[record](NewClient(srv.URL, time.Second, 0), "/api/leaves")
	items, err := res.ListAll(context.Background(), ListOptions{})
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, calls)
}

func TestResource_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"success":false,"message":"record not found"}`)
	}))
	defer srv.Close()

	res := NewResource[record](NewClient(srv.URL+"/", time.Second, 10), "/api/leaves")
	err := res.Delete(context.Background(), "abc")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.True(t, apiErr.IsNotFound())
	assert.Equal(t, "record not found", apiErr.Message)
	assert.Equal(t, "/api/leaves/abc", apiErr.Path)
}

func TestResource_CreateAndUpdate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		switch r.Method {
		case http.MethodPost:
			assert.Equal(t, "/api/hr/attendance", r.URL.Path)
			_, _ = io.WriteString(w, `{"success":true,"data":{"_id":"new","userId":"u1"}}`)
		case http.MethodPut:
			assert.Equal(t, "/api/hr/attendance/new", r.URL.Path)
			_, _ = io.WriteString(w, `{"success":true,"message":"updated"}`)
		}
	}))
	defer srv.Close()

	res := NewResource[record](NewClient(srv.URL, time.Second, 10), "/api/hr/attendance")

	created, err := res.Create(context.Background(), map[string]string{"userId": "u1"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "new", created.ID)

	updated, err := res.Update(context.Background(), "new", map[string]bool{"firstHalfPresent": true})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestResource_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	res := NewResource[record](NewClient(url, time.Second, 10), "/api/hr/users")
	_, err := res.List(context.Background(), ListOptions{})
	assert.Error(t, err)
}
