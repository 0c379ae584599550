package orderapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"burger/internal/adapters/out/orderapi"
	"burger/internal/pkg/errs"
	"burger/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderResponse = `{
  "success": true,
  "name": "Краторный био-марсианский бургер",
  "order": {
    "_id": "662ae0a897ede0001d0676a3",
    "ingredients": [],
    "status": "done",
    "name": "Краторный био-марсианский бургер",
    "createdAt": "2024-04-25T23:00:24.420Z",
    "updatedAt": "2024-04-25T23:00:24.895Z",
    "number": 37865,
    "price": 1679
  }
}`

func newServer(t *testing.T, handler http.HandlerFunc) *orderapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := orderapi.NewClient(srv.URL + "/api")
	require.NoError(t, err)
	return client
}

func TestClient_PlaceOrder_Success(t *testing.T) {
	var got struct {
		Ingredients []string `json:"ingredients"`
	}
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(orderResponse))
	})
	ids := []string{testutil.CraterBunID, testutil.BioCutletID}

	rec, err := client.PlaceOrder(t.Context(), ids)

	require.NoError(t, err)
	assert.Equal(t, ids, got.Ingredients)
	assert.Equal(t, 37865, rec.Number())
	assert.Equal(t, "Краторный био-марсианский бургер", rec.Name())
	assert.Equal(t, "done", rec.Status())
	assert.Equal(t, "662ae0a897ede0001d0676a3", rec.ID())
	assert.Equal(t, ids, rec.IngredientIDs())
	assert.Equal(t, 2024, rec.CreatedAt().Year())
}

func TestClient_PlaceOrder_BackendMessage(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success": false, "message": "Ingredient ids must be provided"}`))
	})

	rec, err := client.PlaceOrder(t.Context(), nil)

	assert.Nil(t, rec)
	require.ErrorIs(t, err, orderapi.ErrOrderRejected)
	assert.EqualError(t, err, "Ingredient ids must be provided")
	var apiErr *orderapi.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestClient_PlaceOrder_SuccessFalseWithOK(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success": false}`))
	})

	_, err := client.PlaceOrder(t.Context(), []string{testutil.CraterBunID})

	require.ErrorIs(t, err, orderapi.ErrOrderRejected)
	assert.Contains(t, err.Error(), "HTTP 200")
}

func TestClient_PlaceOrder_ServerErrorWithoutBody(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.PlaceOrder(t.Context(), []string{testutil.CraterBunID})

	require.ErrorIs(t, err, orderapi.ErrOrderRejected)
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestClient_PlaceOrder_MalformedResponse(t *testing.T) {
	tests := map[string]string{
		"not json":       `<html>`,
		"proxy page":     `<html>gateway</html>`,
		"truncated body": `{"success": true, "order": {"num`,
		"missing order":  `{"success": true}`,
		"zero number":    `{"success": true, "order": {"number": 0}}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			client := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(body))
			})

			_, err := client.PlaceOrder(t.Context(), []string{testutil.CraterBunID})

			require.ErrorIs(t, err, orderapi.ErrMalformedResponse)
			assert.NotErrorIs(t, err, orderapi.ErrOrderRejected)
		})
	}
}

func TestClient_PlaceOrder_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	client, err := orderapi.NewClient(srv.URL, orderapi.WithTimeout(50*time.Millisecond))
	require.NoError(t, err)

	_, err = client.PlaceOrder(context.Background(), []string{testutil.CraterBunID})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
}

func TestNewClient_Validation(t *testing.T) {
	_, err := orderapi.NewClient("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = orderapi.NewClient("not a url")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
