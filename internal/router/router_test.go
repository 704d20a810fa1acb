package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"puppy-service/internal/router"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type puppyBody struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Breed       *string    `json:"breed"`
	WeightLbs   *string    `json:"weight_lbs"`
	ArrivalDate *time.Time `json:"arrival_date"`
	Vaccinated  bool       `json:"vaccinated"`
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(router.NewRouter(router.Options{Logger: zerolog.Nop()}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_PuppyLifecycle(t *testing.T) {
	ts := newServer(t)

	// 1) Crear con solo name => defaults
	before := time.Now().Add(-time.Second)
	rex := createPuppy(t, ts.URL, map[string]any{"name": "Rex"})
	assert.Equal(t, "Rex", rex.Name)
	assert.False(t, rex.Vaccinated)
	assert.Nil(t, rex.Breed)
	assert.Nil(t, rex.WeightLbs)
	require.NotNil(t, rex.ArrivalDate)
	assert.True(t, rex.ArrivalDate.After(before), "arrival_date should be close to now")
	assert.WithinDuration(t, time.Now(), *rex.ArrivalDate, 5*time.Second)

	// 2) Get devuelve lo mismo que create
	{
		st, body := doReq(t, ts.URL, "GET", "/puppies/"+itoa(rex.ID), nil)
		require.Equal(t, http.StatusOK, st, "body=%s", body)

		var got puppyBody
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, rex.ID, got.ID)
		assert.Equal(t, rex.Name, got.Name)
		assert.Equal(t, rex.Vaccinated, got.Vaccinated)
		assert.True(t, rex.ArrivalDate.Equal(*got.ArrivalDate))
	}

	// 3) PUT parcial: solo cambia breed y weight
	{
		st, body := doReq(t, ts.URL, "PUT", "/puppies/"+itoa(rex.ID), map[string]any{
			"breed":      "beagle",
			"weight_lbs": 12.5,
		})
		require.Equal(t, http.StatusOK, st, "body=%s", body)

		var got puppyBody
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "Rex", got.Name)
		require.NotNil(t, got.Breed)
		assert.Equal(t, "beagle", *got.Breed)
		require.NotNil(t, got.WeightLbs)
		assert.Equal(t, "12.50", *got.WeightLbs)
		assert.False(t, got.Vaccinated)
	}

	// 4) Delete
	{
		st, body := doReq(t, ts.URL, "DELETE", "/puppies/"+itoa(rex.ID), nil)
		require.Equal(t, http.StatusOK, st, "body=%s", body)
		assert.JSONEq(t, `{"message":"Puppy deleted"}`, string(body))
	}

	// 5) Get después de delete => 404
	{
		st, body := doReq(t, ts.URL, "GET", "/puppies/"+itoa(rex.ID), nil)
		require.Equal(t, http.StatusNotFound, st)
		assert.JSONEq(t, `{"error":"Puppy not found"}`, string(body))
	}
}

func TestHTTP_CreatePuppy_ExampleResponse(t *testing.T) {
	ts := newServer(t)

	st, body := doReq(t, ts.URL, "POST", "/puppies", map[string]any{
		"name":       "Rex",
		"vaccinated": true,
	})
	require.Equal(t, http.StatusCreated, st, "body=%s", body)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.Equal(t, float64(1), raw["id"])
	assert.Equal(t, "Rex", raw["name"])
	assert.Nil(t, raw["breed"])
	assert.Nil(t, raw["weight_lbs"])
	assert.NotEmpty(t, raw["arrival_date"])
	assert.Equal(t, true, raw["vaccinated"])
	assert.Len(t, raw, 6)
}

func TestHTTP_CreatePuppy_RequiresName(t *testing.T) {
	ts := newServer(t)

	for _, payload := range []map[string]any{
		{},
		{"breed": "poodle"},
		{"name": ""},
		{"name": "   "},
	} {
		st, body := doReq(t, ts.URL, "POST", "/puppies", payload)
		require.Equal(t, http.StatusBadRequest, st, "payload=%v", payload)
		assert.JSONEq(t, `{"error":"Name is required"}`, string(body))
	}

	// nada persistido
	st, body := doReq(t, ts.URL, "GET", "/puppies", nil)
	require.Equal(t, http.StatusOK, st)
	assert.JSONEq(t, `[]`, string(body))
}

func TestHTTP_CreatePuppy_RejectsBadInput(t *testing.T) {
	ts := newServer(t)

	st, _ := doRawReq(t, ts.URL, "POST", "/puppies", []byte(`{"name":`))
	assert.Equal(t, http.StatusBadRequest, st)

	st, body := doReq(t, ts.URL, "POST", "/puppies", map[string]any{
		"name":       "Rex",
		"weight_lbs": 1000,
	})
	assert.Equal(t, http.StatusBadRequest, st)
	assert.JSONEq(t, `{"error":"weight_lbs must be less than 1000"}`, string(body))

	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}
	st, body = doReq(t, ts.URL, "POST", "/puppies", map[string]any{"name": string(long)})
	assert.Equal(t, http.StatusBadRequest, st)
	assert.JSONEq(t, `{"error":"Name must be at most 100 characters"}`, string(body))
}

func TestHTTP_Weight_HugeExponentIsFast400(t *testing.T) {
	ts := newServer(t)

	start := time.Now()
	st, body := doRawReq(t, ts.URL, "POST", "/puppies", []byte(`{"name":"Rex","weight_lbs":1e90000000}`))
	assert.Less(t, time.Since(start), 2*time.Second)
	require.Equal(t, http.StatusBadRequest, st, "body=%s", body)
	assert.JSONEq(t, `{"error":"weight_lbs must be less than 1000"}`, string(body))

	p := createPuppy(t, ts.URL, map[string]any{"name": "Milo"})

	start = time.Now()
	st, body = doRawReq(t, ts.URL, "PUT", "/puppies/"+itoa(p.ID), []byte(`{"weight_lbs":-1e90000000}`))
	assert.Less(t, time.Since(start), 2*time.Second)
	require.Equal(t, http.StatusBadRequest, st, "body=%s", body)
	assert.JSONEq(t, `{"error":"weight_lbs must not be negative"}`, string(body))
}

func TestHTTP_OversizedBody_BadRequest(t *testing.T) {
	// sin red: el recorder evita resets del cliente mientras sigue escribiendo el body
	h := router.NewRouter(router.Options{Logger: zerolog.Nop()})

	serve := func(method, path string, body []byte) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	rec := serve("POST", "/puppies", []byte(`{"name":"Rex"}`))
	require.Equal(t, http.StatusCreated, rec.Code, "body=%s", rec.Body.String())
	var p puppyBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))

	big := []byte(`{"name":"` + strings.Repeat("a", 2<<20) + `"}`)

	rec = serve("POST", "/puppies", big)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid JSON body"}`, rec.Body.String())

	rec = serve("PUT", "/puppies/"+itoa(p.ID), big)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid JSON body"}`, rec.Body.String())

	// nada cambió
	rec = serve("GET", "/puppies", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []puppyBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Rex", items[0].Name)
}

func TestHTTP_ListPuppies_DistinctIDsInOrder(t *testing.T) {
	ts := newServer(t)

	names := []string{"Rex", "Milo", "Luna", "Toby"}
	for _, n := range names {
		createPuppy(t, ts.URL, map[string]any{"name": n})
	}

	st, body := doReq(t, ts.URL, "GET", "/puppies", nil)
	require.Equal(t, http.StatusOK, st)

	var items []puppyBody
	require.NoError(t, json.Unmarshal(body, &items))
	require.Len(t, items, len(names))

	seen := map[int64]struct{}{}
	for i, p := range items {
		_, dup := seen[p.ID]
		assert.False(t, dup, "duplicate id %d", p.ID)
		seen[p.ID] = struct{}{}
		assert.Equal(t, names[i], p.Name)
	}
}

func TestHTTP_UpdatePuppy_NullAndUnknownFields(t *testing.T) {
	ts := newServer(t)

	p := createPuppy(t, ts.URL, map[string]any{
		"name":       "Luna",
		"breed":      "husky",
		"weight_lbs": "20.25",
		"vaccinated": true,
	})

	st, body := doReq(t, ts.URL, "PUT", "/puppies/"+itoa(p.ID), map[string]any{
		"id":         999,
		"breed":      nil,
		"weight_lbs": nil,
		"color":      "grey",
	})
	require.Equal(t, http.StatusOK, st, "body=%s", body)

	var got puppyBody
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "Luna", got.Name)
	assert.Nil(t, got.Breed)
	assert.Nil(t, got.WeightLbs)
	assert.True(t, got.Vaccinated)

	// name null => 400
	st, _ = doReq(t, ts.URL, "PUT", "/puppies/"+itoa(p.ID), map[string]any{"name": nil})
	assert.Equal(t, http.StatusBadRequest, st)
}

func TestHTTP_MissingPuppy_NotFound(t *testing.T) {
	ts := newServer(t)

	st, _ := doReq(t, ts.URL, "GET", "/puppies/42", nil)
	assert.Equal(t, http.StatusNotFound, st)

	st, _ = doReq(t, ts.URL, "PUT", "/puppies/42", map[string]any{"name": "Ghost"})
	assert.Equal(t, http.StatusNotFound, st)

	st, _ = doReq(t, ts.URL, "DELETE", "/puppies/42", nil)
	assert.Equal(t, http.StatusNotFound, st)
}

func TestHTTP_IDBeyondInt4_NotFound(t *testing.T) {
	ts := newServer(t)

	for _, method := range []string{"GET", "PUT", "DELETE"} {
		st, body := doReq(t, ts.URL, method, "/puppies/3000000000", map[string]any{"name": "Ghost"})
		assert.Equal(t, http.StatusNotFound, st, "method=%s", method)
		assert.JSONEq(t, `{"error":"Puppy not found"}`, string(body))
	}
}

func TestHTTP_InvalidPuppyID(t *testing.T) {
	ts := newServer(t)

	for _, method := range []string{"GET", "PUT", "DELETE"} {
		st, body := doReq(t, ts.URL, method, "/puppies/abc", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, st, "method=%s", method)
		assert.JSONEq(t, `{"error":"Invalid puppy id"}`, string(body))
	}
}

func TestHTTP_Health_RequestID_CORS(t *testing.T) {
	ts := newServer(t)

	req, err := http.NewRequest("GET", ts.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "abc-123")
	req.Header.Set("Origin", "http://example.com")

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "abc-123", res.Header.Get("X-Request-ID"))
	assert.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))

	// sin header entrante se genera uno
	st, _ := doReq(t, ts.URL, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, st)
}

func createPuppy(t *testing.T, baseURL string, payload map[string]any) puppyBody {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/puppies", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create puppy, got %d body=%s", st, string(body))
	}

	var resp puppyBody
	_ = json.Unmarshal(body, &resp)
	if resp.ID == 0 {
		t.Fatalf("create puppy: missing id body=%s", string(body))
	}
	return resp
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var b []byte
	if body != nil {
		var err error
		b, err = json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
	}
	return doRawReq(t, baseURL, method, path, b)
}

func doRawReq(t *testing.T, baseURL, method, path string, body []byte) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
