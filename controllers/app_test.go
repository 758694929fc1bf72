package controllers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/garagehub/servicing-app/models"
	"github.com/garagehub/servicing-app/routes"
)

// newTestApp builds the full application over a lazily-connecting client.
// The cases below all fail validation before any query is issued, so no
// database needs to be running.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	client, err := mongo.Connect(context.Background(),
		options.Client().ApplyURI("mongodb://127.0.0.1:27017"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	store := models.NewStore(client.Database("servicing_handler_test"))
	return routes.NewApp(store)
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	decoded := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func TestUnmatchedRoute(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/totally-a-real-endpoint", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Content not found", body["msg"])
}

func TestInvalidSortParams(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/technicians?sort_by=price", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Bad request", body["msg"])

	status, _ = doJSON(t, app, http.MethodGet, "/technicians?sort_by=rating&order=sideways", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestMalformedIDsRejectedBeforeLookup(t *testing.T) {
	app := newTestApp(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/technicians/not-a-reference"},
		{http.MethodDelete, "/technicians/not-a-reference"},
		{http.MethodDelete, "/technicians/not-a-reference/reviews/also-bad"},
		{http.MethodGet, "/users/not-a-reference"},
		{http.MethodDelete, "/users/not-a-reference"},
		{http.MethodGet, "/users/not-a-reference/reviews"},
		{http.MethodGet, "/users/not-a-reference/orders"},
		{http.MethodDelete, "/users/63ce75449ae462be0adad72f/reviews/also-bad"},
		{http.MethodDelete, "/users/63ce75449ae462be0adad72f/orders/also-bad"},
	}
	for _, tt := range paths {
		status, body := doJSON(t, app, tt.method, tt.path, "")
		assert.Equal(t, http.StatusBadRequest, status, "%s %s", tt.method, tt.path)
		assert.Equal(t, "Bad request", body["msg"])
	}
}

func TestServicePatchRejectsExtraField(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPatch,
		"/technicians/63ce75449ae462be0adad72d", `{"extraField":1}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Bad request", body["msg"])
}

func TestReviewPayloadShapeRejected(t *testing.T) {
	app := newTestApp(t)

	bodies := []string{
		`{"rating":4,"reviewedBy":"63ce75449ae462be0adad72f"}`,
		`{"reviewBody":"x","reviewedBy":"63ce75449ae462be0adad72f"}`,
		`{"reviewBody":"x","rating":4}`,
		`{"reviewBody":"x","rating":4,"reviewedBy":"63ce75449ae462be0adad72f","extra":true}`,
		`{"reviewBody":"x","rating":"four","reviewedBy":"63ce75449ae462be0adad72f"}`,
		`{"reviewBody":"x","rating":9,"reviewedBy":"63ce75449ae462be0adad72f"}`,
	}
	for _, payload := range bodies {
		status, body := doJSON(t, app, http.MethodPost,
			"/technicians/63ce75449ae462be0adad72d/reviews", payload)
		assert.Equal(t, http.StatusBadRequest, status, payload)
		assert.Equal(t, "Bad request", body["msg"])

		status, _ = doJSON(t, app, http.MethodPost,
			"/users/63ce75449ae462be0adad72f/reviews", payload)
		assert.Equal(t, http.StatusBadRequest, status, payload)
	}
}

func TestTechnicianCreateRejectsNullTechnician(t *testing.T) {
	app := newTestApp(t)

	payload := `{
		"username": "x",
		"firstName": "A",
		"lastName": "B",
		"address": {"addressLine": "1 Road", "postcode": "LS1 4PD"},
		"contact": {"phoneNumber": "07700900123", "email": "a@b.com"},
		"password": "pw",
		"technician": null
	}`
	status, body := doJSON(t, app, http.MethodPost, "/technicians", payload)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Bad request", body["msg"])
}

func TestOrderShapeRejected(t *testing.T) {
	app := newTestApp(t)

	status, _ := doJSON(t, app, http.MethodPost,
		"/users/63ce75449ae462be0adad72f/orders",
		`{"services":[],"createdAt":"2023-01-23T10:00:00Z","servicedBy":"63ce75449ae462be0adad72d"}`)
	assert.Equal(t, http.StatusBadRequest, status, "missing fulfilledAt key")

	status, _ = doJSON(t, app, http.MethodPatch,
		"/users/63ce75449ae462be0adad72f/orders/63ce75449ae462be0adad731",
		`{"services":[],"servicedBy":"63ce75449ae462be0adad72d"}`)
	assert.Equal(t, http.StatusBadRequest, status, "only services may be patched")
}

func TestRegisterShapeRejected(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodPost, "/users/register",
		`{"username":"x","password":"pw"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Bad request", body["msg"])
}

func TestProfileRequiresToken(t *testing.T) {
	app := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/user", "")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Unauthorized", body["msg"])
}
