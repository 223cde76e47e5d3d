package api

import (
	"encoding/json"
	"navigation-service/internal/adapters/geocoding"
	"navigation-service/internal/adapters/sessions"
	"navigation-service/internal/api/dto"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	geocoder := geocoding.NewMockGeocoder([]geocoding.MockPlace{
		{Query: "New Delhi", Lat: 28.6139, Lon: 77.2090, Address: "New Delhi, Delhi, India"},
		{Query: "India Gate", Lat: 28.6129, Lon: 77.2295, Address: "India Gate, New Delhi, India"},
	})

	srv := httptest.NewServer(NewRouter(sessions.NewMemoryStore(), geocoder))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, target, body string, out any) int {
	t.Helper()

	req, err := http.NewRequest(method, target, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(res.Body).Decode(out))
	}
	return res.StatusCode
}

func createSession(t *testing.T, base string) string {
	t.Helper()

	var created dto.CreateSessionResponse
	status := doJSON(t, http.MethodPost, base+"/sessions", "", &created)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, created.SessionID)
	return created.SessionID
}

func TestHealthAndTemplates(t *testing.T) {
	srv := newTestServer(t)

	var health map[string]string
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, srv.URL+"/health", "", &health))
	require.Equal(t, "ok", health["status"])

	var templates dto.ListTemplatesResponse
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, srv.URL+"/templates", "", &templates))
	require.Len(t, templates.Templates, 6)
	require.Equal(t, "Location Share", templates.Templates[0].Name)
}

func TestSessionNavigationFlow(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL + "/sessions/" + createSession(t, srv.URL)

	var errRes map[string]string
	require.Equal(t, http.StatusConflict, doJSON(t, http.MethodGet, base+"/navigation", "", &errRes))
	require.NotEmpty(t, errRes["error"])

	var origin dto.ResolveLocationResponse
	status := doJSON(t, http.MethodPut, base+"/locations/origin", `{"query":"New Delhi"}`, &origin)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "origin", origin.Slot)
	require.Equal(t, 28.6139, origin.Location.Lat)

	var session dto.SessionResponse
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, base, "", &session))
	require.Equal(t, "origin_set", session.Phase)
	require.NotNil(t, session.Origin)
	require.Nil(t, session.Destination)

	status = doJSON(t, http.MethodPut, base+"/locations/destination", `{"query":"India Gate"}`, nil)
	require.Equal(t, http.StatusOK, status)

	var nav dto.NavigationResponse
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, base+"/navigation", "", &nav))
	require.Equal(t, "2.00 km", nav.Distance)
	require.Len(t, nav.Links, 3)
	require.Equal(t, "drive", nav.Links[0].Mode)
	require.True(t, strings.HasSuffix(nav.Links[0].URL, "!3e0"))

	var walk dto.NavigationResponse
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, base+"/navigation?mode=walk", "", &walk))
	require.Len(t, walk.Links, 1)
	require.Equal(t, "walk", walk.Links[0].Mode)
	require.Equal(t, http.StatusBadRequest, doJSON(t, http.MethodGet, base+"/navigation?mode=fly", "", &errRes))

	var msg dto.MessageResponse
	status = doJSON(t, http.MethodPost, base+"/messages",
		`{"recipient":"+91 98765 43210","template":"Arrival Notice","share":"destination"}`, &msg)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "919876543210", msg.RecipientDigits)
	require.True(t, strings.HasPrefix(msg.URL, "https://wa.me/919876543210?text="))

	u, err := url.Parse(msg.URL)
	require.NoError(t, err)
	require.Equal(t, msg.Body, u.Query().Get("text"))
	require.Contains(t, msg.Body, "Destination: India Gate, New Delhi, India")

	// Share names are case-insensitive and a whitespace body is kept as is.
	status = doJSON(t, http.MethodPost, base+"/messages",
		`{"recipient":"9876543210","body":"   ","share":"Origin"}`, &msg)
	require.Equal(t, http.StatusOK, status)
	require.True(t, strings.HasPrefix(msg.Body, "   \n\n📍 Location Details:\nCurrent: New Delhi, Delhi, India\n"))
	require.NotContains(t, msg.Body, "Destination:")

	require.Equal(t, http.StatusOK, doJSON(t, http.MethodPost, base+"/reset", "", &session))
	require.Equal(t, "empty", session.Phase)

	require.Equal(t, http.StatusNoContent, doJSON(t, http.MethodDelete, base, "", nil))
	require.Equal(t, http.StatusNotFound, doJSON(t, http.MethodGet, base, "", &errRes))
}

func TestErrorStatuses(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL + "/sessions/" + createSession(t, srv.URL)

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"unknown session", http.MethodGet, srv.URL + "/sessions/missing", "", http.StatusNotFound},
		{"bad slot", http.MethodPut, base + "/locations/waypoint", `{"query":"New Delhi"}`, http.StatusBadRequest},
		{"empty query", http.MethodPut, base + "/locations/origin", `{"query":"   "}`, http.StatusBadRequest},
		{"unknown field", http.MethodPut, base + "/locations/origin", `{"q":"New Delhi"}`, http.StatusBadRequest},
		{"not found", http.MethodPut, base + "/locations/origin", `{"query":"Atlantis"}`, http.StatusNotFound},
		{"short recipient", http.MethodPost, base + "/messages", `{"recipient":"12345","body":"hi"}`, http.StatusBadRequest},
		{"empty body", http.MethodPost, base + "/messages", `{"recipient":"9876543210","body":""}`, http.StatusBadRequest},
		{"bad share", http.MethodPost, base + "/messages", `{"recipient":"9876543210","body":"hi","share":"all"}`, http.StatusBadRequest},
		{"unknown template", http.MethodPost, base + "/messages", `{"recipient":"9876543210","template":"Party"}`, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var errRes map[string]string
			require.Equal(t, tc.status, doJSON(t, tc.method, tc.path, tc.body, &errRes))
			require.NotEmpty(t, errRes["error"])
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, srv.URL+"/health", "", nil))

	res, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
}
