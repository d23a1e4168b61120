package formclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"facility-website/internal/common/logger"
	"facility-website/internal/quote"
)

// fakeView records every call in order so tests can assert the rendering
// sequence, not just the final state.
type fakeView struct {
	events   []string
	busy     bool
	messages []string
}

func (v *fakeView) SetSubmitting(busy bool) {
	v.busy = busy
	if busy {
		v.events = append(v.events, "busy:on")
	} else {
		v.events = append(v.events, "busy:off")
	}
}

func (v *fakeView) ShowMessage(kind MessageKind, text string) {
	v.events = append(v.events, "show:"+string(kind))
	v.messages = append(v.messages, text)
}

func (v *fakeView) HideMessage() {
	v.events = append(v.events, "hide")
}

func (v *fakeView) ClearFields() {
	v.events = append(v.events, "clear")
}

func (v *fakeView) lastMessage() string {
	if len(v.messages) == 0 {
		return ""
	}
	return v.messages[len(v.messages)-1]
}

// immediateSchedule runs the deferred function inline and records the delay.
type immediateSchedule struct {
	delay time.Duration
	calls int
}

func (s *immediateSchedule) fn(d time.Duration, f func()) {
	s.delay = d
	s.calls++
	f()
}

func validValues() url.Values {
	return url.Values{
		"name":     {"Anna Muster"},
		"email":    {"anna@example.com"},
		"services": {"Gebäudereinigung", "Technischer Service"},
	}
}

func newController(t *testing.T, endpoint string) (*Controller, *fakeView, *immediateSchedule) {
	t.Helper()
	view := &fakeView{}
	sched := &immediateSchedule{}
	ctrl := NewController(ControllerDependencies{
		View:     view,
		Logger:   logger.NewTestLogger(t),
		Schedule: sched.fn,
	}, &Config{Endpoint: endpoint})
	return ctrl, view, sched
}

func TestCollect_AccumulatesRepeatedServices(t *testing.T) {
	values := url.Values{}
	values.Set("name", "Anna")
	values.Set("email", "anna@example.com")
	values.Add("services", "Gebäudereinigung")
	values.Add("services", "Sicherheitsdienst")
	values.Set("message", "Bitte um Rückruf")

	req := Collect(values)

	assert.Equal(t, "Anna", req.Name)
	assert.Equal(t, []string{"Gebäudereinigung", "Sicherheitsdienst"}, req.Services)
	assert.Equal(t, "Bitte um Rückruf", req.Message)
	assert.Empty(t, req.Company)
}

func TestSubmit_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(url.Values)
		message string
	}{
		{
			name:    "missing name",
			mutate:  func(v url.Values) { v.Del("name") },
			message: MsgRequiredFields,
		},
		{
			name:    "missing email",
			mutate:  func(v url.Values) { v.Del("email") },
			message: MsgRequiredFields,
		},
		{
			name:    "malformed email",
			mutate:  func(v url.Values) { v.Set("email", "anna@example") },
			message: MsgInvalidEmail,
		},
		{
			name:    "email with whitespace",
			mutate:  func(v url.Values) { v.Set("email", "anna @example.com") },
			message: MsgInvalidEmail,
		},
		{
			name:    "no services",
			mutate:  func(v url.Values) { v.Del("services") },
			message: MsgSelectService,
		},
		{
			name: "missing name reported before bad email",
			mutate: func(v url.Values) {
				v.Del("name")
				v.Set("email", "not-an-address")
			},
			message: MsgRequiredFields,
		},
		{
			name: "bad email reported before missing services",
			mutate: func(v url.Values) {
				v.Set("email", "not-an-address")
				v.Del("services")
			},
			message: MsgInvalidEmail,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var hits int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&hits, 1)
			}))
			defer srv.Close()

			ctrl, view, _ := newController(t, srv.URL)
			values := validValues()
			tc.mutate(values)

			err := ctrl.Submit(context.Background(), values)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.message, verr.Message)
			assert.Equal(t, tc.message, view.lastMessage())
			assert.Equal(t, int32(0), atomic.LoadInt32(&hits), "local failures must not reach the network")
			assert.NotContains(t, view.events, "busy:on")
		})
	}
}

func TestSubmit_Success(t *testing.T) {
	var received quote.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":        true,
			"message":        quote.MsgSubmitted,
			"estimatedTotal": "78.50",
		})
	}))
	defer srv.Close()

	ctrl, view, sched := newController(t, srv.URL)

	err := ctrl.Submit(context.Background(), validValues())
	require.NoError(t, err)

	assert.Equal(t, "Anna Muster", received.Name)
	assert.Equal(t, []string{"Gebäudereinigung", "Technischer Service"}, received.Services)

	assert.Equal(t, MsgSubmitAccepted, view.lastMessage())
	assert.Contains(t, view.events, "clear")
	assert.Equal(t, 1, sched.calls)
	assert.Equal(t, DefaultDismissAfter, sched.delay)
	assert.Contains(t, view.events, "hide")

	// Busy state wraps the network call and is restored afterwards.
	assert.Equal(t, "busy:on", view.events[0])
	assert.Equal(t, "busy:off", view.events[len(view.events)-1])
	assert.False(t, view.busy)
}

func TestSubmit_ServerRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": quote.MsgMissingFields})
	}))
	defer srv.Close()

	ctrl, view, sched := newController(t, srv.URL)

	err := ctrl.Submit(context.Background(), validValues())

	var rerr *RejectedError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, http.StatusBadRequest, rerr.StatusCode)
	assert.Equal(t, quote.MsgMissingFields, rerr.Message)
	assert.Equal(t, quote.MsgMissingFields, view.lastMessage())
	assert.NotContains(t, view.events, "clear")
	assert.Zero(t, sched.calls)
	assert.False(t, view.busy)
}

func TestSubmit_RejectionWithoutErrorText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctrl, view, _ := newController(t, srv.URL)

	err := ctrl.Submit(context.Background(), validValues())

	var rerr *RejectedError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, MsgGenericRetry, rerr.Message)
	assert.Equal(t, MsgGenericRetry, view.lastMessage())
}

func TestSubmit_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	ctrl, view, _ := newController(t, srv.URL)

	err := ctrl.Submit(context.Background(), validValues())

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, MsgTransportFail, view.lastMessage())
	assert.Equal(t, "busy:on", view.events[0])
	assert.Equal(t, "busy:off", view.events[len(view.events)-1])
	assert.False(t, view.busy)
}

func TestSubmit_UnparseableResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer srv.Close()

	ctrl, view, _ := newController(t, srv.URL)

	err := ctrl.Submit(context.Background(), validValues())

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, MsgTransportFail, view.lastMessage())
}

func TestSubmit_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctrl, view, _ := newController(t, srv.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := ctrl.Submit(ctx, validValues())

	var terr *TransportError
	require.ErrorAs(t, err, &terr)
	assert.False(t, view.busy)
}
