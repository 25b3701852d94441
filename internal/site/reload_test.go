package site

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialHub(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(url, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) ReloadMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg ReloadMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub(nil)
	hub.SetBuildID("b1")
	ts := httptest.NewServer(hub)
	defer ts.Close()

	a := dialHub(t, ts.URL)
	b := dialHub(t, ts.URL)

	// Each client learns the current build on connect.
	assert.Equal(t, ReloadMessage{Type: "reload", BuildID: "b1"}, readMessage(t, a))
	assert.Equal(t, "b1", readMessage(t, b).BuildID)
	assert.Equal(t, 2, hub.Clients())

	hub.Broadcast("b2")
	assert.Equal(t, "b2", readMessage(t, a).BuildID)
	assert.Equal(t, "b2", readMessage(t, b).BuildID)
}

func TestHubForgetsClosedClients(t *testing.T) {
	hub := NewHub(nil)
	ts := httptest.NewServer(hub)
	defer ts.Close()

	conn := dialHub(t, ts.URL)
	readMessage(t, conn)
	require.Equal(t, 1, hub.Clients())

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	conn.Close()

	assert.Eventually(t, func() bool { return hub.Clients() == 0 }, 5*time.Second, 10*time.Millisecond)
}

func TestHubRejectsPlainHTTP(t *testing.T) {
	hub := NewHub(nil)
	w := httptest.NewRecorder()
	hub.ServeHTTP(w, httptest.NewRequest("GET", "/ws/reload", nil))
	assert.Equal(t, 400, w.Code)
	assert.Equal(t, 0, hub.Clients())
}
