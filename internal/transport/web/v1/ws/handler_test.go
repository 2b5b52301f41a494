package ws

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setiawanwcksn/weddingorg-sub000/internal/domain"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/realtime"
)

func newTestServer(t *testing.T) (*httptest.Server, *realtime.Hub) {
	t.Helper()
	logger := log.New(io.Discard, "", 0)
	hub := realtime.NewHub(logger)
	h := New(logger, hub)
	srv := httptest.NewServer(http.HandlerFunc(h.Serve))
	t.Cleanup(srv.Close)
	return srv, hub
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) realtime.Outbound {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var out realtime.Outbound
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func writeFrame(t *testing.T, conn *websocket.Conn, in realtime.Inbound) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(in))
}

func waitCount(t *testing.T, hub *realtime.Hub, owner string, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.Registry().Count(owner) == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, want, hub.Registry().Count(owner))
}

func TestConnectedFrame(t *testing.T) {
	srv, hub := newTestServer(t)
	conn := dial(t, srv)

	out := readFrame(t, conn)
	assert.Equal(t, realtime.TypeConnected, out.Type)

	// без токена соединение регистрируется под anonymous
	waitCount(t, hub, domain.AnonymousOwner, 1)
}

func TestSubscribeAck(t *testing.T) {
	srv, _ := newTestServer(t)
	conn := dial(t, srv)
	readFrame(t, conn) // connected

	writeFrame(t, conn, realtime.Inbound{Type: realtime.TypeSubscribe, Channel: realtime.ChannelGuests})
	out := readFrame(t, conn)
	assert.Equal(t, realtime.TypeSubscribed, out.Type)
	assert.Equal(t, realtime.ChannelGuests, out.Channel)
}

func TestSubscribeUnknownChannel(t *testing.T) {
	srv, _ := newTestServer(t)
	conn := dial(t, srv)
	readFrame(t, conn)

	writeFrame(t, conn, realtime.Inbound{Type: realtime.TypeSubscribe, Channel: "weather"})
	out := readFrame(t, conn)
	assert.Equal(t, realtime.TypeError, out.Type)
}

func TestUnknownMessageType(t *testing.T) {
	srv, _ := newTestServer(t)
	conn := dial(t, srv)
	readFrame(t, conn)

	writeFrame(t, conn, realtime.Inbound{Type: "ping"})
	out := readFrame(t, conn)
	assert.Equal(t, realtime.TypeError, out.Type)
}

func TestMalformedFrame(t *testing.T) {
	srv, _ := newTestServer(t)
	conn := dial(t, srv)
	readFrame(t, conn)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	out := readFrame(t, conn)
	assert.Equal(t, realtime.TypeError, out.Type)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	srv, hub := newTestServer(t)
	conn := dial(t, srv)
	readFrame(t, conn)
	waitCount(t, hub, domain.AnonymousOwner, 1)

	writeFrame(t, conn, realtime.Inbound{Type: realtime.TypeUnsubscribe})
	out := readFrame(t, conn)
	assert.Equal(t, realtime.TypeUnsubscribed, out.Type)

	waitCount(t, hub, domain.AnonymousOwner, 0)
	sent := hub.Broadcast(domain.GuestCheckedIn, "g-1", domain.AnonymousOwner)
	assert.Zero(t, sent)
}

func TestBroadcastReachesSubscriber(t *testing.T) {
	srv, hub := newTestServer(t)
	conn := dial(t, srv)
	readFrame(t, conn)
	waitCount(t, hub, domain.AnonymousOwner, 1)

	sent := hub.Broadcast(domain.GuestCheckedIn, "g-42", "")
	assert.Equal(t, 1, sent)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var ev realtime.Event
	require.NoError(t, json.Unmarshal(data, &ev))
	assert.Equal(t, domain.GuestCheckedIn, ev.Type)
	assert.Equal(t, "g-42", ev.GuestID)
	_, perr := time.Parse(time.RFC3339, ev.Timestamp)
	assert.NoError(t, perr)
}

func TestBroadcastIsOwnerScoped(t *testing.T) {
	srv, hub := newTestServer(t)
	conn := dial(t, srv)
	readFrame(t, conn)
	waitCount(t, hub, domain.AnonymousOwner, 1)

	// подписчиков этого владельца нет
	sent := hub.Broadcast(domain.GuestUpdated, "g-1", "someone-else")
	assert.Zero(t, sent)
}

func TestDisconnectEvictsConnection(t *testing.T) {
	srv, hub := newTestServer(t)
	conn := dial(t, srv)
	readFrame(t, conn)
	waitCount(t, hub, domain.AnonymousOwner, 1)

	require.NoError(t, conn.Close())
	waitCount(t, hub, domain.AnonymousOwner, 0)
}
