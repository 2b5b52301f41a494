package realtime

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/setiawanwcksn/weddingorg-sub000/internal/domain"
)

// fakeConn реализует Conn без сети
type fakeConn struct {
	open     bool
	failSend bool
	frames   [][]byte
}

func newFakeConn() *fakeConn { return &fakeConn{open: true} }

func (c *fakeConn) Send(p []byte) error {
	if c.failSend {
		return errors.New("broken pipe")
	}
	c.frames = append(c.frames, p)
	return nil
}

func (c *fakeConn) IsOpen() bool { return c.open }

func (c *fakeConn) Close() error {
	c.open = false
	return nil
}

func testLogger() *log.Logger { return log.New(io.Discard, "", 0) }

func TestRegistryAddRemove(t *testing.T) {
	reg := NewRegistry(testLogger())
	c1 := newFakeConn()
	c2 := newFakeConn()

	reg.Add("ownerA", c1)
	reg.Add("ownerA", c2)
	assert.Equal(t, 2, reg.Count("ownerA"))

	reg.Remove("ownerA", c1)
	assert.Equal(t, 1, reg.Count("ownerA"))
	assert.True(t, reg.HasOwner("ownerA"))

	// пустое множество не живёт — ключ уходит вместе с последним соединением
	reg.Remove("ownerA", c2)
	assert.False(t, reg.HasOwner("ownerA"))

	// Remove идемпотентен
	reg.Remove("ownerA", c2)
	assert.False(t, reg.HasOwner("ownerA"))
}

func TestRegistryAnonymousFallback(t *testing.T) {
	reg := NewRegistry(testLogger())
	c := newFakeConn()

	reg.Add("", c)
	assert.True(t, reg.HasOwner(domain.AnonymousOwner))

	sent := reg.Broadcast("", []byte(`{}`))
	assert.Equal(t, 1, sent)
}

func TestBroadcastReachesOnlyOwner(t *testing.T) {
	reg := NewRegistry(testLogger())
	a1 := newFakeConn()
	a2 := newFakeConn()
	b := newFakeConn()
	anon := newFakeConn()

	reg.Add("ownerA", a1)
	reg.Add("ownerA", a2)
	reg.Add("ownerB", b)
	reg.Add(domain.AnonymousOwner, anon)

	sent := reg.Broadcast("ownerA", []byte(`{"type":"guest_checked_in"}`))
	assert.Equal(t, 2, sent)
	assert.Len(t, a1.frames, 1)
	assert.Len(t, a2.frames, 1)
	assert.Empty(t, b.frames)
	assert.Empty(t, anon.frames)
}

func TestBroadcastNoSubscribersIsNoop(t *testing.T) {
	reg := NewRegistry(testLogger())
	assert.Equal(t, 0, reg.Broadcast("nobody", []byte(`{}`)))
}

func TestBroadcastEvictsClosedConn(t *testing.T) {
	reg := NewRegistry(testLogger())
	dead := newFakeConn()
	dead.open = false
	live := newFakeConn()

	reg.Add("ownerA", dead)
	reg.Add("ownerA", live)

	sent := reg.Broadcast("ownerA", []byte(`{}`))
	assert.Equal(t, 1, sent)
	assert.Empty(t, dead.frames)
	assert.Equal(t, 1, reg.Count("ownerA"))
}

func TestBroadcastEvictsFailedSend(t *testing.T) {
	reg := NewRegistry(testLogger())
	bad := newFakeConn()
	bad.failSend = true

	reg.Add("ownerA", bad)
	sent := reg.Broadcast("ownerA", []byte(`{}`))

	assert.Equal(t, 0, sent)
	// отказ записи вычищает соединение, пустой ключ умирает
	assert.False(t, reg.HasOwner("ownerA"))
}

func TestCloseAll(t *testing.T) {
	reg := NewRegistry(testLogger())
	c1 := newFakeConn()
	c2 := newFakeConn()
	reg.Add("ownerA", c1)
	reg.Add("ownerB", c2)

	reg.CloseAll()
	assert.False(t, c1.open)
	assert.False(t, c2.open)
	assert.False(t, reg.HasOwner("ownerA"))
	assert.False(t, reg.HasOwner("ownerB"))
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub(testLogger())
	c := newFakeConn()
	hub.Registry().Add("ownerA", c)

	sent := hub.Broadcast(domain.GuestCheckedIn, "g1", "ownerA")
	require.Equal(t, 1, sent)
	require.Len(t, c.frames, 1)

	var ev Event
	require.NoError(t, json.Unmarshal(c.frames[0], &ev))
	assert.Equal(t, domain.GuestCheckedIn, ev.Type)
	assert.Equal(t, "g1", ev.GuestID)
	assert.NotEmpty(t, ev.Timestamp)
}

func TestHubBroadcastUnknownEvent(t *testing.T) {
	hub := NewHub(testLogger())
	c := newFakeConn()
	hub.Registry().Add("ownerA", c)

	sent := hub.Broadcast(domain.GuestEvent("guest_exploded"), "g1", "ownerA")
	assert.Equal(t, 0, sent)
	assert.Empty(t, c.frames)
}
