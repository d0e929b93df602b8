package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-hclog"
	"github.com/kahvecikaan/techpulse/internal/domain"
	"github.com/kahvecikaan/techpulse/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSessions accepts the token "good" as user-1
type stubSessions struct{}

func (stubSessions) SignIn(context.Context, string, string) (string, domain.User, error) {
	return "", domain.User{}, nil
}

func (stubSessions) Authenticate(_ context.Context, token string) (domain.Session, error) {
	if token != "good" {
		return domain.Session{}, domain.ErrUnauthenticated
	}
	return domain.Session{UserID: "user-1", TokenID: "t1"}, nil
}

func (stubSessions) SignOut(context.Context, domain.Session) error { return nil }

func newServer(t *testing.T) (*httptest.Server, *events.EventBus[any]) {
	t.Helper()
	bus := events.NewEventBus[any]()
	h := NewHandler(hclog.NewNullLogger(), bus, stubSessions{}, nil)
	srv := httptest.NewServer(http.HandlerFunc(h.HandleWebSocket))
	t.Cleanup(srv.Close)
	return srv, bus
}

func wsURL(srv *httptest.Server, token string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?token=" + token
}

func TestHandleWebSocketRejectsBadToken(t *testing.T) {
	srv, _ := newServer(t)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, "bad"), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestHandleWebSocketForwardsOwnEvents(t *testing.T) {
	srv, bus := newServer(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "good"), nil)
	require.NoError(t, err)
	defer conn.Close()

	bus.Publish(events.FavoriteAdded{UserID: "user-2", ProductID: "3", ProductName: "MacBook Pro"})
	bus.Publish(events.FavoriteAdded{UserID: "user-1", ProductID: "1", ProductName: "iPhone 15 Pro"})
	bus.Publish(events.FavoriteRemoved{UserID: "user-1", ProductID: "1"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var first Message
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, "favorite_added", first.EventType)
	data, _ := json.Marshal(first.Data)
	assert.JSONEq(t, `{"user_id":"user-1","product_id":"1","product_name":"iPhone 15 Pro"}`, string(data))

	var second Message
	require.NoError(t, conn.ReadJSON(&second))
	assert.Equal(t, "favorite_removed", second.EventType)
}

func TestHandleWebSocketClosesWithBus(t *testing.T) {
	srv, bus := newServer(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "good"), nil)
	require.NoError(t, err)
	defer conn.Close()

	bus.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
}
