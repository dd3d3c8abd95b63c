package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"github.com/muurk/fwlog/internal/logging"
)

// Client is a WebSocket subscription to a capture feed
type Client struct {
	conn       *websocket.Conn
	remoteAddr string
}

// Dial subscribes to the feed at the given WebSocket URL
// (e.g. "ws://192.168.4.16:9321/feed").
func Dial(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to feed %s: %w", url, err)
	}

	conn.SetPingHandler(func(appData string) error {
		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		return conn.WriteControl(websocket.PongMessage, []byte(appData),
			time.Now().Add(writeWait))
	})

	client := &Client{
		conn:       conn,
		remoteAddr: conn.RemoteAddr().String(),
	}

	logging.LogConnection(client.remoteAddr, "feed_connected")
	return client, nil
}

// Next blocks until the feed delivers the next chunk of capture text.
// It returns an error when the feed closes or the connection fails.
func (c *Client) Next() (string, error) {
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))

	msgType, data, err := c.conn.ReadMessage()
	if err != nil {
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			logging.LogConnection(c.remoteAddr, "feed_closed_by_publisher")
		}
		return "", err
	}

	logging.LogFeedMessage(c.remoteAddr, "received", msgType, data)
	return string(data), nil
}

// Close ends the subscription, notifying the publisher when possible
func (c *Client) Close() error {
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
	err := c.conn.Close()
	logging.LogConnection(c.remoteAddr, "feed_disconnected")
	return err
}
