package feed

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func startTestServer(t *testing.T) *Server {
	t.Helper()

	srv := NewServer(&Config{Host: "127.0.0.1", Port: 0})
	if err := srv.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})
	return srv
}

func waitForSubscribers(t *testing.T, srv *Server, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for srv.SubscriberCount() != want {
		if time.Now().After(deadline) {
			t.Fatalf("SubscriberCount() = %d, want %d", srv.SubscriberCount(), want)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestPublishRoundTrip(t *testing.T) {
	srv := startTestServer(t)

	url := fmt.Sprintf("ws://127.0.0.1:%d/feed", srv.Port())
	client, err := Dial(context.Background(), url)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer func() { _ = client.Close() }()

	waitForSubscribers(t, srv, 1)

	chunks := []string{"ff 72 01 0c ", "01 03 00 74 ", "00 78 "}
	for _, chunk := range chunks {
		srv.Publish(chunk)
	}

	for i, want := range chunks {
		got, err := client.Next()
		if err != nil {
			t.Fatalf("Next() chunk %d error = %v", i, err)
		}
		if got != want {
			t.Errorf("Next() chunk %d = %q, want %q", i, got, want)
		}
	}
}

func TestMultipleSubscribers(t *testing.T) {
	srv := startTestServer(t)
	url := fmt.Sprintf("ws://127.0.0.1:%d/feed", srv.Port())

	clients := make([]*Client, 3)
	for i := range clients {
		client, err := Dial(context.Background(), url)
		if err != nil {
			t.Fatalf("Dial() client %d error = %v", i, err)
		}
		defer func() { _ = client.Close() }()
		clients[i] = client
	}

	waitForSubscribers(t, srv, 3)

	srv.Publish("03 3f ")

	for i, client := range clients {
		got, err := client.Next()
		if err != nil {
			t.Fatalf("Next() client %d error = %v", i, err)
		}
		if got != "03 3f " {
			t.Errorf("Next() client %d = %q, want %q", i, got, "03 3f ")
		}
	}
}

func TestClientCloseUnregisters(t *testing.T) {
	srv := startTestServer(t)
	url := fmt.Sprintf("ws://127.0.0.1:%d/feed", srv.Port())

	client, err := Dial(context.Background(), url)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}

	waitForSubscribers(t, srv, 1)

	if err := client.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	waitForSubscribers(t, srv, 0)
}

func TestShutdownClosesSubscribers(t *testing.T) {
	srv := NewServer(&Config{Host: "127.0.0.1", Port: 0})
	if err := srv.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	url := fmt.Sprintf("ws://127.0.0.1:%d/feed", srv.Port())
	client, err := Dial(context.Background(), url)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer func() { _ = client.Close() }()

	waitForSubscribers(t, srv, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	if _, err := client.Next(); err == nil {
		t.Error("Next() after shutdown = nil error, want close error")
	}
}

func TestDialRefused(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// Port 1 is never listening
	if _, err := Dial(ctx, "ws://127.0.0.1:1/feed"); err == nil {
		t.Error("Dial() to closed port = nil error, want error")
	}
}
