package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestHubTracksConnectedClients(t *testing.T) {
	hub := NewHub()
	if hub.HasClients() {
		t.Fatalf("fresh hub reports clients")
	}
	client := &Client{hub: hub, send: make(chan []byte, 1)}
	hub.Register(client)
	if !hub.HasClients() {
		t.Fatalf("registered client not reported")
	}
	hub.Unregister(client)
	if hub.HasClients() {
		t.Fatalf("unregistered client still reported")
	}
	if _, ok := <-client.send; ok {
		t.Fatalf("send channel not closed on unregister")
	}
}

func TestClientWriteLoopDeliversQueuedMessages(t *testing.T) {
	received := make(chan []byte, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upgrader := websocket.Upgrader{}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		received <- msg
	}))
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	client := &Client{send: make(chan []byte, 1)}
	client.send <- []byte(`{"type":"status"}`)
	close(client.send)

	if err := client.writeLoop(conn); err != nil {
		t.Fatalf("write loop: %v", err)
	}
	select {
	case msg := <-received:
		if string(msg) != `{"type":"status"}` {
			t.Fatalf("unexpected message %s", msg)
		}
	case <-time.After(time.Second):
		t.Fatalf("queued message never delivered")
	}
}
