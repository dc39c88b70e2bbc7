package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/icco/camfour"
	"github.com/icco/camfour/ai"
)

func TestWatchHandler(t *testing.T) {
	s := newTestServer(t, &ai.StubEngine{})
	srv := httptest.NewServer(s.routes())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/match/watch"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
		t.Fatal(err)
	}

	var first camfour.Snapshot
	if err := conn.ReadJSON(&first); err != nil {
		t.Fatalf("first snapshot: %v", err)
	}
	if first.Turn != 0 || first.Outcome != camfour.Ongoing {
		t.Errorf("unexpected first snapshot: %+v", first)
	}

	deadline := time.Now().Add(5 * time.Second)
	for s.hub.Len() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("watcher never joined the hub")
		}
		time.Sleep(10 * time.Millisecond)
	}

	if _, err := s.table.Move(0, 2); err != nil {
		t.Fatal(err)
	}

	var next camfour.Snapshot
	if err := conn.ReadJSON(&next); err != nil {
		t.Fatalf("second snapshot: %v", err)
	}
	if next.Turn != 1 || next.Board[0][2] != camfour.Human || next.ID != first.ID {
		t.Errorf("unexpected second snapshot: %+v", next)
	}

	// Rejected moves change nothing, so nothing is sent.
	if _, err := s.table.Move(5, 5); err == nil {
		t.Fatal("floating move accepted")
	}

	s.table.Start("test")
	var fresh camfour.Snapshot
	if err := conn.ReadJSON(&fresh); err != nil {
		t.Fatalf("third snapshot: %v", err)
	}
	if fresh.Turn != 0 || fresh.ID == first.ID {
		t.Errorf("expected a new match, got %+v", fresh)
	}
}

func TestResumeBroadcastsOnce(t *testing.T) {
	s := newTestServer(t, &flakyEngine{fails: 1})
	srv := httptest.NewServer(s.routes())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/match/watch"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if err := conn.SetReadDeadline(time.Now().Add(5 * time.Second)); err != nil {
		t.Fatal(err)
	}

	var first camfour.Snapshot
	if err := conn.ReadJSON(&first); err != nil {
		t.Fatalf("first snapshot: %v", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for s.hub.Len() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("watcher never joined the hub")
		}
		time.Sleep(10 * time.Millisecond)
	}

	if _, err := s.table.Move(0, 3); err == nil {
		t.Fatal("expected the opponent to fail")
	}
	var open camfour.Snapshot
	if err := conn.ReadJSON(&open); err != nil {
		t.Fatalf("snapshot after the human move: %v", err)
	}
	if !open.AwaitingOpponent {
		t.Errorf("expected an open turn, got %+v", open)
	}

	req, err := http.NewRequest("POST", srv.URL+"/match/resume", http.NoBody)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer "+testToken(t))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("resume = %d", resp.StatusCode)
	}

	var resumed camfour.Snapshot
	if err := conn.ReadJSON(&resumed); err != nil {
		t.Fatalf("snapshot after resume: %v", err)
	}
	if resumed.Turn != 1 || resumed.AwaitingOpponent {
		t.Errorf("unexpected resumed snapshot: %+v", resumed)
	}

	// The next message must be the new match, not a second copy of the
	// resumed one.
	s.table.Start("")
	var fresh camfour.Snapshot
	if err := conn.ReadJSON(&fresh); err != nil {
		t.Fatalf("snapshot after start: %v", err)
	}
	if fresh.Turn != 0 || fresh.ID == first.ID {
		t.Errorf("expected the new match, got %+v", fresh)
	}
}

func TestHubDropsClosedWatchers(t *testing.T) {
	s := newTestServer(t, &ai.StubEngine{})
	srv := httptest.NewServer(s.routes())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/match/watch"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}

	var first camfour.Snapshot
	if err := conn.ReadJSON(&first); err != nil {
		t.Fatal(err)
	}
	conn.Close()

	deadline := time.Now().Add(5 * time.Second)
	for {
		s.table.Start("")
		if s.hub.Len() == 0 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("closed watcher still in the hub")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
