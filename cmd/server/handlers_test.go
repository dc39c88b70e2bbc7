package main

import (
	"errors"
	"net/http"
	"testing"

	"github.com/icco/camfour"
	"github.com/icco/camfour/ai"
	"github.com/icco/camfour/vision"
)

func intp(i int) *int {
	return &i
}

// flakyEngine fails its first fails replies, then plays like the stub.
type flakyEngine struct {
	ai.StubEngine
	fails int
}

func (f *flakyEngine) DecideMove(b *camfour.Board, col int) (camfour.Move, error) {
	if f.fails > 0 {
		f.fails--
		return camfour.Move{}, errors.New("engine unplugged")
	}
	return f.StubEngine.DecideMove(b, col)
}

func TestMoveHandler(t *testing.T) {
	s := newTestServer(t, &ai.StubEngine{})
	token := testToken(t)

	tests := []struct {
		name string
		body interface{}
		want int
	}{
		{"floating", MoveRequest{Row: intp(3), Col: intp(3)}, http.StatusBadRequest},
		{"off board", MoveRequest{Row: intp(0), Col: intp(7)}, http.StatusBadRequest},
		{"missing col", MoveRequest{Row: intp(0)}, http.StatusBadRequest},
		{"no body", nil, http.StatusBadRequest},
		{"valid", MoveRequest{Row: intp(0), Col: intp(6)}, http.StatusOK},
		{"taken", MoveRequest{Row: intp(0), Col: intp(6)}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, s, "POST", "/match/move", tt.body, token)
			if rr.Code != tt.want {
				t.Errorf("POST /match/move = %d, want %d: %s", rr.Code, tt.want, rr.Body.String())
			}
		})
	}

	snap := s.table.Snapshot()
	if snap.Turn != 1 {
		t.Errorf("Turn = %d, want 1", snap.Turn)
	}
	if snap.Board[0][6] != camfour.Human || snap.Board[0][0] != camfour.Opponent {
		t.Errorf("unexpected board %v", snap.Board)
	}
}

func TestMoveHandlerPlaysToAWin(t *testing.T) {
	s := newTestServer(t, &ai.StubEngine{})
	token := testToken(t)

	var res MoveResult
	for row := 0; row < 4; row++ {
		rr := do(t, s, "POST", "/match/move", MoveRequest{Row: intp(row), Col: intp(6)}, token)
		if rr.Code != http.StatusOK {
			t.Fatalf("move %d: got %d: %s", row, rr.Code, rr.Body.String())
		}
		res = MoveResult{}
		decode(t, rr, &res)
	}

	if res.Match.Outcome != camfour.HumanWin {
		t.Errorf("Outcome = %s, want human win", res.Match.Outcome)
	}
	if res.Opponent != nil {
		t.Errorf("opponent replied to a winning move: %+v", res.Opponent)
	}

	rr := do(t, s, "POST", "/match/move", MoveRequest{Row: intp(0), Col: intp(5)}, token)
	if rr.Code != http.StatusConflict {
		t.Errorf("move after the end = %d, want 409", rr.Code)
	}

	var snap camfour.Snapshot
	decode(t, do(t, s, "POST", "/match/new", NewMatchRequest{Source: "camera"}, token), &snap)
	if snap.Outcome != camfour.Ongoing || snap.Turn != 0 {
		t.Errorf("new match not fresh: %+v", snap)
	}

	source := ""
	for _, tag := range snap.Meta {
		if tag.Key == "Source" {
			source = tag.Value
		}
	}
	if source != "camera" {
		t.Errorf("Source tag = %q", source)
	}
}

func TestResumeAfterOpponentFailure(t *testing.T) {
	s := newTestServer(t, &flakyEngine{fails: 1})
	token := testToken(t)

	rr := do(t, s, "POST", "/match/move", MoveRequest{Row: intp(0), Col: intp(3)}, token)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("failed opponent = %d, want 500", rr.Code)
	}
	if !s.table.Snapshot().AwaitingOpponent {
		t.Fatal("turn should still be open")
	}

	rr = do(t, s, "POST", "/match/move", MoveRequest{Row: intp(0), Col: intp(4)}, token)
	if rr.Code != http.StatusConflict {
		t.Errorf("human move while the opponent owes one = %d, want 409", rr.Code)
	}

	rr = do(t, s, "POST", "/match/resume", nil, token)
	if rr.Code != http.StatusOK {
		t.Fatalf("resume = %d: %s", rr.Code, rr.Body.String())
	}

	rr = do(t, s, "POST", "/match/resume", nil, token)
	if rr.Code != http.StatusConflict {
		t.Errorf("second resume = %d, want 409", rr.Code)
	}
}

func TestCalibrationHandlers(t *testing.T) {
	s := newTestServer(t, &ai.StubEngine{})
	token := testToken(t)

	p := vision.Profile{
		Name:   "kitchen",
		Bounds: vision.HSVBounds{LowH: 0, HighH: 10, LowS: 100, HighS: 255, LowV: 100, HighV: 255},
		Width:  640,
		Height: 480,
	}

	if rr := do(t, s, "POST", "/calibration", p, token); rr.Code != http.StatusOK {
		t.Fatalf("POST /calibration = %d: %s", rr.Code, rr.Body.String())
	}

	p.Bounds.HighH = 20
	if rr := do(t, s, "POST", "/calibration", p, token); rr.Code != http.StatusOK {
		t.Fatalf("second POST /calibration = %d: %s", rr.Code, rr.Body.String())
	}

	var got vision.Profile
	rr := do(t, s, "GET", "/calibration/kitchen", nil, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /calibration/kitchen = %d", rr.Code)
	}
	decode(t, rr, &got)
	if got != p {
		t.Errorf("got %+v, want %+v", got, p)
	}

	if rr := do(t, s, "GET", "/calibration/garage", nil, ""); rr.Code != http.StatusNotFound {
		t.Errorf("GET unknown profile = %d, want 404", rr.Code)
	}

	bad := p
	bad.Bounds.LowV = 300
	if rr := do(t, s, "POST", "/calibration", bad, token); rr.Code != http.StatusBadRequest {
		t.Errorf("POST bad bounds = %d, want 400", rr.Code)
	}

	unnamed := p
	unnamed.Name = "<script></script>"
	if rr := do(t, s, "POST", "/calibration", unnamed, token); rr.Code != http.StatusBadRequest {
		t.Errorf("POST unnamed = %d, want 400", rr.Code)
	}

	s.db = nil
	if rr := do(t, s, "GET", "/calibration/kitchen", nil, ""); rr.Code != http.StatusServiceUnavailable {
		t.Errorf("GET without db = %d, want 503", rr.Code)
	}
}
