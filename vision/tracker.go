package vision

import (
	"context"
	"image"

	"go.uber.org/zap"
)

// Tracker turns a Camera into a camfour.MoveSource. It keeps the last
// accepted frame and reports the cell of whatever appeared since.
type Tracker struct {
	cam     Camera
	profile Profile
	prev    *image.Gray
	pending *image.Gray
}

// NewTracker calibrates cam and captures the empty board.
func NewTracker(ctx context.Context, cam Camera) (*Tracker, error) {
	p, err := cam.Calibrate(ctx)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, &CalibrationError{Reason: "bad profile", Err: err}
	}
	log.Infow("calibration complete", "profile", p.Name, "width", p.Width, "height", p.Height)

	empty, err := cam.Capture(ctx, p)
	if err != nil {
		return nil, err
	}

	return &Tracker{cam: cam, profile: p, prev: empty}, nil
}

// Profile returns the calibration in use.
func (t *Tracker) Profile() Profile {
	return t.profile
}

// NextMove implements camfour.MoveSource.
func (t *Tracker) NextMove(ctx context.Context, turn int) (int, int, error) {
	next, err := t.cam.Capture(ctx, t.profile)
	if err != nil {
		return 0, 0, err
	}

	row, col, err := Locate(t.prev, next, t.profile)
	if err != nil {
		log.Errorw("could not locate move", "turn", turn, zap.Error(err))
		return 0, 0, err
	}

	t.pending = next
	return row, col, nil
}

// Acknowledge implements camfour.Acknowledger. Only accepted frames become
// the new baseline, so a rejected placement is diffed again next time.
func (t *Tracker) Acknowledge(accepted bool) {
	if accepted && t.pending != nil {
		t.prev = t.pending
	}
	t.pending = nil
}
