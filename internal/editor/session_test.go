package editor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docview/internal/imagegen"
	"docview/internal/imaging"
)

// stubGenerator records requests and returns a canned outcome, optionally
// blocking on gate to keep a call in flight.
type stubGenerator struct {
	mu      sync.Mutex
	calls   int
	lastReq imagegen.Request
	gate    chan struct{}
	result  imaging.EncodedImage
	err     error
}

func (g *stubGenerator) Generate(ctx context.Context, req imagegen.Request) (imaging.EncodedImage, error) {
	g.mu.Lock()
	g.calls++
	g.lastReq = req
	gate := g.gate
	g.mu.Unlock()
	if gate != nil {
		<-gate
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.result, g.err
}

func (g *stubGenerator) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

func (g *stubGenerator) request() imagegen.Request {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastReq
}

func (g *stubGenerator) setOutcome(result imaging.EncodedImage, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.result = result
	g.err = err
}

func newTestSession(gen imagegen.Generator) (*Session, chan Snapshot) {
	changes := make(chan Snapshot, 64)
	s := NewSession(gen, func(snap Snapshot) { changes <- snap })
	return s, changes
}

func waitForStatus(t *testing.T, changes <-chan Snapshot, want Status) Snapshot {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case snap := <-changes:
			if snap.Status == want {
				return snap
			}
		case <-deadline:
			t.Fatalf("timed out waiting for status %s", want)
		}
	}
}

func jpegSource() imaging.EncodedImage {
	return imaging.EncodedImage{MediaType: "image/jpeg", Data: []byte{0xff, 0xd8, 0xff, 0xaa}}
}

func TestGenerate_Success(t *testing.T) {
	edited := []byte{0x89, 0x50, 0x4e, 0x47}
	gen := &stubGenerator{result: imaging.EncodedImage{MediaType: "image/png", Data: edited}}
	s, changes := newTestSession(gen)

	s.SetSource(jpegSource())
	assert.Equal(t, StatusReady, s.Snapshot().Status)
	s.SetInstruction("increase contrast")
	require.NoError(t, s.SetAspectRatio("4:3"))

	require.NoError(t, s.Generate(context.Background()))
	snap := waitForStatus(t, changes, StatusSucceeded)

	require.NotNil(t, snap.Result)
	assert.Equal(t, "image/png", snap.Result.MediaType)
	assert.Equal(t, edited, snap.Result.Data)
	assert.Empty(t, snap.ErrorDetail)

	req := gen.request()
	assert.Equal(t, "image/jpeg", req.Image.MediaType)
	assert.Equal(t, "increase contrast", req.Instruction)
	assert.Equal(t, "4:3", req.AspectRatio)
}

func TestGenerate_NoImageReturned(t *testing.T) {
	gen := &stubGenerator{err: imagegen.ErrNoImage}
	s, changes := newTestSession(gen)

	s.SetSource(jpegSource())
	s.SetInstruction("increase contrast")

	require.NoError(t, s.Generate(context.Background()))
	snap := waitForStatus(t, changes, StatusFailed)

	assert.Contains(t, snap.ErrorDetail, "did not return an image")
	assert.ErrorIs(t, snap.Err, imagegen.ErrNoImage)
	assert.Nil(t, snap.Result)
}

func TestGenerate_FailureKeepsPreviousResult(t *testing.T) {
	gen := &stubGenerator{result: imaging.EncodedImage{MediaType: "image/png", Data: []byte{1}}}
	s, changes := newTestSession(gen)

	s.SetSource(jpegSource())
	s.SetInstruction("first pass")
	require.NoError(t, s.Generate(context.Background()))
	waitForStatus(t, changes, StatusSucceeded)

	gen.setOutcome(imaging.EncodedImage{}, errors.New("service exploded"))
	s.SetInstruction("second pass")
	require.NoError(t, s.Generate(context.Background()))
	snap := waitForStatus(t, changes, StatusFailed)

	assert.Equal(t, "service exploded", snap.ErrorDetail)
	if assert.NotNil(t, snap.Result, "last successful result stays visible") {
		assert.Equal(t, []byte{1}, snap.Result.Data)
	}
}

func TestGenerate_ServiceErrorSurfacedVerbatimAndRetryable(t *testing.T) {
	gen := &stubGenerator{err: errors.New("network: connection reset")}
	s, changes := newTestSession(gen)

	s.SetSource(jpegSource())
	s.SetInstruction("remove background")
	require.NoError(t, s.Generate(context.Background()))
	snap := waitForStatus(t, changes, StatusFailed)
	assert.Equal(t, "network: connection reset", snap.ErrorDetail)

	// The session stays interactive: a retry after the failure runs.
	gen.setOutcome(imaging.EncodedImage{MediaType: "image/png", Data: []byte{9}}, nil)
	require.NoError(t, s.Generate(context.Background()))
	snap = waitForStatus(t, changes, StatusSucceeded)
	assert.Empty(t, snap.ErrorDetail)
	assert.Equal(t, 2, gen.callCount())
}

func TestGenerate_MissingInputRejected(t *testing.T) {
	gen := &stubGenerator{}
	s, _ := newTestSession(gen)

	// No source at all.
	err := s.Generate(context.Background())
	assert.ErrorIs(t, err, ErrMissingInput)
	assert.Equal(t, StatusIdle, s.Snapshot().Status)

	// Source present, instruction blank.
	s.SetSource(jpegSource())
	s.SetInstruction("   ")
	err = s.Generate(context.Background())
	assert.ErrorIs(t, err, ErrMissingInput)
	assert.Equal(t, StatusReady, s.Snapshot().Status)

	assert.Zero(t, gen.callCount(), "client must never be invoked")
}

func TestGenerate_SingleInFlightCall(t *testing.T) {
	gate := make(chan struct{})
	gen := &stubGenerator{gate: gate, result: imaging.EncodedImage{MediaType: "image/png", Data: []byte{1}}}
	s, changes := newTestSession(gen)

	s.SetSource(jpegSource())
	s.SetInstruction("sharpen")
	require.NoError(t, s.Generate(context.Background()))
	waitForStatus(t, changes, StatusInFlight)

	err := s.Generate(context.Background())
	assert.ErrorIs(t, err, ErrInFlight)

	close(gate)
	waitForStatus(t, changes, StatusSucceeded)
	assert.Equal(t, 1, gen.callCount())
}

func TestSetSource_ClearsFailureState(t *testing.T) {
	gen := &stubGenerator{err: errors.New("boom")}
	s, changes := newTestSession(gen)

	s.SetSource(jpegSource())
	s.SetInstruction("denoise")
	require.NoError(t, s.Generate(context.Background()))
	waitForStatus(t, changes, StatusFailed)

	s.SetSource(imaging.EncodedImage{MediaType: "image/png", Data: []byte{7}})
	snap := s.Snapshot()
	assert.Equal(t, StatusReady, snap.Status)
	assert.Empty(t, snap.ErrorDetail)
	assert.Nil(t, snap.Result)
}

func TestInstructionEditAfterSuccessKeepsResult(t *testing.T) {
	gen := &stubGenerator{result: imaging.EncodedImage{MediaType: "image/png", Data: []byte{3}}}
	s, changes := newTestSession(gen)

	s.SetSource(jpegSource())
	s.SetInstruction("warmer tones")
	require.NoError(t, s.Generate(context.Background()))
	waitForStatus(t, changes, StatusSucceeded)

	s.SetInstruction("cooler tones")
	snap := s.Snapshot()
	assert.Equal(t, StatusReady, snap.Status)
	assert.NotNil(t, snap.Result)
}

func TestStaleResultDiscarded(t *testing.T) {
	gate := make(chan struct{})
	gen := &stubGenerator{gate: gate, result: imaging.EncodedImage{MediaType: "image/png", Data: []byte{1}}}
	s, changes := newTestSession(gen)

	s.SetSource(jpegSource())
	s.SetInstruction("old instruction")
	require.NoError(t, s.Generate(context.Background()))
	waitForStatus(t, changes, StatusInFlight)

	// Inputs change while the call is outstanding.
	s.SetInstruction("new instruction")

	close(gate)
	snap := waitForStatus(t, changes, StatusReady)
	assert.Nil(t, snap.Result, "stale result must not land")
	assert.Empty(t, snap.ErrorDetail)

	// And the session accepts a fresh generate afterwards.
	require.NoError(t, s.Generate(context.Background()))
	waitForStatus(t, changes, StatusSucceeded)
}

func TestSetSourceMidFlightKeepsSingleCall(t *testing.T) {
	gate := make(chan struct{})
	gen := &stubGenerator{gate: gate, result: imaging.EncodedImage{MediaType: "image/png", Data: []byte{1}}}
	s, changes := newTestSession(gen)

	s.SetSource(jpegSource())
	s.SetInstruction("enhance")
	require.NoError(t, s.Generate(context.Background()))
	waitForStatus(t, changes, StatusInFlight)

	// Re-selecting an image voids the outstanding call but must not end
	// InFlight early: a second generate would mean two concurrent calls.
	s.SetSource(imaging.EncodedImage{MediaType: "image/png", Data: []byte{7}})
	assert.Equal(t, StatusInFlight, s.Snapshot().Status)
	assert.ErrorIs(t, s.Generate(context.Background()), ErrInFlight)
	assert.Equal(t, 1, gen.callCount())

	// Once the voided call returns, its outcome is dropped and the
	// session settles to Ready for the fresher inputs.
	close(gate)
	snap := waitForStatus(t, changes, StatusReady)
	assert.Nil(t, snap.Result)
	assert.Empty(t, snap.ErrorDetail)
	if assert.NotNil(t, snap.Source) {
		assert.Equal(t, []byte{7}, snap.Source.Data)
	}

	require.NoError(t, s.Generate(context.Background()))
	waitForStatus(t, changes, StatusSucceeded)
	assert.Equal(t, 2, gen.callCount())
}

func TestSetAspectRatio_Validation(t *testing.T) {
	s, _ := newTestSession(&stubGenerator{})

	for _, ratio := range AspectRatios {
		assert.NoError(t, s.SetAspectRatio(ratio))
	}
	assert.ErrorIs(t, s.SetAspectRatio("2:1"), ErrBadAspectRatio)
	assert.ErrorIs(t, s.SetAspectRatio(""), ErrBadAspectRatio)

	assert.Equal(t, "9:16", s.Snapshot().AspectRatio, "rejected ratio must not stick")
}

func TestNewSession_Defaults(t *testing.T) {
	s := NewSession(&stubGenerator{}, nil)
	snap := s.Snapshot()
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, s.ID(), snap.ID, "snapshots carry the session ID for logging")
	assert.Equal(t, StatusIdle, snap.Status)
	assert.Equal(t, DefaultAspectRatio, snap.AspectRatio)
	assert.Nil(t, snap.Source)
	assert.Nil(t, snap.Result)
}
