package editor

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"docview/internal/imagegen"
	"docview/internal/imaging"
)

// Status is the lifecycle phase of an edit session.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusReady     Status = "ready"
	StatusInFlight  Status = "in_flight"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// DefaultAspectRatio is applied to new sessions.
const DefaultAspectRatio = "1:1"

// AspectRatios is the closed set of output shapes the service accepts.
var AspectRatios = []string{"1:1", "4:3", "3:4", "16:9", "9:16"}

var (
	// ErrMissingInput rejects a generate issued without a source image or
	// with an empty instruction. No state changes and no request is sent.
	ErrMissingInput = errors.New("generate requires a source image and a non-empty instruction")
	// ErrInFlight rejects a generate while another call is outstanding.
	ErrInFlight = errors.New("a generation request is already in flight")
	// ErrBadAspectRatio rejects ratios outside AspectRatios.
	ErrBadAspectRatio = errors.New("unsupported aspect ratio")
)

// Snapshot is an immutable view of session state, delivered to the
// OnChange callback after every transition.
type Snapshot struct {
	ID          string
	Status      Status
	Instruction string
	AspectRatio string
	Source      *imaging.EncodedImage
	Result      *imaging.EncodedImage
	ErrorDetail string
	// Err is the classified failure behind ErrorDetail; errors.Is against
	// imagegen.ErrNoImage separates a declined edit from a service error.
	Err error
}

// Session is the state machine governing one image-edit attempt. All
// mutations are applied atomically per transition; at most one remote
// call is outstanding at a time. Input changes bump a generation counter
// so that a call issued against inputs that have since changed cannot
// overwrite newer state when it finally returns.
type Session struct {
	id        string
	generator imagegen.Generator
	onChange  func(Snapshot)

	mu          sync.Mutex
	status      Status
	source      *imaging.EncodedImage
	instruction string
	aspectRatio string
	result      *imaging.EncodedImage
	errDetail   string
	err         error
	generation  uint64
}

// NewSession creates an idle session. onChange may be nil; when set it is
// invoked (outside the session lock) after every state transition.
func NewSession(generator imagegen.Generator, onChange func(Snapshot)) *Session {
	return &Session{
		id:          uuid.NewString(),
		generator:   generator,
		onChange:    onChange,
		status:      StatusIdle,
		aspectRatio: DefaultAspectRatio,
	}
}

func (s *Session) ID() string { return s.id }

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:          s.id,
		Status:      s.status,
		Instruction: s.instruction,
		AspectRatio: s.aspectRatio,
		ErrorDetail: s.errDetail,
		Err:         s.err,
	}
	if s.source != nil {
		src := *s.source
		snap.Source = &src
	}
	if s.result != nil {
		res := *s.result
		snap.Result = &res
	}
	return snap
}

// SetSource installs a freshly encoded image, replacing any previous one.
// The session always lands in Ready; prior output and prior error state
// are discarded.
func (s *Session) SetSource(img imaging.EncodedImage) {
	s.mu.Lock()
	s.source = &img
	s.result = nil
	s.errDetail = ""
	s.err = nil
	s.generation++
	// Re-selection is always legal, but an outstanding call stays the
	// only one: the status holds InFlight until that voided call
	// completes, and the discard path then settles the session to Ready.
	if s.status != StatusInFlight {
		s.status = StatusReady
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
}

// SetInstruction updates the edit instruction. A finished session drops
// back to Ready so the user can regenerate.
func (s *Session) SetInstruction(text string) {
	s.mu.Lock()
	s.instruction = text
	s.generation++
	s.settleLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
}

// SetAspectRatio updates the target output shape. Only values from
// AspectRatios are accepted.
func (s *Session) SetAspectRatio(ratio string) error {
	if !validAspectRatio(ratio) {
		return ErrBadAspectRatio
	}
	s.mu.Lock()
	s.aspectRatio = ratio
	s.generation++
	s.settleLocked()
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
	return nil
}

// settleLocked moves a finished session back to Ready after an input
// edit. Idle stays Idle (no source yet); InFlight keeps its status and
// relies on the generation bump to void the outstanding call.
func (s *Session) settleLocked() {
	if s.status == StatusSucceeded || s.status == StatusFailed {
		s.status = StatusReady
		s.errDetail = ""
		s.err = nil
	}
}

// Generate starts the single remote call for the current inputs. The
// call completes asynchronously; the session transitions to Succeeded or
// Failed when it returns. Rejections carry no state change.
func (s *Session) Generate(ctx context.Context) error {
	s.mu.Lock()
	if s.status == StatusInFlight {
		s.mu.Unlock()
		return ErrInFlight
	}
	if s.source == nil || strings.TrimSpace(s.instruction) == "" {
		s.mu.Unlock()
		return ErrMissingInput
	}

	req := imagegen.Request{
		Image:       *s.source,
		Instruction: s.instruction,
		AspectRatio: s.aspectRatio,
	}
	gen := s.generation
	s.status = StatusInFlight
	s.errDetail = ""
	s.err = nil
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)

	go func() {
		result, err := s.generator.Generate(ctx, req)
		s.complete(gen, result, err)
	}()
	return nil
}

// complete applies the outcome of a remote call. Outcomes from a stale
// generation are discarded: the inputs changed while the call was
// outstanding, so neither the result nor the error may overwrite newer
// state. A stale completion that still finds the session InFlight
// resolves it to Ready.
func (s *Session) complete(gen uint64, result imaging.EncodedImage, err error) {
	s.mu.Lock()
	if gen != s.generation {
		changed := false
		if s.status == StatusInFlight {
			s.status = StatusReady
			changed = true
		}
		snap := s.snapshotLocked()
		s.mu.Unlock()
		if changed {
			s.notify(snap)
		}
		return
	}

	if err != nil {
		s.status = StatusFailed
		s.errDetail = err.Error()
		s.err = err
		// The last successful result stays visible across a failure.
	} else {
		s.status = StatusSucceeded
		s.result = &result
		s.errDetail = ""
		s.err = nil
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snap)
}

func (s *Session) notify(snap Snapshot) {
	if s.onChange != nil {
		s.onChange(snap)
	}
}

func validAspectRatio(ratio string) bool {
	for _, r := range AspectRatios {
		if r == ratio {
			return true
		}
	}
	return false
}
