// Package session holds the single analysis state machine shared by the CLI and HTTP front ends.
//
// A Session moves Idle -> Analyzing -> Complete | Error. At most one analysis is in
// flight; a Start while Analyzing is rejected synchronously and leaves the running
// attempt untouched. Reset returns to Idle from any state and any completion that
// arrives for a reset attempt is dropped.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-matcher/internal/analysis"
	"github.com/jonathan/resume-matcher/internal/types"
)

var (
	// ErrAnalysisInProgress is returned by Start while an attempt is running.
	ErrAnalysisInProgress = errors.New("an analysis is already in progress")
	// ErrInvalidInput is returned by Start when either input is blank.
	ErrInvalidInput = errors.New("invalid input")
)

// State is the session's lifecycle tag.
type State int

const (
	StateIdle State = iota
	StateAnalyzing
	StateComplete
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAnalyzing:
		return "analyzing"
	case StateComplete:
		return "complete"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// MarshalText renders the state by name so it reads naturally in JSON.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Snapshot is a consistent copy of the session at one instant.
type Snapshot struct {
	State       State                 `json:"state"`
	AttemptID   string                `json:"attempt_id,omitempty"`
	Result      *types.AnalysisResult `json:"result,omitempty"`
	Error       string                `json:"error,omitempty"`
	StartedAt   *time.Time            `json:"started_at,omitempty"`
	FinishedAt  *time.Time            `json:"finished_at,omitempty"`
	ResumeChars int                   `json:"resume_chars,omitempty"`
	JobChars    int                   `json:"job_chars,omitempty"`
}

const subscriberBuffer = 8

// Session is safe for concurrent use.
type Session struct {
	analyzer analysis.Analyzer

	mu          sync.Mutex
	state       State
	attemptID   string
	result      *types.AnalysisResult
	errMsg      string
	startedAt   time.Time
	finishedAt  time.Time
	resumeChars int
	jobChars    int
	done        chan struct{} // closed when the current attempt settles or is reset

	subscribers map[int]chan Snapshot
	nextSubID   int

	inflight sync.WaitGroup
}

// New creates an Idle session that runs analyses with analyzer.
func New(analyzer analysis.Analyzer) *Session {
	return &Session{
		analyzer:    analyzer,
		state:       StateIdle,
		subscribers: make(map[int]chan Snapshot),
	}
}

// Start validates input and launches an analysis in the background, returning at once.
// The analysis is detached from ctx cancellation but keeps its values.
func (s *Session) Start(ctx context.Context, input types.InputState) error {
	if err := input.Validate(); err != nil {
		return fmt.Errorf("%w: resume text and job description are both required", ErrInvalidInput)
	}

	s.mu.Lock()
	if s.state == StateAnalyzing {
		s.mu.Unlock()
		return ErrAnalysisInProgress
	}

	attemptID := uuid.New().String()
	s.state = StateAnalyzing
	s.attemptID = attemptID
	s.result = nil
	s.errMsg = ""
	s.startedAt = time.Now()
	s.finishedAt = time.Time{}
	s.resumeChars = len(input.ResumeText)
	s.jobChars = len(input.JobDescription)
	s.done = make(chan struct{})
	s.inflight.Add(1)
	s.publishLocked()
	s.mu.Unlock()

	log.Printf("[session] attempt %s started (resume=%d chars, job=%d chars)",
		attemptID, len(input.ResumeText), len(input.JobDescription))

	go s.run(context.WithoutCancel(ctx), attemptID, input)
	return nil
}

func (s *Session) run(ctx context.Context, attemptID string, input types.InputState) {
	defer s.inflight.Done()

	result, err := s.analyzer.Analyze(ctx, input.ResumeText, input.JobDescription)
	if err == nil && result == nil {
		// Complete always carries a result.
		err = &analysis.EmptyResponseError{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attemptID != attemptID || s.state != StateAnalyzing {
		log.Printf("[session] attempt %s finished after reset; discarding outcome", attemptID)
		return
	}

	s.finishedAt = time.Now()
	if err != nil {
		s.state = StateError
		s.errMsg = analysis.UserMessage(err)
		log.Printf("[session] attempt %s failed: %v", attemptID, err)
	} else {
		s.state = StateComplete
		s.result = result
		log.Printf("[session] attempt %s complete (match score %d)", attemptID, result.MatchScore)
	}
	s.settleLocked()
	s.publishLocked()
}

// Reset returns the session to Idle from any state, discarding result and error.
// An in-flight attempt keeps running but its outcome will be ignored.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateAnalyzing {
		log.Printf("[session] attempt %s abandoned by reset", s.attemptID)
	}
	s.state = StateIdle
	s.attemptID = ""
	s.result = nil
	s.errMsg = ""
	s.startedAt = time.Time{}
	s.finishedAt = time.Time{}
	s.resumeChars = 0
	s.jobChars = 0
	s.settleLocked()
	s.publishLocked()
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Wait blocks until the current attempt settles, is reset, or ctx ends.
// It returns immediately when nothing is in flight.
func (s *Session) Wait(ctx context.Context) (Snapshot, error) {
	s.mu.Lock()
	if s.state != StateAnalyzing {
		snap := s.snapshotLocked()
		s.mu.Unlock()
		return snap, nil
	}
	done := s.done
	s.mu.Unlock()

	select {
	case <-done:
		return s.Snapshot(), nil
	case <-ctx.Done():
		return s.Snapshot(), ctx.Err()
	}
}

// Subscribe returns a channel that receives a snapshot on every transition,
// starting with the current one. Slow readers lose intermediate snapshots,
// never the latest. Call cancel to unsubscribe.
func (s *Session) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, subscriberBuffer)

	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = ch
	ch <- s.snapshotLocked()
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Drain waits for background analyses, including abandoned ones, to return.
func (s *Session) Drain(ctx context.Context) error {
	finished := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Session) settleLocked() {
	if s.done != nil {
		close(s.done)
		s.done = nil
	}
}

func (s *Session) publishLocked() {
	snap := s.snapshotLocked()
	for _, ch := range s.subscribers {
		select {
		case ch <- snap:
			continue
		default:
		}
		// Buffer full: drop the oldest snapshot to make room.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:       s.state,
		AttemptID:   s.attemptID,
		Result:      s.result,
		Error:       s.errMsg,
		ResumeChars: s.resumeChars,
		JobChars:    s.jobChars,
	}
	if !s.startedAt.IsZero() {
		started := s.startedAt
		snap.StartedAt = &started
	}
	if !s.finishedAt.IsZero() {
		finished := s.finishedAt
		snap.FinishedAt = &finished
	}
	return snap
}
