// Package workflow runs the approval state machine over workflow records.
//
// The machine has exactly three states and two transitions, both guarded by
// "current status must be pending":
//
//	pending -> approved
//	pending -> rejected
//
// Both outcomes are terminal; there is no way back to pending. This is the
// only per-record state machine in the engine - every other record is plain
// data, and links are immutable facts until deleted.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/roach88/reqtrace/internal/artifact"
	"github.com/roach88/reqtrace/internal/idgen"
	"github.com/roach88/reqtrace/internal/store"
	"github.com/roach88/reqtrace/internal/substrate"
	"github.com/roach88/reqtrace/internal/validate"
)

// ErrNotFound is returned when a transition targets a missing workflow.
var ErrNotFound = errors.New("workflow: not found")

// ErrNotPending is returned when a transition targets a workflow that has
// already been decided.
var ErrNotPending = errors.New("workflow: status is not pending")

// Service creates workflows and drives their transitions.
type Service struct {
	// Now supplies timestamps in epoch milliseconds.
	Now func() int64

	workflows *store.Store[*artifact.Workflow]
}

// NewService creates a workflow service on the shared substrate.
func NewService(sub substrate.Substrate, alloc *idgen.Allocator) *Service {
	return &Service{
		Now:       func() int64 { return time.Now().UnixMilli() },
		workflows: store.Workflows(sub, alloc),
	}
}

// Initialize ensures the workflow folder exists. Idempotent.
func (s *Service) Initialize(ctx context.Context) error {
	return s.workflows.Initialize(ctx)
}

// Store exposes the underlying record store for listing and lookups.
func (s *Service) Store() *store.Store[*artifact.Workflow] {
	return s.workflows
}

// Create validates and persists a new workflow. A zero status defaults to
// pending; anything else pending is rejected, since created workflows must
// enter the machine at its start state.
func (s *Service) Create(ctx context.Context, w *artifact.Workflow) (*artifact.Workflow, error) {
	if w.Status == "" {
		w.Status = artifact.WorkflowPending
	}
	if w.Status != artifact.WorkflowPending {
		return nil, fmt.Errorf("create workflow: status must be pending, got %s", w.Status)
	}
	if err := validate.Workflow(w); err != nil {
		return nil, err
	}
	return s.workflows.Create(ctx, w)
}

// Approve transitions a pending workflow to approved, recording the
// approver, decision time, and optional comment.
func (s *Service) Approve(ctx context.Context, id, approver, comment string) (*artifact.Workflow, error) {
	return s.decide(ctx, id, artifact.WorkflowApproved, approver, comment)
}

// Reject transitions a pending workflow to rejected, recording the
// approver, decision time, and optional comment.
func (s *Service) Reject(ctx context.Context, id, approver, comment string) (*artifact.Workflow, error) {
	return s.decide(ctx, id, artifact.WorkflowRejected, approver, comment)
}

func (s *Service) decide(ctx context.Context, id string, status artifact.WorkflowStatus, approver, comment string) (*artifact.Workflow, error) {
	w, err := s.workflows.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if w.Status != artifact.WorkflowPending {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotPending, id, w.Status)
	}
	if approver == "" {
		return nil, fmt.Errorf("decide workflow %s: approver is required", id)
	}
	w.Status = status
	w.ApprovedBy = approver
	w.ApprovalDate = s.Now()
	w.ApproverComment = comment
	return s.workflows.Update(ctx, w)
}
