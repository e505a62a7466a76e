package main

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/RichieRish05/ProRankAI/constants"
	"github.com/RichieRish05/ProRankAI/internal/entity"
)

func TestSyncDispatcherForcesFailureOnRow(t *testing.T) {
	d := entity.TaskDispatch{TaskID: uuid.New(), JobID: uuid.New(), DocRef: "doc"}

	var (
		failedID  uuid.UUID
		failedMsg string
		hookSeen  constants.TaskStatus
	)
	s := &syncDispatcher{
		run: func(context.Context, entity.TaskDispatch) (constants.TaskStatus, error) {
			return "", errors.New("task row unreachable")
		},
		fail: func(_ context.Context, id uuid.UUID, message string) error {
			failedID = id
			failedMsg = message
			return nil
		},
		onTerminal: func(_ context.Context, _ entity.TaskDispatch, status constants.TaskStatus) {
			hookSeen = status
		},
		logger: slog.Default(),
	}

	if err := s.Enqueue(context.Background(), d); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	// The row must be forced failed, not just reported failed to the
	// rollup hook.
	if failedID != d.TaskID {
		t.Errorf("MarkFailed called for %s, want %s", failedID, d.TaskID)
	}
	if failedMsg != "task row unreachable" {
		t.Errorf("failure message = %q", failedMsg)
	}
	if hookSeen != constants.TaskStatusFailed {
		t.Errorf("hook saw status %v, want failed", hookSeen)
	}
}

func TestSyncDispatcherLeavesTerminalResultsAlone(t *testing.T) {
	d := entity.TaskDispatch{TaskID: uuid.New(), JobID: uuid.New(), DocRef: "doc"}

	forced := false
	var hookSeen constants.TaskStatus
	s := &syncDispatcher{
		run: func(context.Context, entity.TaskDispatch) (constants.TaskStatus, error) {
			return constants.TaskStatusScored, nil
		},
		fail: func(context.Context, uuid.UUID, string) error {
			forced = true
			return nil
		},
		onTerminal: func(_ context.Context, _ entity.TaskDispatch, status constants.TaskStatus) {
			hookSeen = status
		},
		logger: slog.Default(),
	}

	if err := s.Enqueue(context.Background(), d); err != nil {
		t.Fatalf("Enqueue: %v", err)
	}
	if forced {
		t.Error("MarkFailed called for a scored task")
	}
	if hookSeen != constants.TaskStatusScored {
		t.Errorf("hook saw status %v, want scored", hookSeen)
	}
}
