package client

import (
	"fmt"

	"github.com/taskora/taskora-api/internal/domain"
)

// MoveState tags a task's position on the board relative to server truth.
type MoveState int

const (
	// Confirmed means the displayed status matches the last server response.
	Confirmed MoveState = iota
	// Pending means an optimistic move was applied locally and awaits the
	// server's answer.
	Pending
	// RolledBack means the last move was rejected and the task snapped back
	// to its confirmed column.
	RolledBack
)

func (s MoveState) String() string {
	switch s {
	case Confirmed:
		return "confirmed"
	case Pending:
		return "pending"
	case RolledBack:
		return "rolled back"
	default:
		return fmt.Sprintf("MoveState(%d)", int(s))
	}
}

type boardEntry struct {
	confirmed domain.TaskStatus
	pending   domain.TaskStatus
	state     MoveState
}

// Board reconciles Kanban drags: the pending overlay is applied immediately
// and either replaced by server truth on confirmation or discarded on
// rejection. Last write wins; the client is authoritative only until the
// server answers.
type Board struct {
	entries map[uint]*boardEntry
}

func NewBoard(tasks []*domain.Task) *Board {
	b := &Board{entries: make(map[uint]*boardEntry, len(tasks))}
	for _, t := range tasks {
		b.entries[t.ID] = &boardEntry{confirmed: t.Status, state: Confirmed}
	}
	return b
}

// Status returns the displayed status for a task: the pending overlay if one
// is in flight, the confirmed server state otherwise.
func (b *Board) Status(taskID uint) (domain.TaskStatus, MoveState, bool) {
	e, ok := b.entries[taskID]
	if !ok {
		return "", Confirmed, false
	}
	if e.state == Pending {
		return e.pending, Pending, true
	}
	return e.confirmed, e.state, true
}

// Move applies an optimistic drag. The task shows in the target column
// immediately; the server has not been asked yet.
func (b *Board) Move(taskID uint, to domain.TaskStatus) error {
	e, ok := b.entries[taskID]
	if !ok {
		return fmt.Errorf("unknown task %d", taskID)
	}
	if !to.IsValid() {
		return fmt.Errorf("invalid status %q", to)
	}
	e.pending = to
	e.state = Pending
	return nil
}

// Confirm replaces the overlay with the status the server actually stored.
func (b *Board) Confirm(taskID uint, serverStatus domain.TaskStatus) {
	e, ok := b.entries[taskID]
	if !ok {
		b.entries[taskID] = &boardEntry{confirmed: serverStatus, state: Confirmed}
		return
	}
	e.confirmed = serverStatus
	e.pending = ""
	e.state = Confirmed
}

// Reject discards the overlay; the task snaps back to its last confirmed
// column.
func (b *Board) Reject(taskID uint) {
	e, ok := b.entries[taskID]
	if !ok {
		return
	}
	e.pending = ""
	e.state = RolledBack
}

// Forget removes a task from the board (e.g. after a delete).
func (b *Board) Forget(taskID uint) {
	delete(b.entries, taskID)
}

// Column lists the task ids currently displayed in the given column.
func (b *Board) Column(status domain.TaskStatus) []uint {
	var ids []uint
	for id, e := range b.entries {
		displayed := e.confirmed
		if e.state == Pending {
			displayed = e.pending
		}
		if displayed == status {
			ids = append(ids, id)
		}
	}
	return ids
}
