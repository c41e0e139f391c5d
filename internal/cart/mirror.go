// Package cart keeps the client-local mirror of the server-side cart. Edits
// apply optimistically and roll back when the remote request fails; a line
// with a request in flight refuses further edits until it resolves.
package cart

import (
	"errors"
	"sync"

	"rms-web/internal/domain"
)

var (
	// ErrLineBusy means the line already has an update in flight; the edit
	// is suppressed, matching the disabled control.
	ErrLineBusy = errors.New("cart: line update in flight")
	// ErrMinQuantity guards the floor of 1; decrement stops there.
	ErrMinQuantity = errors.New("cart: quantity already at minimum")
	ErrUnknownLine = errors.New("cart: no such line")
)

// Mirror is one user's local cart state. The guard is per line, not global:
// two different lines can have edits in flight at the same time.
type Mirror struct {
	mu    sync.Mutex
	lines []domain.CartLine
	busy  map[int]bool
}

func NewMirror() *Mirror {
	return &Mirror{busy: make(map[int]bool)}
}

// Replace swaps in a freshly fetched cart snapshot.
func (m *Mirror) Replace(lines []domain.CartLine) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append([]domain.CartLine(nil), lines...)
}

// Lines returns a copy of the current mirror state.
func (m *Mirror) Lines() []domain.CartLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.CartLine(nil), m.lines...)
}

func (m *Mirror) Busy(menuItemID int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.busy[menuItemID]
}

// StartEdit validates and optimistically applies a quantity delta, marking
// the line in flight. It returns the prior quantity for rollback.
func (m *Mirror) StartEdit(menuItemID, delta int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.busy[menuItemID] {
		return 0, ErrLineBusy
	}
	for i := range m.lines {
		if m.lines[i].MenuItem.ID != menuItemID {
			continue
		}
		prev := m.lines[i].Quantity
		next := prev + delta
		if next < 1 {
			return 0, ErrMinQuantity
		}
		m.lines[i].Quantity = next
		m.busy[menuItemID] = true
		return prev, nil
	}
	return 0, ErrUnknownLine
}

// FinishEdit resolves an in-flight edit. On failure the line's displayed
// quantity is restored to its pre-edit value.
func (m *Mirror) FinishEdit(menuItemID, prev int, failed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.busy, menuItemID)
	if !failed {
		return
	}
	for i := range m.lines {
		if m.lines[i].MenuItem.ID == menuItemID {
			m.lines[i].Quantity = prev
			return
		}
	}
}

// Drop removes a line after the remote delete succeeded.
func (m *Mirror) Drop(menuItemID int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.busy, menuItemID)
	kept := m.lines[:0]
	for _, line := range m.lines {
		if line.MenuItem.ID != menuItemID {
			kept = append(kept, line)
		}
	}
	m.lines = kept
}

// Clear empties the mirror after a successful checkout.
func (m *Mirror) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = nil
	m.busy = make(map[int]bool)
}
