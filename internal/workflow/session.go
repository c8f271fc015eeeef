package workflow

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/NiviGiridharan/smart-pantry-assistant/internal/domain"
)

// State is a step in the pantry-building workflow.
type State string

const (
	StateChooseType State = "choose_type"
	StateReview     State = "review"
	StateFilter     State = "filter"
	StateSelect     State = "select"
	StateOrganize   State = "organize"
	StateSaved      State = "saved"
)

// Event drives a transition between workflow states.
type Event string

const (
	EventParsed   Event = "parsed"
	EventConfirm  Event = "confirm"
	EventFiltered Event = "filtered"
	EventSelected Event = "selected"
	EventSave     Event = "save"
	EventRestart  Event = "restart"
)

// transitions is the explicit state machine: a session moves only along
// these edges. Restart is legal from every state and wipes the item list
// wholesale.
var transitions = map[State]map[Event]State{
	StateChooseType: {EventParsed: StateReview},
	StateReview:     {EventConfirm: StateFilter},
	StateFilter:     {EventFiltered: StateSelect},
	StateSelect:     {EventSelected: StateOrganize},
	StateOrganize:   {EventSave: StateSaved},
	StateSaved:      {},
}

// Session tracks one user's progress refining an extraction into a final
// pantry inventory. It lives entirely outside the extraction core and talks
// to it only through the ItemRecord sequence. Concurrent requests share one
// session, so every method locks; encoding goes through Snapshot, never the
// live struct.
type Session struct {
	mu        sync.Mutex
	ID        uuid.UUID
	State     State
	Items     []domain.ItemRecord
	Totals    domain.OrderTotals
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SessionView is the wire representation of a session: a consistent copy
// detached from the live session's lock and backing slices.
type SessionView struct {
	ID        uuid.UUID           `json:"id"`
	State     State               `json:"state"`
	Items     []domain.ItemRecord `json:"items"`
	Totals    domain.OrderTotals  `json:"totals"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// NewSession creates a session waiting for the user to choose an input type.
func NewSession() *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.New(),
		State:     StateChooseType,
		Totals:    domain.OrderTotals{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Snapshot returns a copy safe to encode while other requests mutate the
// session.
func (s *Session) Snapshot() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.ItemRecord, len(s.Items))
	copy(items, s.Items)
	totals := make(domain.OrderTotals, len(s.Totals))
	for key, amount := range s.Totals {
		totals[key] = amount
	}

	return SessionView{
		ID:        s.ID,
		State:     s.State,
		Items:     items,
		Totals:    totals,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// Apply moves the session along one transition edge.
func (s *Session) Apply(event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(event)
}

// apply is the unlocked transition step; callers hold s.mu.
func (s *Session) apply(event Event) error {
	if event == EventRestart {
		s.State = StateChooseType
		s.Items = nil
		s.Totals = domain.OrderTotals{}
		s.UpdatedAt = time.Now()
		return nil
	}

	next, ok := transitions[s.State][event]
	if !ok {
		return fmt.Errorf("%w: event %q from state %q", domain.ErrInvalidTransition, event, s.State)
	}

	s.State = next
	s.UpdatedAt = time.Now()
	return nil
}

// AttachExtraction loads a fresh extraction into the session and advances it
// to review.
func (s *Session) AttachExtraction(result *domain.Extraction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.apply(EventParsed); err != nil {
		return err
	}
	s.Items = result.Items
	s.Totals = result.Totals
	return nil
}

// ItemEdit carries a user correction: a new name, the edited line total, and
// quantity. The stored unit price is the line total divided by quantity.
type ItemEdit struct {
	Name      string          `json:"name"`
	LineTotal decimal.Decimal `json:"lineTotal"`
	Quantity  int             `json:"quantity"`
}

// EditItem applies a correction to one record and returns a copy of the
// updated record so the caller can re-run shelf-life matching without
// holding the lock. Zero-value edit fields leave the corresponding record
// field unchanged, quantity included; line-total division uses the record's
// quantity when the edit omits one.
func (s *Session) EditItem(itemID uuid.UUID, edit ItemEdit) (domain.ItemRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.Items {
		if s.Items[i].ID != itemID {
			continue
		}

		qty := edit.Quantity
		if qty <= 0 {
			qty = s.Items[i].Quantity
		}
		if qty < 1 {
			qty = 1
		}
		if name := strings.TrimSpace(edit.Name); name != "" {
			s.Items[i].Name = name
		}
		if edit.LineTotal.IsPositive() {
			s.Items[i].UnitPrice = edit.LineTotal.
				Div(decimal.NewFromInt(int64(qty))).
				Round(2)
		}
		s.Items[i].Quantity = qty
		s.UpdatedAt = time.Now()

		return s.Items[i], nil
	}

	return domain.ItemRecord{}, domain.ErrItemNotFound
}

// SetItemShelfLife stores freshly matched shelf-life info on one record and
// returns the updated copy.
func (s *Session) SetItemShelfLife(itemID uuid.UUID, info *domain.ShelfLifeInfo) (domain.ItemRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.Items {
		if s.Items[i].ID == itemID {
			s.Items[i].ShelfLife = info
			s.UpdatedAt = time.Now()
			return s.Items[i], nil
		}
	}

	return domain.ItemRecord{}, domain.ErrItemNotFound
}
