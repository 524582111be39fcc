package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ahsan589/playspot/internal/events"
	"github.com/ahsan589/playspot/internal/models"
	"go.uber.org/zap"
)

var (
	ErrBookingNotFound       = errors.New("booking not found")
	ErrInvalidStatus         = errors.New("status is not a valid target")
	ErrNotApproved           = errors.New("owner account is not approved")
	ErrActionNotOffered      = errors.New("action is not offered for this booking")
	ErrReasonRequired        = errors.New("a rejection reason is required")
	ErrInvalidViewTransition = errors.New("invalid view transition")
)

type ViewMode string

const (
	ViewList   ViewMode = "list"
	ViewDetail ViewMode = "detail"
)

type BookingView struct {
	models.Booking
	Actions []models.BookingAction `json:"actions"`
}

type Snapshot struct {
	Access      models.AccessState `json:"access"`
	Bookings    []BookingView      `json:"bookings"`
	Loading     bool               `json:"loading"`
	View        ViewMode           `json:"view"`
	Selected    *BookingView       `json:"selected,omitempty"`
	DraftReason string             `json:"draft_reason,omitempty"`
}

// BookingController holds one owner's booking screen: the approval gate, the
// cached booking set and the list/detail view state.
//
// Every refresh pass takes a sequence number and is applied only when newer
// than the last applied pass. A successful status write invalidates all
// passes issued before it, so a slow fetch can never roll a write back.
type BookingController struct {
	ownerId  string
	store    models.BookingStore
	notifier Notifier
	events   events.Publisher
	logger   *zap.Logger
	now      func() time.Time

	mu          sync.Mutex
	access      models.AccessState
	bookings    []models.Booking
	issued      uint64
	applied     uint64
	loading     bool
	view        ViewMode
	selected    *models.Booking
	draftReason string
}

func NewBookingController(ownerId string, store models.BookingStore, notifier Notifier, publisher events.Publisher, logger *zap.Logger) *BookingController {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingController{
		ownerId:  ownerId,
		store:    store,
		notifier: notifier,
		events:   publisher,
		logger:   logger.With(zap.String("service", "bookings"), zap.String("owner_id", ownerId)),
		now:      time.Now,
		access:   models.AccessState{Status: models.ApprovalPending},
		bookings: []models.Booking{},
		view:     ViewList,
	}
}

func (bc *BookingController) OwnerID() string {
	return bc.ownerId
}

// Refresh re-reads the approval gate and, for approved owners, every booking
// on their grounds. On failure the previous state is kept.
func (bc *BookingController) Refresh(ctx context.Context) error {
	if bc.ownerId == "" {
		return nil
	}

	bc.mu.Lock()
	bc.issued++
	seq := bc.issued
	bc.loading = true
	bc.mu.Unlock()

	access, bookings, err := bc.fetch(ctx)

	bc.mu.Lock()
	if seq == bc.issued {
		bc.loading = false
	}
	if err != nil {
		bc.mu.Unlock()
		bc.logger.Error("Failed to load bookings", zap.Uint64("seq", seq), zap.Error(err))
		bc.notify(ctx, models.ToastError, "Error", "Failed to load bookings")
		return fmt.Errorf("refresh bookings: %w", err)
	}
	if applied := bc.applied; seq <= applied {
		bc.mu.Unlock()
		bc.logger.Debug("Discarding stale refresh", zap.Uint64("seq", seq), zap.Uint64("applied", applied))
		return nil
	}
	bc.applied = seq
	bc.access = access
	bc.bookings = bookings
	if !access.IsApproved() {
		bc.resetView()
	}
	bc.mu.Unlock()

	bc.logger.Debug("Bookings refreshed",
		zap.Uint64("seq", seq),
		zap.String("access", string(access.Status)),
		zap.Int("count", len(bookings)),
	)
	return nil
}

func (bc *BookingController) fetch(ctx context.Context) (models.AccessState, []models.Booking, error) {
	owner, err := bc.store.GetOwner(ctx, bc.ownerId)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return models.AccessState{}, nil, fmt.Errorf("read owner: %w", err)
	}
	if owner == nil || owner.ApprovalStatus != models.ApprovalApproved {
		return models.NewAccessState(owner, nil), []models.Booking{}, nil
	}

	grounds, err := bc.store.ListGroundsByOwner(ctx, bc.ownerId)
	if err != nil {
		return models.AccessState{}, nil, fmt.Errorf("list grounds: %w", err)
	}
	ids := models.GroundIDs(grounds)
	access := models.NewAccessState(owner, ids)
	if len(ids) == 0 {
		return access, []models.Booking{}, nil
	}

	bookings, err := bc.store.ListBookingsByGrounds(ctx, ids)
	if err != nil {
		return models.AccessState{}, nil, fmt.Errorf("list bookings: %w", err)
	}

	names := make(map[string]string, len(grounds))
	for _, g := range grounds {
		names[g.ID] = g.Name
	}
	// One lookup per booking, in order.
	for i := range bookings {
		if bookings[i].GroundName == "" {
			bookings[i].GroundName = names[bookings[i].GroundID]
		}
		player, err := bc.store.GetPlayer(ctx, bookings[i].PlayerID)
		if err != nil {
			bc.logger.Debug("Player lookup failed, using placeholders",
				zap.String("booking_id", bookings[i].ID),
				zap.String("player_id", bookings[i].PlayerID),
				zap.Error(err),
			)
			player = nil
		}
		bookings[i].WithPlayer(player)
	}
	if err := ctx.Err(); err != nil {
		return models.AccessState{}, nil, err
	}

	models.SortByDateDesc(bookings)
	return access, bookings, nil
}

// ApplyStatus writes a new status (and reason, if any) for one booking and
// mirrors it locally once the store has acknowledged the write.
func (bc *BookingController) ApplyStatus(ctx context.Context, bookingId string, status models.BookingStatus, reason string) error {
	if !status.IsWriteTarget() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	bc.mu.Lock()
	approved := bc.access.IsApproved()
	current, found := bc.find(bookingId)
	bc.mu.Unlock()

	if !approved {
		return ErrNotApproved
	}
	if !found {
		return ErrBookingNotFound
	}

	if err := bc.store.UpdateBookingStatus(ctx, bookingId, status, reason); err != nil {
		bc.logger.Error("Failed to update booking status",
			zap.String("booking_id", bookingId),
			zap.String("status", string(status)),
			zap.Error(err),
		)
		bc.notify(ctx, models.ToastError, "Error", fmt.Sprintf("Failed to mark booking as %s", status))
		return fmt.Errorf("update booking %s: %w", bookingId, err)
	}

	bc.mu.Lock()
	bc.applied = bc.issued
	bc.setStatus(bookingId, status, reason)
	bc.mu.Unlock()

	bc.logger.Info("Booking status updated",
		zap.String("booking_id", bookingId),
		zap.String("from", string(current.Status)),
		zap.String("to", string(status)),
	)
	bc.notify(ctx, models.ToastSuccess, "Success", fmt.Sprintf("Booking %s successfully", status))

	event := events.BookingStatusChangedEvent{
		BookingID: bookingId,
		GroundID:  current.GroundID,
		PlayerID:  current.PlayerID,
		OwnerID:   bc.ownerId,
		Status:    string(status),
		Reason:    reason,
		ChangedAt: bc.now().UTC().Format(time.RFC3339),
	}
	if err := bc.events.PublishJSON(ctx, events.BookingStatusChangedKey, event); err != nil {
		bc.logger.Warn("Failed to publish status event", zap.String("booking_id", bookingId), zap.Error(err))
	}
	return nil
}

// RunAction applies an owner action as the screen offers it. A reject needs a
// reason, taken from the request or from the detail view's draft.
func (bc *BookingController) RunAction(ctx context.Context, bookingId string, action models.BookingAction, reason string) error {
	target := action.Target()
	if target == "" {
		return fmt.Errorf("%w: unknown action %q", ErrActionNotOffered, action)
	}

	bc.mu.Lock()
	approved := bc.access.IsApproved()
	current, found := bc.find(bookingId)
	draft := ""
	if bc.view == ViewDetail && bc.selected != nil && bc.selected.ID == bookingId {
		draft = bc.draftReason
	}
	bc.mu.Unlock()

	if !approved {
		return ErrNotApproved
	}
	if !found {
		return ErrBookingNotFound
	}
	if !models.IsActionOffered(current.Status, action) {
		return fmt.Errorf("%w: %s on %s booking", ErrActionNotOffered, action, current.Status)
	}

	if action == models.ActionReject {
		if strings.TrimSpace(reason) == "" {
			reason = draft
		}
		var err error
		if reason, err = bc.RequireReason(ctx, reason); err != nil {
			return err
		}
	} else {
		reason = ""
	}

	return bc.ApplyStatus(ctx, bookingId, target, reason)
}

// RequireReason is the rejection-reason check callers run before a reject
// write. An empty reason queues a validation toast.
func (bc *BookingController) RequireReason(ctx context.Context, reason string) (string, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		bc.notify(ctx, models.ToastError, "Validation Error", "Please provide a reason for rejection")
		return "", ErrReasonRequired
	}
	return reason, nil
}

// Select moves the screen from the list to one booking's detail.
func (bc *BookingController) Select(bookingId string) error {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	if bc.view != ViewList {
		return fmt.Errorf("%w: already viewing a booking", ErrInvalidViewTransition)
	}
	b, ok := bc.find(bookingId)
	if !ok {
		return ErrBookingNotFound
	}
	bc.view = ViewDetail
	bc.selected = &b
	bc.draftReason = ""
	return nil
}

// Back returns to the list. It is a no-op on the list itself.
func (bc *BookingController) Back() {
	bc.mu.Lock()
	defer bc.mu.Unlock()
	bc.resetView()
}

func (bc *BookingController) SetDraftReason(text string) error {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	if bc.view != ViewDetail {
		return fmt.Errorf("%w: no booking selected", ErrInvalidViewTransition)
	}
	bc.draftReason = text
	return nil
}

func (bc *BookingController) Booking(bookingId string) (BookingView, bool) {
	bc.mu.Lock()
	defer bc.mu.Unlock()
	b, ok := bc.find(bookingId)
	if !ok {
		return BookingView{}, false
	}
	return toView(b), true
}

// Snapshot copies the screen state. An empty filter lists every status.
func (bc *BookingController) Snapshot(filter models.BookingStatus) Snapshot {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	filtered := models.FilterByStatus(bc.bookings, filter)
	views := make([]BookingView, 0, len(filtered))
	for _, b := range filtered {
		views = append(views, toView(b))
	}

	snap := Snapshot{
		Access:      bc.access,
		Bookings:    views,
		Loading:     bc.loading,
		View:        bc.view,
		DraftReason: bc.draftReason,
	}
	if bc.selected != nil {
		sel := toView(*bc.selected)
		snap.Selected = &sel
	}
	return snap
}

func toView(b models.Booking) BookingView {
	return BookingView{Booking: b, Actions: models.AvailableActions(b.Status)}
}

// find and setStatus expect bc.mu to be held.
func (bc *BookingController) find(bookingId string) (models.Booking, bool) {
	for _, b := range bc.bookings {
		if b.ID == bookingId {
			return b, true
		}
	}
	return models.Booking{}, false
}

func (bc *BookingController) setStatus(bookingId string, status models.BookingStatus, reason string) {
	for i := range bc.bookings {
		if bc.bookings[i].ID == bookingId {
			bc.bookings[i].Status = status
			if reason != "" {
				bc.bookings[i].Reason = reason
			}
		}
	}
	if bc.selected != nil && bc.selected.ID == bookingId {
		bc.selected.Status = status
		if reason != "" {
			bc.selected.Reason = reason
		}
	}
}

func (bc *BookingController) resetView() {
	bc.view = ViewList
	bc.selected = nil
	bc.draftReason = ""
}

func (bc *BookingController) notify(ctx context.Context, kind models.ToastKind, title, message string) {
	if bc.notifier == nil {
		return
	}
	toast := models.Toast{Kind: kind, Title: title, Message: message, CreatedAt: bc.now().UTC()}
	if err := bc.notifier.Notify(ctx, bc.ownerId, toast); err != nil {
		bc.logger.Warn("Failed to queue toast", zap.String("title", title), zap.Error(err))
	}
}
