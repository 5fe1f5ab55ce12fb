package quote

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"fixflow/internal/domain/tracking"
)

// Status is the raw status vocabulary of a quote.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusViewed   Status = "viewed"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

var validStatuses = map[Status]bool{
	StatusDraft:    true,
	StatusSent:     true,
	StatusViewed:   true,
	StatusAccepted: true,
	StatusRejected: true,
	StatusExpired:  true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid quote status: %s", s)
	}
	return status, nil
}

// AllStatuses returns the full quote vocabulary; used by the classifier
// exhaustiveness check.
func AllStatuses() []Status {
	out := make([]Status, 0, len(validStatuses))
	for s := range validStatuses {
		out = append(out, s)
	}
	return out
}

// Quote is a priced repair proposal. Sending, viewing and acceptance are
// state changes applied by the CRUD layer; the tracking engine re-reads
// them.
type Quote struct {
	id            uint
	number        string
	sequence      int
	year          int
	customerID    uint
	customerEmail string
	description   string
	totalAmount   *float64
	validUntil    *time.Time
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

func NewQuote(
	customerID uint,
	customerEmail string,
	description string,
	totalAmount *float64,
	validUntil *time.Time,
) (*Quote, error) {
	customerEmail = strings.TrimSpace(strings.ToLower(customerEmail))
	if _, err := mail.ParseAddress(customerEmail); err != nil {
		return nil, fmt.Errorf("invalid customer email")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}

	now := time.Now()
	return &Quote{
		customerID:    customerID,
		customerEmail: customerEmail,
		description:   description,
		totalAmount:   totalAmount,
		validUntil:    validUntil,
		status:        StatusDraft,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructQuote(
	id uint,
	number string,
	sequence int,
	year int,
	customerID uint,
	customerEmail string,
	description string,
	totalAmount *float64,
	validUntil *time.Time,
	status Status,
	createdAt, updatedAt time.Time,
) (*Quote, error) {
	if id == 0 {
		return nil, fmt.Errorf("quote ID cannot be zero")
	}
	if len(number) == 0 {
		return nil, fmt.Errorf("quote number is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid quote status: %s", status)
	}

	return &Quote{
		id:            id,
		number:        number,
		sequence:      sequence,
		year:          year,
		customerID:    customerID,
		customerEmail: customerEmail,
		description:   description,
		totalAmount:   totalAmount,
		validUntil:    validUntil,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (q *Quote) ID() uint              { return q.id }
func (q *Quote) Number() string        { return q.number }
func (q *Quote) Sequence() int         { return q.sequence }
func (q *Quote) Year() int             { return q.year }
func (q *Quote) CustomerID() uint      { return q.customerID }
func (q *Quote) CustomerEmail() string { return q.customerEmail }
func (q *Quote) Description() string   { return q.description }
func (q *Quote) TotalAmount() *float64 { return q.totalAmount }
func (q *Quote) ValidUntil() *time.Time { return q.validUntil }
func (q *Quote) Status() Status        { return q.status }
func (q *Quote) CreatedAt() time.Time  { return q.createdAt }
func (q *Quote) UpdatedAt() time.Time  { return q.updatedAt }

func (q *Quote) SetID(id uint) error {
	if q.id != 0 {
		return fmt.Errorf("quote ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("quote ID cannot be zero")
	}
	q.id = id
	return nil
}

// AssignNumber records the allocated (sequence, year) pair and the formatted
// tracking number derived from it.
func (q *Quote) AssignNumber(sequence, year int) error {
	if q.number != "" {
		return fmt.Errorf("quote number is already set")
	}
	if sequence <= 0 {
		return fmt.Errorf("sequence must be positive")
	}
	q.sequence = sequence
	q.year = year
	q.number = tracking.FormatNumber(tracking.KindQuote, sequence, year)
	return nil
}

// Trackable projects the quote onto the unified trackable-item shape.
func (q *Quote) Trackable() (tracking.Item, error) {
	info, err := tracking.Classify(tracking.KindQuote, q.status.String())
	if err != nil {
		return tracking.Item{}, fmt.Errorf("projecting quote %d: %w", q.id, err)
	}

	return tracking.Item{
		Kind:          tracking.KindQuote,
		ID:            q.id,
		Number:        q.number,
		RawStatus:     q.status.String(),
		Status:        info.Category,
		StatusLabel:   info.Label,
		CustomerID:    q.customerID,
		CustomerEmail: q.customerEmail,
		Description:   q.description,
		TotalAmount:   q.totalAmount,
		ValidUntil:    q.validUntil,
		CreatedAt:     q.createdAt,
		UpdatedAt:     q.updatedAt,
	}, nil
}
