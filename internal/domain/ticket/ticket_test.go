package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixflow/internal/domain/tracking"
)

func newRepairTicket(t *testing.T) *Ticket {
	tk, err := NewTicket(tracking.KindRepairTicket, 7, "Owner@Example.com", "screen cracked")
	require.NoError(t, err)
	return tk
}

func TestNewTicket(t *testing.T) {
	t.Run("repair ticket starts in intake", func(t *testing.T) {
		tk := newRepairTicket(t)
		assert.Equal(t, StatusIntake, tk.Status())
		assert.Equal(t, "owner@example.com", tk.CustomerEmail())
		assert.False(t, tk.IsConverted())
	})

	t.Run("warranty ticket starts in received", func(t *testing.T) {
		tk, err := NewTicket(tracking.KindWarrantyTicket, 7, "owner@example.com", "dead pixel")
		require.NoError(t, err)
		assert.Equal(t, StatusReceived, tk.Status())
	})

	t.Run("rejects non-ticket kinds", func(t *testing.T) {
		_, err := NewTicket(tracking.KindWorkOrder, 7, "owner@example.com", "x")
		assert.Error(t, err)

		_, err = NewTicket(tracking.KindQuote, 7, "owner@example.com", "x")
		assert.Error(t, err)
	})

	t.Run("rejects bad email and empty description", func(t *testing.T) {
		_, err := NewTicket(tracking.KindRepairTicket, 7, "not-an-email", "x")
		assert.Error(t, err)

		_, err = NewTicket(tracking.KindRepairTicket, 7, "owner@example.com", "")
		assert.Error(t, err)
	})
}

func TestTicketAssignNumber(t *testing.T) {
	tk := newRepairTicket(t)

	require.NoError(t, tk.AssignNumber(12, 25))
	assert.Equal(t, "TK-12/25", tk.Number())
	assert.Equal(t, 12, tk.Sequence())
	assert.Equal(t, 25, tk.Year())

	assert.Error(t, tk.AssignNumber(13, 25), "number must be assigned once")
}

func TestTicketStatusTransitions(t *testing.T) {
	tk := newRepairTicket(t)

	require.NoError(t, tk.ChangeStatus(StatusDiagnosing))
	require.NoError(t, tk.ChangeStatus(StatusAwaitingCustomer))
	require.NoError(t, tk.ChangeStatus(StatusDiagnosing))

	assert.Error(t, tk.ChangeStatus(StatusIntake), "no transition back to intake")
	assert.Error(t, tk.ChangeStatus(StatusApproved), "warranty status invalid for repair ticket")
}

func TestTicketConversion(t *testing.T) {
	t.Run("repair ticket sets the work-order pointer", func(t *testing.T) {
		tk := newRepairTicket(t)
		require.NoError(t, tk.AssignNumber(12, 25))
		require.NoError(t, tk.ChangeStatus(StatusDiagnosing))

		require.NoError(t, tk.ConvertTo(8))

		require.NotNil(t, tk.ConvertedToWorkOrderID())
		assert.Equal(t, uint(8), *tk.ConvertedToWorkOrderID())
		assert.Nil(t, tk.ConvertedToWarrantyWorkOrderID())
		assert.NotNil(t, tk.ConvertedAt())
		assert.Equal(t, StatusConverted, tk.Status())
	})

	t.Run("warranty ticket sets the warranty pointer", func(t *testing.T) {
		tk, err := NewTicket(tracking.KindWarrantyTicket, 7, "owner@example.com", "dead pixel")
		require.NoError(t, err)
		require.NoError(t, tk.AssignNumber(3, 25))
		require.NoError(t, tk.ChangeStatus(StatusUnderReview))
		require.NoError(t, tk.ChangeStatus(StatusApproved))

		require.NoError(t, tk.ConvertTo(4))

		assert.Nil(t, tk.ConvertedToWorkOrderID())
		require.NotNil(t, tk.ConvertedToWarrantyWorkOrderID())
		assert.Equal(t, uint(4), *tk.ConvertedToWarrantyWorkOrderID())
	})

	t.Run("conversion is append-only", func(t *testing.T) {
		tk := newRepairTicket(t)
		require.NoError(t, tk.AssignNumber(12, 25))
		require.NoError(t, tk.ChangeStatus(StatusDiagnosing))
		require.NoError(t, tk.ConvertTo(8))

		assert.Error(t, tk.ConvertTo(9), "pointer must never be repointed")
		assert.Equal(t, uint(8), *tk.ConvertedToWorkOrderID())
	})

	t.Run("intake ticket cannot convert directly", func(t *testing.T) {
		tk := newRepairTicket(t)
		require.NoError(t, tk.AssignNumber(12, 25))
		assert.Error(t, tk.ConvertTo(8))
	})
}

func TestReconstructTicketRejectsDoublePointer(t *testing.T) {
	wo := uint(8)
	wwo := uint(9)
	now := time.Now()

	_, err := ReconstructTicket(
		1, tracking.KindRepairTicket, "TK-12/25", 12, 25,
		7, "owner@example.com", "screen cracked", StatusConverted,
		&wo, &wwo, &now, now, now,
	)
	assert.Error(t, err, "at most one conversion pointer may be set")
}

func TestTicketTrackable(t *testing.T) {
	tk := newRepairTicket(t)
	require.NoError(t, tk.AssignNumber(12, 25))
	require.NoError(t, tk.SetID(1))

	item, err := tk.Trackable()
	require.NoError(t, err)

	assert.Equal(t, tracking.KindRepairTicket, item.Kind)
	assert.Equal(t, "TK-12/25", item.Number)
	assert.Equal(t, "intake", item.RawStatus)
	assert.Equal(t, tracking.CategoryPending, item.Status)
	assert.Equal(t, "Received", item.StatusLabel)
	assert.Empty(t, item.TechnicianName, "absent optional fields stay absent")
	assert.Nil(t, item.TotalCost)

	_, _, hasTarget := item.ConversionTarget()
	assert.False(t, hasTarget)
}

// Every status a ticket can hold must classify; an unmapped value in the
// table is a defect caught here, not a runtime branch.
func TestTicketStatusesAllClassify(t *testing.T) {
	for _, kind := range []tracking.Kind{tracking.KindRepairTicket, tracking.KindWarrantyTicket} {
		for _, status := range AllStatuses(kind) {
			_, err := tracking.Classify(kind, status.String())
			assert.NoError(t, err, "%s/%s", kind, status)
		}
	}
}
