package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fixflow/internal/domain/quote"
	"fixflow/internal/domain/ticket"
	"fixflow/internal/domain/tracking"
	"fixflow/internal/domain/workorder"
	"fixflow/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.RepairTicketModel{},
		&models.WarrantyTicketModel{},
		&models.WorkOrderModel{},
		&models.WarrantyWorkOrderModel{},
		&models.QuoteModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestTicket(t *testing.T, repo *TicketRepository, kind tracking.Kind, customerID uint, email string) *ticket.Ticket {
	t.Helper()
	ctx := context.Background()

	tk, err := ticket.NewTicket(kind, customerID, email, "device will not power on")
	require.NoError(t, err)

	seq, err := repo.NextSequence(ctx, kind, 25)
	require.NoError(t, err)
	require.NoError(t, tk.AssignNumber(seq, 25))
	require.NoError(t, repo.Save(ctx, tk))
	require.NotZero(t, tk.ID())
	return tk
}

func TestTicketRepositorySaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	t.Run("repair ticket round trip", func(t *testing.T) {
		tk := createTestTicket(t, repo, tracking.KindRepairTicket, 1, "jane@example.com")
		assert.Equal(t, "TK-1/25", tk.Number())

		found, err := repo.FindByID(ctx, tracking.KindRepairTicket, tk.ID())
		require.NoError(t, err)
		assert.Equal(t, tk.Number(), found.Number())
		assert.Equal(t, tk.CustomerEmail(), found.CustomerEmail())
		assert.Equal(t, ticket.StatusIntake, found.Status())

		byNumber, err := repo.FindByNumber(ctx, tracking.KindRepairTicket, 1, 25)
		require.NoError(t, err)
		assert.Equal(t, tk.ID(), byNumber.ID())
	})

	t.Run("warranty ticket gets its own sequence", func(t *testing.T) {
		tk := createTestTicket(t, repo, tracking.KindWarrantyTicket, 1, "jane@example.com")
		assert.Equal(t, "WTK-1/25", tk.Number())
		assert.Equal(t, ticket.StatusReceived, tk.Status())
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repo.FindByID(ctx, tracking.KindRepairTicket, 9999)
		assert.ErrorIs(t, err, ticket.ErrNotFound)

		_, err = repo.FindByNumber(ctx, tracking.KindRepairTicket, 777, 25)
		assert.ErrorIs(t, err, ticket.ErrNotFound)
	})
}

func TestTicketRepositorySequencesAreScopedPerKindAndYear(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	first := createTestTicket(t, repo, tracking.KindRepairTicket, 1, "jane@example.com")
	second := createTestTicket(t, repo, tracking.KindRepairTicket, 1, "jane@example.com")
	assert.Equal(t, "TK-1/25", first.Number())
	assert.Equal(t, "TK-2/25", second.Number())

	// A different year restarts the sequence.
	seq, err := repo.NextSequence(ctx, tracking.KindRepairTicket, 26)
	require.NoError(t, err)
	assert.Equal(t, 1, seq)

	// Warranty tickets are unaffected by repair-ticket allocations.
	seq, err = repo.NextSequence(ctx, tracking.KindWarrantyTicket, 25)
	require.NoError(t, err)
	assert.Equal(t, 1, seq)
}

func TestTicketRepositoryConversionTarget(t *testing.T) {
	db := setupTestDB(t)
	tickets := NewTicketRepository(db)
	workOrders := NewWorkOrderRepository(db)
	ctx := context.Background()

	tk := createTestTicket(t, tickets, tracking.KindRepairTicket, 1, "jane@example.com")
	require.NoError(t, tk.ChangeStatus(ticket.StatusDiagnosing))

	w, err := workorder.NewWorkOrder(tracking.KindWorkOrder, 1, "jane@example.com", tk.Description())
	require.NoError(t, err)
	seq, err := workOrders.NextSequence(ctx, tracking.KindWorkOrder, 25)
	require.NoError(t, err)
	require.NoError(t, w.AssignNumber(seq, 25))
	require.NoError(t, workOrders.Save(ctx, w))

	require.NoError(t, tk.ConvertTo(w.ID()))
	require.NoError(t, tickets.Update(ctx, tk))

	t.Run("backward scan finds the converting ticket", func(t *testing.T) {
		found, err := tickets.FindByConversionTarget(ctx, tracking.KindRepairTicket, w.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, tk.ID(), found.ID())
		assert.Equal(t, ticket.StatusConverted, found.Status())
		require.NotNil(t, found.ConvertedAt())
	})

	t.Run("no pointer yields nil without error", func(t *testing.T) {
		found, err := tickets.FindByConversionTarget(ctx, tracking.KindRepairTicket, 4242)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("pointer survives reload", func(t *testing.T) {
		reloaded, err := tickets.FindByID(ctx, tracking.KindRepairTicket, tk.ID())
		require.NoError(t, err)
		require.NotNil(t, reloaded.ConvertedToWorkOrderID())
		assert.Equal(t, w.ID(), *reloaded.ConvertedToWorkOrderID())
	})
}

func TestTicketRepositoryListByCustomer(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTicketRepository(db)
	ctx := context.Background()

	createTestTicket(t, repo, tracking.KindRepairTicket, 1, "jane@example.com")
	createTestTicket(t, repo, tracking.KindRepairTicket, 1, "jane@example.com")
	createTestTicket(t, repo, tracking.KindRepairTicket, 2, "bob@example.com")

	mine, err := repo.ListByCustomer(ctx, tracking.KindRepairTicket, 1)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	theirs, err := repo.ListByCustomer(ctx, tracking.KindRepairTicket, 2)
	require.NoError(t, err)
	assert.Len(t, theirs, 1)
}

func TestWorkOrderRepositoryRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewWorkOrderRepository(db)
	ctx := context.Background()

	w, err := workorder.NewWorkOrder(tracking.KindWarrantyWorkOrder, 3, "kim@example.com", "warranty hinge repair")
	require.NoError(t, err)
	seq, err := repo.NextSequence(ctx, tracking.KindWarrantyWorkOrder, 25)
	require.NoError(t, err)
	require.NoError(t, w.AssignNumber(seq, 25))
	require.NoError(t, repo.Save(ctx, w))

	assert.Equal(t, "WWO-1/25", w.Number())

	found, err := repo.FindByNumber(ctx, tracking.KindWarrantyWorkOrder, 1, 25)
	require.NoError(t, err)
	assert.Equal(t, w.ID(), found.ID())
	assert.Equal(t, workorder.StatusOpen, found.Status())

	_, err = repo.FindByID(ctx, tracking.KindWorkOrder, w.ID())
	assert.ErrorIs(t, err, workorder.ErrNotFound, "kinds must not share a table")
}

func TestQuoteRepositoryRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQuoteRepository(db)
	ctx := context.Background()

	amount := 129.50
	q, err := quote.NewQuote(5, "lee@example.com", "battery swap", &amount, nil)
	require.NoError(t, err)
	seq, err := repo.NextSequence(ctx, 25)
	require.NoError(t, err)
	require.NoError(t, q.AssignNumber(seq, 25))
	require.NoError(t, repo.Save(ctx, q))

	assert.Equal(t, "QT-1/25", q.Number())

	found, err := repo.FindByNumber(ctx, 1, 25)
	require.NoError(t, err)
	assert.Equal(t, q.ID(), found.ID())
	require.NotNil(t, found.TotalAmount())
	assert.Equal(t, amount, *found.TotalAmount())

	listed, err := repo.ListByCustomer(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	_, err = repo.FindByNumber(ctx, 99, 25)
	assert.ErrorIs(t, err, quote.ErrNotFound)
}
