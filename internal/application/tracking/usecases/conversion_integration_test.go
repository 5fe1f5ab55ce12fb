package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fixflow/internal/application/tracking/services"
	"fixflow/internal/domain/ticket"
	"fixflow/internal/domain/tracking"
	"fixflow/internal/infrastructure/persistence/models"
	"fixflow/internal/infrastructure/repository"
	"fixflow/internal/shared/db"
	"fixflow/internal/shared/logger"
)

type testEnv struct {
	tickets    *repository.TicketRepository
	workOrders *repository.WorkOrderRepository
	quotes     *repository.QuoteRepository
	txManager  *db.TransactionManager
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = gdb.AutoMigrate(
		&models.RepairTicketModel{},
		&models.WarrantyTicketModel{},
		&models.WorkOrderModel{},
		&models.WarrantyWorkOrderModel{},
		&models.QuoteModel{},
	)
	require.NoError(t, err)

	return &testEnv{
		tickets:    repository.NewTicketRepository(gdb),
		workOrders: repository.NewWorkOrderRepository(gdb),
		quotes:     repository.NewQuoteRepository(gdb),
		txManager:  db.NewTransactionManager(gdb),
	}
}

func TestCreateAndConvertTicketFlow(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	log := logger.NewLogger()

	create := NewCreateTicketUseCase(env.tickets, env.txManager, log)
	created, err := create.Execute(ctx, CreateTicketCommand{
		Kind:          "repair_ticket",
		CustomerID:    7,
		CustomerEmail: "Jane@Example.com",
		Description:   "laptop will not boot <script>alert(1)</script>",
	})
	require.NoError(t, err)
	assert.Equal(t, "intake", created.Status)

	// Intake tickets cannot convert directly; move through diagnosis first.
	tk, err := env.tickets.FindByID(ctx, tracking.KindRepairTicket, created.ID)
	require.NoError(t, err)
	assert.NotContains(t, tk.Description(), "<script>")
	require.NoError(t, tk.ChangeStatus(ticket.StatusDiagnosing))
	require.NoError(t, env.tickets.Update(ctx, tk))

	convert := NewConvertTicketUseCase(env.tickets, env.workOrders, env.txManager, log)
	converted, err := convert.Execute(ctx, ConvertTicketCommand{TrackingNumber: created.Number})
	require.NoError(t, err)
	assert.Equal(t, created.Number, converted.TicketNumber)
	assert.Equal(t, "work_order", converted.WorkOrderKind)
	assert.NotZero(t, converted.WorkOrderID)

	t.Run("both lookup directions agree", func(t *testing.T) {
		resolver := services.NewConversionResolver(env.tickets, env.workOrders)
		lookup := NewPublicLookupUseCase(env.tickets, env.workOrders, env.quotes, resolver, log)

		fromTicket, err := lookup.Execute(ctx, PublicLookupQuery{
			TrackingNumber: converted.TicketNumber,
			Email:          "jane@example.com",
		})
		require.NoError(t, err)
		require.NotNil(t, fromTicket.Related)
		assert.Equal(t, converted.WorkOrderNumber, fromTicket.Related.Number)

		fromOrder, err := lookup.Execute(ctx, PublicLookupQuery{
			TrackingNumber: converted.WorkOrderNumber,
			Email:          "jane@example.com",
		})
		require.NoError(t, err)
		require.NotNil(t, fromOrder.Related)
		assert.Equal(t, converted.TicketNumber, fromOrder.Related.Number)
	})

	t.Run("second conversion is rejected", func(t *testing.T) {
		_, err := convert.Execute(ctx, ConvertTicketCommand{TrackingNumber: created.Number})
		require.Error(t, err)
	})
}

func TestConvertWarrantyTicketTargetsWarrantyWorkOrder(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	log := logger.NewLogger()

	create := NewCreateTicketUseCase(env.tickets, env.txManager, log)
	created, err := create.Execute(ctx, CreateTicketCommand{
		Kind:          "warranty_ticket",
		CustomerID:    4,
		CustomerEmail: "kim@example.com",
		Description:   "charger stopped working",
	})
	require.NoError(t, err)

	tk, err := env.tickets.FindByID(ctx, tracking.KindWarrantyTicket, created.ID)
	require.NoError(t, err)
	require.NoError(t, tk.ChangeStatus(ticket.StatusUnderReview))
	require.NoError(t, tk.ChangeStatus(ticket.StatusApproved))
	require.NoError(t, env.tickets.Update(ctx, tk))

	convert := NewConvertTicketUseCase(env.tickets, env.workOrders, env.txManager, log)
	converted, err := convert.Execute(ctx, ConvertTicketCommand{TrackingNumber: created.Number})
	require.NoError(t, err)
	assert.Equal(t, "warranty_work_order", converted.WorkOrderKind)

	reloaded, err := env.tickets.FindByID(ctx, tracking.KindWarrantyTicket, created.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.ConvertedToWarrantyWorkOrderID())
	assert.Nil(t, reloaded.ConvertedToWorkOrderID())
}

func TestCreateTicketSequencesPerYear(t *testing.T) {
	env := setupEnv(t)
	ctx := context.Background()
	log := logger.NewLogger()

	create := NewCreateTicketUseCase(env.tickets, env.txManager, log)
	year := tracking.CurrentYear()

	for i := 1; i <= 3; i++ {
		created, err := create.Execute(ctx, CreateTicketCommand{
			Kind:          "repair_ticket",
			CustomerID:    1,
			CustomerEmail: "jane@example.com",
			Description:   "intake item",
		})
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("TK-%d/%02d", i, year), created.Number)
	}
}
