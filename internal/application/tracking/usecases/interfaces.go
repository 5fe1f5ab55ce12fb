package usecases

import "context"

type PublicLookupExecutor interface {
	Execute(ctx context.Context, query PublicLookupQuery) (*PublicLookupResult, error)
}

type GetDashboardExecutor interface {
	Execute(ctx context.Context, query GetDashboardQuery) (*GetDashboardResult, error)
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type ConvertTicketExecutor interface {
	Execute(ctx context.Context, cmd ConvertTicketCommand) (*ConvertTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*GetTicketResult, error)
}
