package crm

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Entity-set CRUD, proxied to the OData backend
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, input DetailInput) (DetailOutput, error)
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, input DeleteInput) error
}
