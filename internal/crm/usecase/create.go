package usecase

import (
	"context"

	"crm-admin-gateway/internal/crm"
	"crm-admin-gateway/internal/model"
)

// Create inserts a new record into an entity set.
func (uc *implUseCase) Create(ctx context.Context, input crm.CreateInput) (crm.CreateOutput, error) {
	spec, ok := model.LookupEntitySpec(input.EntitySet)
	if !ok {
		return crm.CreateOutput{}, crm.ErrUnknownEntitySet
	}
	if len(input.Payload) == 0 {
		return crm.CreateOutput{}, crm.ErrEmptyPayload
	}

	record, err := uc.repo.CreateEntity(ctx, spec.Set, input.Payload)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateEntity: %v", err)
		return crm.CreateOutput{}, err
	}

	return crm.CreateOutput{Record: record}, nil
}
