package usecase

import (
	"context"
	"errors"

	"crm-admin-gateway/internal/crm"
	repo "crm-admin-gateway/internal/crm/repository"
	"crm-admin-gateway/internal/model"
)

// Detail returns a single record by its key.
func (uc *implUseCase) Detail(ctx context.Context, input crm.DetailInput) (crm.DetailOutput, error) {
	spec, ok := model.LookupEntitySpec(input.EntitySet)
	if !ok {
		return crm.DetailOutput{}, crm.ErrUnknownEntitySet
	}

	record, err := uc.repo.GetEntity(ctx, spec.Set, input.ID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return crm.DetailOutput{}, crm.ErrRecordNotFound
		}
		uc.l.Errorf(ctx, "uc.Detail GetEntity: %v", err)
		return crm.DetailOutput{}, err
	}

	return crm.DetailOutput{Record: record}, nil
}

// Update patches a record (partial update).
func (uc *implUseCase) Update(ctx context.Context, input crm.UpdateInput) (crm.UpdateOutput, error) {
	spec, ok := model.LookupEntitySpec(input.EntitySet)
	if !ok {
		return crm.UpdateOutput{}, crm.ErrUnknownEntitySet
	}
	if len(input.Payload) == 0 {
		return crm.UpdateOutput{}, crm.ErrEmptyPayload
	}

	record, err := uc.repo.UpdateEntity(ctx, spec.Set, input.ID, input.Payload)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return crm.UpdateOutput{}, crm.ErrRecordNotFound
		}
		uc.l.Errorf(ctx, "uc.Update UpdateEntity: %v", err)
		return crm.UpdateOutput{}, err
	}

	return crm.UpdateOutput{Record: record}, nil
}

// Delete permanently removes a record.
func (uc *implUseCase) Delete(ctx context.Context, input crm.DeleteInput) error {
	spec, ok := model.LookupEntitySpec(input.EntitySet)
	if !ok {
		return crm.ErrUnknownEntitySet
	}

	if err := uc.repo.DeleteEntity(ctx, spec.Set, input.ID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return crm.ErrRecordNotFound
		}
		uc.l.Errorf(ctx, "uc.Delete DeleteEntity: %v", err)
		return err
	}
	return nil
}
