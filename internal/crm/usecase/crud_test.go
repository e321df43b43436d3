package usecase_test

import (
	"context"
	"errors"
	"testing"

	"crm-admin-gateway/internal/crm"
	"crm-admin-gateway/internal/crm/repository"
	"crm-admin-gateway/internal/crm/usecase"
	"crm-admin-gateway/internal/model"
)

func TestDetail(t *testing.T) {
	t.Run("Not Found Maps To Domain Error", func(t *testing.T) {
		repo := &mockRepo{
			getFunc: func(set model.EntitySet, id string) (crm.Record, error) {
				return nil, repository.ErrNotFound
			},
		}
		uc := usecase.New(repo, mockLogger{})
		_, err := uc.Detail(context.Background(), crm.DetailInput{EntitySet: "Accounts", ID: "missing"})
		if !errors.Is(err, crm.ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound, got %v", err)
		}
	})

	t.Run("Found", func(t *testing.T) {
		repo := &mockRepo{
			getFunc: func(set model.EntitySet, id string) (crm.Record, error) {
				return crm.Record{"Id": id, "Name": "Initech"}, nil
			},
		}
		uc := usecase.New(repo, mockLogger{})
		out, err := uc.Detail(context.Background(), crm.DetailInput{EntitySet: "Accounts", ID: "1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Record["Name"] != "Initech" {
			t.Errorf("unexpected record: %v", out.Record)
		}
	})
}

func TestCreate(t *testing.T) {
	t.Run("Empty Payload Rejected", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, mockLogger{})
		_, err := uc.Create(context.Background(), crm.CreateInput{EntitySet: "Leads", Payload: crm.Record{}})
		if !errors.Is(err, crm.ErrEmptyPayload) {
			t.Errorf("expected ErrEmptyPayload, got %v", err)
		}
	})

	t.Run("Unknown Set Rejected Before Repository", func(t *testing.T) {
		uc := usecase.New(&mockRepo{}, mockLogger{})
		_, err := uc.Create(context.Background(), crm.CreateInput{EntitySet: "Gadgets", Payload: crm.Record{"a": 1}})
		if !errors.Is(err, crm.ErrUnknownEntitySet) {
			t.Errorf("expected ErrUnknownEntitySet, got %v", err)
		}
	})
}

func TestUpdateDelete(t *testing.T) {
	t.Run("Update Passes Set And Payload", func(t *testing.T) {
		var gotSet model.EntitySet
		repo := &mockRepo{
			updateFunc: func(set model.EntitySet, id string, payload crm.Record) (crm.Record, error) {
				gotSet = set
				payload["Id"] = id
				return payload, nil
			},
		}
		uc := usecase.New(repo, mockLogger{})
		out, err := uc.Update(context.Background(), crm.UpdateInput{
			EntitySet: "WorkflowRules",
			ID:        "wr-1",
			Payload:   crm.Record{"Name": "Escalate"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotSet != model.EntityWorkflowRules || out.Record["Id"] != "wr-1" {
			t.Errorf("unexpected update: set=%s record=%v", gotSet, out.Record)
		}
	})

	t.Run("Delete Not Found", func(t *testing.T) {
		repo := &mockRepo{
			deleteFunc: func(set model.EntitySet, id string) error {
				return repository.ErrNotFound
			},
		}
		uc := usecase.New(repo, mockLogger{})
		err := uc.Delete(context.Background(), crm.DeleteInput{EntitySet: "Issues", ID: "x"})
		if !errors.Is(err, crm.ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound, got %v", err)
		}
	})
}
