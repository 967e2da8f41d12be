package usecase

import (
	"context"
	"fmt"

	"storefront-api/internal/catalog/domain/model"
	"storefront-api/internal/catalog/domain/repository"
	"storefront-api/internal/shared/logger"
)

// Request types for catalog operations

type ListRecordsRequest struct {
	Collection string
}

type GetRecordRequest struct {
	Collection string
	ID         string
}

type CreateRecordRequest struct {
	Collection string
	Data       model.Record
}

type UpdateRecordRequest struct {
	Collection string
	ID         string
	Patch      model.Record
}

type DeleteRecordRequest struct {
	Collection string
	ID         string
}

// CatalogUsecase exposes the uniform CRUD contract shared by every
// storefront collection.
type CatalogUsecase interface {
	ListRecords(ctx context.Context, req ListRecordsRequest) ([]model.Record, error)
	GetRecord(ctx context.Context, req GetRecordRequest) (model.Record, error)
	CreateRecord(ctx context.Context, req CreateRecordRequest) (model.Record, error)
	UpdateRecord(ctx context.Context, req UpdateRecordRequest) (model.Record, error)
	DeleteRecord(ctx context.Context, req DeleteRecordRequest) (model.Record, error)
}

type catalogUsecase struct {
	recordRepo repository.RecordRepository
	logger     logger.Logger
}

// NewCatalogUsecase creates the catalog usecase over a record repository.
func NewCatalogUsecase(recordRepo repository.RecordRepository, log logger.Logger) CatalogUsecase {
	return &catalogUsecase{
		recordRepo: recordRepo,
		logger:     log.WithComponent("catalog-usecase"),
	}
}

func (uc *catalogUsecase) ListRecords(ctx context.Context, req ListRecordsRequest) ([]model.Record, error) {
	uc.logger.Debugf("Listing records collection=%s", req.Collection)

	records, err := uc.recordRepo.ListRecords(ctx, req.Collection)
	if err != nil {
		uc.logger.Errorf("Failed to list records collection=%s: %v", req.Collection, err)
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}

func (uc *catalogUsecase) GetRecord(ctx context.Context, req GetRecordRequest) (model.Record, error) {
	uc.logger.Debugf("Getting record collection=%s id=%s", req.Collection, req.ID)

	record, err := uc.recordRepo.GetRecord(ctx, req.Collection, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return record, nil
}

func (uc *catalogUsecase) CreateRecord(ctx context.Context, req CreateRecordRequest) (model.Record, error) {
	uc.logger.Infof("Creating record collection=%s", req.Collection)

	record, err := uc.recordRepo.CreateRecord(ctx, req.Collection, req.Data)
	if err != nil {
		uc.logger.Errorf("Failed to create record collection=%s: %v", req.Collection, err)
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	uc.logger.Infof("Record created collection=%s id=%s", req.Collection, record.ID())
	return record, nil
}

func (uc *catalogUsecase) UpdateRecord(ctx context.Context, req UpdateRecordRequest) (model.Record, error) {
	uc.logger.Infof("Updating record collection=%s id=%s", req.Collection, req.ID)

	record, err := uc.recordRepo.UpdateRecord(ctx, req.Collection, req.ID, req.Patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}
	return record, nil
}

func (uc *catalogUsecase) DeleteRecord(ctx context.Context, req DeleteRecordRequest) (model.Record, error) {
	uc.logger.Infof("Deleting record collection=%s id=%s", req.Collection, req.ID)

	record, err := uc.recordRepo.DeleteRecord(ctx, req.Collection, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete record: %w", err)
	}
	return record, nil
}
