package services

import (
	"context"

	"github.com/sbilibin2017/lightbnb/internal/logger"
	"github.com/sbilibin2017/lightbnb/internal/models"
)

//go:generate mockgen -source=properties.go -destination=properties_mock.go -package=services

// PropertyReader searches property listings.
type PropertyReader interface {
	Search(ctx context.Context, filters models.PropertyFilters, limit int) ([]models.PropertyListing, error)
}

// PropertyWriter stores property listings.
type PropertyWriter interface {
	Save(ctx context.Context, property models.NewProperty) (*models.PropertyDB, error)
}

// PropertyService handles property search and creation.
type PropertyService struct {
	reader PropertyReader
	writer PropertyWriter
	events eventPublisher
}

// NewPropertyService creates a new PropertyService. kafkaWriter may be nil.
func NewPropertyService(reader PropertyReader, writer PropertyWriter, kafkaWriter KafkaWriter) *PropertyService {
	return &PropertyService{
		reader: reader,
		writer: writer,
		events: eventPublisher{writer: kafkaWriter},
	}
}

// SearchProperties returns listings matching filters, cheapest first.
func (svc *PropertyService) SearchProperties(ctx context.Context, filters models.PropertyFilters, limit int) ([]models.PropertyListing, error) {
	listings, err := svc.reader.Search(ctx, filters, limit)
	if err != nil {
		err = classify("search properties", err, nil)
		logger.Log.Errorw("failed to search properties", "filters", filters, "limit", limit, "err", err)
		return nil, err
	}
	if listings == nil {
		listings = []models.PropertyListing{}
	}
	return listings, nil
}

// AddProperty stores the property exactly as supplied and returns the stored row.
func (svc *PropertyService) AddProperty(ctx context.Context, property models.NewProperty) (*models.PropertyDB, error) {
	saved, err := svc.writer.Save(ctx, property)
	if err != nil {
		err = classify("add property", err, nil)
		logger.Log.Errorw("failed to save property", "ownerID", property.OwnerID, "title", property.Title, "err", err)
		return nil, err
	}

	svc.events.publish(ctx, models.OperationPropertyCreated, saved.ID, saved.OwnerID)

	return saved, nil
}
