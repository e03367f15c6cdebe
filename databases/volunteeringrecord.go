package databases

// go generate: mockery --name VolunteeringRecordDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/volunteerhub/volunteer-match-api/models"
)

const volunteeringRecordName = "volunteeringRecords"

// VolunteeringRecordDatabase contains the methods to use with the volunteering record database
type VolunteeringRecordDatabase interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.VolunteeringRecord, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.VolunteeringRecord, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(context.Context, interface{}, interface{}, ...*options.UpdateOptions) error
	CountDocuments(context.Context, interface{}, ...*options.CountOptions) (int64, error)
	Aggregate(ctx context.Context, pipeline interface{}, results interface{}) error
}

type volunteeringRecordDatabase struct {
	db DatabaseHelper
}

// NewVolunteeringRecordDatabase initializes a new instance of volunteering record database with the provided db connection
func NewVolunteeringRecordDatabase(db DatabaseHelper) VolunteeringRecordDatabase {
	return &volunteeringRecordDatabase{
		db: db,
	}
}

func (c *volunteeringRecordDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.VolunteeringRecord, error) {
	record := &models.VolunteeringRecord{}
	err := c.db.Collection(volunteeringRecordName).FindOne(ctx, filter, opts...).Decode(&record)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (c *volunteeringRecordDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.VolunteeringRecord, error) {
	var records []models.VolunteeringRecord
	curr, err := c.db.Collection(volunteeringRecordName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer curr.Close(ctx)
	err = curr.All(ctx, &records)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (c *volunteeringRecordDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res, err := c.db.Collection(volunteeringRecordName).InsertOne(ctx, document, opts...)
	return res, err
}

func (c *volunteeringRecordDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	_, err := c.db.Collection(volunteeringRecordName).UpdateOne(ctx, filter, update, opts...)
	return err
}

func (c *volunteeringRecordDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return c.db.Collection(volunteeringRecordName).CountDocuments(ctx, filter, opts...)
}

func (c *volunteeringRecordDatabase) Aggregate(ctx context.Context, pipeline interface{}, results interface{}) error {
	curr, err := c.db.Collection(volunteeringRecordName).Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer curr.Close(ctx)
	return curr.All(ctx, results)
}
