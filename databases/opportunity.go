package databases

// go generate: mockery --name OpportunityDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/volunteerhub/volunteer-match-api/models"
)

const opportunityName = "opportunities"

// OpportunityDatabase contains the methods to use with the opportunity database
type OpportunityDatabase interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Opportunity, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Opportunity, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(context.Context, interface{}, interface{}, ...*options.UpdateOptions) error
	CountDocuments(context.Context, interface{}, ...*options.CountOptions) (int64, error)
}

type opportunityDatabase struct {
	db DatabaseHelper
}

// NewOpportunityDatabase initializes a new instance of opportunity database with the provided db connection
func NewOpportunityDatabase(db DatabaseHelper) OpportunityDatabase {
	return &opportunityDatabase{
		db: db,
	}
}

func (c *opportunityDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Opportunity, error) {
	opportunity := &models.Opportunity{}
	err := c.db.Collection(opportunityName).FindOne(ctx, filter, opts...).Decode(&opportunity)
	if err != nil {
		return nil, err
	}
	return opportunity, nil
}

func (c *opportunityDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Opportunity, error) {
	var opportunities []models.Opportunity
	curr, err := c.db.Collection(opportunityName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer curr.Close(ctx)
	err = curr.All(ctx, &opportunities)
	if err != nil {
		return nil, err
	}
	return opportunities, nil
}

func (c *opportunityDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res, err := c.db.Collection(opportunityName).InsertOne(ctx, document, opts...)
	return res, err
}

func (c *opportunityDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	_, err := c.db.Collection(opportunityName).UpdateOne(ctx, filter, update, opts...)
	return err
}

func (c *opportunityDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return c.db.Collection(opportunityName).CountDocuments(ctx, filter, opts...)
}
