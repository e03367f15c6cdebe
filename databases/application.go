package databases

// go generate: mockery --name ApplicationDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/volunteerhub/volunteer-match-api/models"
)

const applicationName = "applications"

// ApplicationDatabase contains the methods to use with the application database
type ApplicationDatabase interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Application, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Application, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(context.Context, interface{}, interface{}, ...*options.UpdateOptions) error
	CountDocuments(context.Context, interface{}, ...*options.CountOptions) (int64, error)
}

type applicationDatabase struct {
	db DatabaseHelper
}

// NewApplicationDatabase initializes a new instance of application database with the provided db connection
func NewApplicationDatabase(db DatabaseHelper) ApplicationDatabase {
	return &applicationDatabase{
		db: db,
	}
}

func (c *applicationDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Application, error) {
	application := &models.Application{}
	err := c.db.Collection(applicationName).FindOne(ctx, filter, opts...).Decode(&application)
	if err != nil {
		return nil, err
	}
	return application, nil
}

func (c *applicationDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Application, error) {
	var applications []models.Application
	curr, err := c.db.Collection(applicationName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer curr.Close(ctx)
	err = curr.All(ctx, &applications)
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (c *applicationDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res, err := c.db.Collection(applicationName).InsertOne(ctx, document, opts...)
	return res, err
}

func (c *applicationDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	_, err := c.db.Collection(applicationName).UpdateOne(ctx, filter, update, opts...)
	return err
}

func (c *applicationDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return c.db.Collection(applicationName).CountDocuments(ctx, filter, opts...)
}
