package databases

// go generate: mockery --name SkillDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/volunteerhub/volunteer-match-api/models"
)

const skillName = "skills"

// SkillDatabase contains the methods to use with the skill database
type SkillDatabase interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Skill, error)
	InsertMany(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) error
	DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error
}

type skillDatabase struct {
	db DatabaseHelper
}

// NewSkillDatabase initializes a new instance of skill database with the provided db connection
func NewSkillDatabase(db DatabaseHelper) SkillDatabase {
	return &skillDatabase{
		db: db,
	}
}

func (c *skillDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Skill, error) {
	var skills []models.Skill
	curr, err := c.db.Collection(skillName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer curr.Close(ctx)
	err = curr.All(ctx, &skills)
	if err != nil {
		return nil, err
	}
	return skills, nil
}

func (c *skillDatabase) InsertMany(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) error {
	_, err := c.db.Collection(skillName).InsertMany(ctx, documents, opts...)
	return err
}

func (c *skillDatabase) DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	_, err := c.db.Collection(skillName).DeleteMany(ctx, filter, opts...)
	return err
}
