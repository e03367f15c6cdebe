package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/volunteerhub/volunteer-match-api/databases"
	"github.com/volunteerhub/volunteer-match-api/models"
)

type fakeRecordDB struct {
	aggregate func(ctx context.Context, pipeline interface{}, results interface{}) error
	find      func(ctx context.Context, filter interface{}) ([]models.VolunteeringRecord, error)
}

func (f *fakeRecordDB) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.VolunteeringRecord, error) {
	return nil, nil
}

func (f *fakeRecordDB) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.VolunteeringRecord, error) {
	if f.find != nil {
		return f.find(ctx, filter)
	}
	return nil, nil
}

func (f *fakeRecordDB) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (databases.InsertOneResultHelper, error) {
	return nil, nil
}

func (f *fakeRecordDB) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	return nil
}

func (f *fakeRecordDB) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return 0, nil
}

func (f *fakeRecordDB) Aggregate(ctx context.Context, pipeline interface{}, results interface{}) error {
	return f.aggregate(ctx, pipeline, results)
}

type userUpdate struct {
	filter bson.M
	update bson.M
}

type fakeUserDB struct {
	updates []userUpdate
}

func (f *fakeUserDB) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.User, error) {
	return nil, nil
}

func (f *fakeUserDB) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.User, error) {
	return nil, nil
}

func (f *fakeUserDB) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (databases.InsertOneResultHelper, error) {
	return nil, nil
}

func (f *fakeUserDB) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	f.updates = append(f.updates, userUpdate{filter: filter.(bson.M), update: update.(bson.M)})
	return nil
}

func (f *fakeUserDB) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return 0, nil
}

func TestRecomputeHourTotals_UpdatesEachUserIndependently(t *testing.T) {
	userA := primitive.NewObjectID()
	userB := primitive.NewObjectID()
	userC := primitive.NewObjectID()

	recordDB := &fakeRecordDB{
		aggregate: func(ctx context.Context, pipeline interface{}, results interface{}) error {
			*(results.(*[]hourTotal)) = []hourTotal{
				{UserID: userA.Hex(), TotalHours: 12.5},
				{UserID: userB.Hex(), TotalHours: 30},
				{UserID: userC.Hex(), TotalHours: 0},
			}
			return nil
		},
	}
	userDB := &fakeUserDB{}

	s := NewScheduler(recordDB, userDB, nil)
	s.recomputeHourTotals()

	assert.Len(t, userDB.updates, 3)

	wantHours := map[primitive.ObjectID]float64{userA: 12.5, userB: 30, userC: 0}
	for _, u := range userDB.updates {
		uID := u.filter["_id"].(primitive.ObjectID)
		want, ok := wantHours[uID]
		assert.True(t, ok)

		set := u.update["$set"].(bson.M)
		assert.Equal(t, want, set["user.totalVolunteerHours"])
		delete(wantHours, uID)
	}
	assert.Empty(t, wantHours)
}

func TestRecomputeHourTotals_SkipsBadUserIDs(t *testing.T) {
	userA := primitive.NewObjectID()

	recordDB := &fakeRecordDB{
		aggregate: func(ctx context.Context, pipeline interface{}, results interface{}) error {
			*(results.(*[]hourTotal)) = []hourTotal{
				{UserID: "not-an-object-id", TotalHours: 99},
				{UserID: userA.Hex(), TotalHours: 4},
			}
			return nil
		},
	}
	userDB := &fakeUserDB{}

	s := NewScheduler(recordDB, userDB, nil)
	s.recomputeHourTotals()

	assert.Len(t, userDB.updates, 1)
	assert.Equal(t, userA, userDB.updates[0].filter["_id"])
}
