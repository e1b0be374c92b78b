package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/freelinkd/kuesioner-api/internal/model"
)

const kuesionerCollection = "kuesioner"

type mongoKuesionerRepo struct {
	client *MongoClient
}

// NewMongoKuesionerRepo stores submissions in the "kuesioner" collection.
func NewMongoKuesionerRepo(client *MongoClient) KuesionerRepository {
	return &mongoKuesionerRepo{client: client}
}

func (r *mongoKuesionerRepo) Insert(ctx context.Context, k *model.Kuesioner) (string, error) {
	db, err := r.client.Database(ctx)
	if err != nil {
		return "", err
	}

	result, err := db.Collection(kuesionerCollection).InsertOne(ctx, k)
	if err != nil {
		r.client.Invalidate()
		return "", err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return "", nil
}

// FindAll walks the collection newest-first in fixed-size batches rather
// than a single unbounded query, so the result is complete even against a
// store that caps page sizes.
func (r *mongoKuesionerRepo) FindAll(ctx context.Context) ([]model.Kuesioner, error) {
	db, err := r.client.Database(ctx)
	if err != nil {
		return nil, err
	}
	coll := db.Collection(kuesionerCollection)

	all := make([]model.Kuesioner, 0)
	for skip := int64(0); ; skip += findBatchSize {
		opts := options.Find().
			SetSort(bson.D{{Key: "submittedAt", Value: -1}}).
			SetSkip(skip).
			SetLimit(findBatchSize)

		cursor, err := coll.Find(ctx, bson.M{}, opts)
		if err != nil {
			r.client.Invalidate()
			return nil, err
		}

		var batch []model.Kuesioner
		if err := cursor.All(ctx, &batch); err != nil {
			r.client.Invalidate()
			return nil, err
		}

		all = append(all, batch...)
		if len(batch) < findBatchSize {
			return all, nil
		}
	}
}

func (r *mongoKuesionerRepo) Count(ctx context.Context) (int64, error) {
	db, err := r.client.Database(ctx)
	if err != nil {
		return 0, err
	}

	count, err := db.Collection(kuesionerCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		r.client.Invalidate()
		return 0, err
	}
	return count, nil
}

type mongoUserRepo struct {
	client *MongoClient
}

// NewMongoUserRepo stores admin accounts in the "users" collection.
func NewMongoUserRepo(client *MongoClient) UserRepository {
	return &mongoUserRepo{client: client}
}

func (r *mongoUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	db, err := r.client.Database(ctx)
	if err != nil {
		return nil, err
	}

	var user model.User
	err = db.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.client.Invalidate()
		return nil, err
	}
	return &user, nil
}

func (r *mongoUserRepo) Insert(ctx context.Context, u *model.User) (string, error) {
	db, err := r.client.Database(ctx)
	if err != nil {
		return "", err
	}

	result, err := db.Collection("users").InsertOne(ctx, u)
	if err != nil {
		r.client.Invalidate()
		return "", err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return "", nil
}
