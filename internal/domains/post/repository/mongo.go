package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blog-backend/internal/domains/post/model"
)

type mongoPostRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) PostRepository {
	return &mongoPostRepository{coll: coll}
}

// isDuplicateKeyError nhận diện vi phạm unique index qua error code 11000
// của driver (WriteException, BulkWriteException, CommandError).
func isDuplicateKeyError(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, model.NewInvalidIDError(id)
	}
	return oid, nil
}

// =====================================================
// LIST
// =====================================================

func (r *mongoPostRepository) List(ctx context.Context, limit, skip int64) ([]*model.Post, error) {
	opts := options.Find().SetLimit(limit).SetSkip(skip)

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, model.NewQueryError(err)
	}
	defer cursor.Close(ctx)

	posts := make([]*model.Post, 0, limit)
	for cursor.Next(ctx) {
		var p model.Post
		if err := cursor.Decode(&p); err != nil {
			return nil, model.NewSerializationError(err)
		}
		posts = append(posts, &p)
	}
	if err := cursor.Err(); err != nil {
		return nil, model.NewQueryError(err)
	}

	return posts, nil
}

// =====================================================
// CREATE
// =====================================================

func (r *mongoPostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	res, err := r.coll.InsertOne(ctx, post)
	if err != nil {
		if isDuplicateKeyError(err) {
			return nil, model.NewDuplicateTitleError(err)
		}
		return nil, model.NewQueryError(err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, model.NewSerializationError(fmt.Errorf("unexpected inserted id type %T", res.InsertedID))
	}

	return r.findByObjectID(ctx, oid)
}

// =====================================================
// READ
// =====================================================

func (r *mongoPostRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return r.findByObjectID(ctx, oid)
}

func (r *mongoPostRepository) findByObjectID(ctx context.Context, oid primitive.ObjectID) (*model.Post, error) {
	return decodeSingle(r.coll.FindOne(ctx, bson.M{"_id": oid}), oid.Hex())
}

// decodeSingle tách lỗi query (Err) khỏi lỗi decode
func decodeSingle(res *mongo.SingleResult, id string) (*model.Post, error) {
	if err := res.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.NewNotFoundError(id)
		}
		if isDuplicateKeyError(err) {
			return nil, model.NewDuplicateTitleError(err)
		}
		return nil, model.NewQueryError(err)
	}

	var p model.Post
	if err := res.Decode(&p); err != nil {
		return nil, model.NewSerializationError(err)
	}
	return &p, nil
}

// =====================================================
// UPDATE
// =====================================================

func (r *mongoPostRepository) Update(ctx context.Context, id string, req *model.UpdatePostRequest, now time.Time) (*model.Post, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": req.SetDocument(now)}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	return decodeSingle(r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts), id)
}

// =====================================================
// DELETE
// =====================================================

func (r *mongoPostRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return model.NewQueryError(err)
	}
	if res.DeletedCount == 0 {
		return model.NewNotFoundError(id)
	}
	return nil
}
