package repository

import (
	"context"

	"interview-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type EvaluationRepository struct {
	Col *mongo.Collection
}

func NewEvaluationRepository(db *mongo.Database) *EvaluationRepository {
	return &EvaluationRepository{Col: db.Collection("evaluations")}
}

func (r *EvaluationRepository) Create(ctx context.Context, evaluation *models.Evaluation) error {
	res, err := r.Col.InsertOne(ctx, evaluation)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		evaluation.ID = oid.Hex()
	}
	return nil
}

func (r *EvaluationRepository) FindBySession(ctx context.Context, sessionID string) ([]models.Evaluation, error) {
	cur, err := r.Col.Find(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var evaluations []models.Evaluation
	for cur.Next(ctx) {
		var e models.Evaluation
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		evaluations = append(evaluations, e)
	}
	return evaluations, cur.Err()
}

// DeleteBySession clears evaluations left behind by a failed batch so a
// retried evaluation starts clean.
func (r *EvaluationRepository) DeleteBySession(ctx context.Context, sessionID string) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"session_id": sessionID})
	return err
}
