package repository

import (
	"context"

	"interview-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AnswerRepository struct {
	Col *mongo.Collection
}

func NewAnswerRepository(db *mongo.Database) *AnswerRepository {
	return &AnswerRepository{Col: db.Collection("answers")}
}

func (r *AnswerRepository) Create(ctx context.Context, answer *models.Answer) error {
	res, err := r.Col.InsertOne(ctx, answer)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		answer.ID = oid.Hex()
	}
	return nil
}

func (r *AnswerRepository) FindBySession(ctx context.Context, sessionID string) ([]models.Answer, error) {
	cur, err := r.Col.Find(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var answers []models.Answer
	for cur.Next(ctx) {
		var a models.Answer
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, cur.Err()
}

// ExistsForQuestion reports whether the question already has an answer in
// this session.
func (r *AnswerRepository) ExistsForQuestion(ctx context.Context, sessionID, questionID string) (bool, error) {
	count, err := r.Col.CountDocuments(ctx, bson.M{"session_id": sessionID, "question_id": questionID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
