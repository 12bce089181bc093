package repository

import (
	"context"

	"interview-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questions")}
}

// CreateMany inserts the session's full question set in one call and assigns
// the generated ids back in order.
func (r *QuestionRepository) CreateMany(ctx context.Context, questions []models.Question) error {
	docs := make([]interface{}, len(questions))
	for i := range questions {
		docs[i] = questions[i]
	}
	res, err := r.Col.InsertMany(ctx, docs)
	if err != nil {
		return err
	}
	for i, insertedID := range res.InsertedIDs {
		if oid, ok := insertedID.(primitive.ObjectID); ok {
			questions[i].ID = oid.Hex()
		}
	}
	return nil
}

func (r *QuestionRepository) FindBySession(ctx context.Context, sessionID string) ([]models.Question, error) {
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cur, err := r.Col.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, cur.Err()
}

func (r *QuestionRepository) DeleteBySession(ctx context.Context, sessionID string) error {
	_, err := r.Col.DeleteMany(ctx, bson.M{"session_id": sessionID})
	return err
}
