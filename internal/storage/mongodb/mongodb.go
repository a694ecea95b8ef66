// Package mongodb implements the interaction and consent stores on MongoDB.
// Interaction single use is enforced with FindOneAndDelete; expired states
// are filtered on read since expires_at is stored as a unix timestamp, not
// a BSON date a TTL monitor could act on.
package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rafaelq/go-authz/pkg/authz"
)

// Setup creates the indexes the managers depend on.
func Setup(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection("interactions").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "correlation_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = database.Collection("consents").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "sub", Value: 1}, {Key: "client_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

type InteractionManager struct {
	Collection *mongo.Collection
}

func NewInteractionManager(database *mongo.Database) InteractionManager {
	return InteractionManager{
		Collection: database.Collection("interactions"),
	}
}

func (m InteractionManager) Save(ctx context.Context, state *authz.InteractionState) error {
	shouldUpsert := true
	filter := bson.D{{Key: "_id", Value: state.ID}}
	_, err := m.Collection.ReplaceOne(ctx, filter, state, &options.ReplaceOptions{Upsert: &shouldUpsert})
	return err
}

func (m InteractionManager) Consume(ctx context.Context, correlationID string) (*authz.InteractionState, error) {
	filter := bson.D{{Key: "correlation_id", Value: correlationID}}
	result := m.Collection.FindOneAndDelete(ctx, filter)
	if errors.Is(result.Err(), mongo.ErrNoDocuments) {
		return nil, authz.ErrNotFound
	}
	if result.Err() != nil {
		return nil, result.Err()
	}

	var state authz.InteractionState
	if err := result.Decode(&state); err != nil {
		return nil, err
	}

	if time.Now().Unix() > state.ExpiresAtUnix {
		return nil, authz.ErrNotFound
	}

	return &state, nil
}

type ConsentManager struct {
	Collection *mongo.Collection
}

func NewConsentManager(database *mongo.Database) ConsentManager {
	return ConsentManager{
		Collection: database.Collection("consents"),
	}
}

func (m ConsentManager) Save(ctx context.Context, decision *authz.ConsentDecision) error {
	shouldUpsert := true
	filter := bson.D{
		{Key: "sub", Value: decision.Subject},
		{Key: "client_id", Value: decision.ClientID},
	}
	_, err := m.Collection.ReplaceOne(ctx, filter, decision, &options.ReplaceOptions{Upsert: &shouldUpsert})
	return err
}

func (m ConsentManager) Decision(ctx context.Context, subject, clientID string) (*authz.ConsentDecision, error) {
	filter := bson.D{
		{Key: "sub", Value: subject},
		{Key: "client_id", Value: clientID},
	}
	result := m.Collection.FindOne(ctx, filter)
	if errors.Is(result.Err(), mongo.ErrNoDocuments) {
		return nil, authz.ErrNotFound
	}
	if result.Err() != nil {
		return nil, result.Err()
	}

	var decision authz.ConsentDecision
	if err := result.Decode(&decision); err != nil {
		return nil, err
	}

	return &decision, nil
}

var (
	_ authz.InteractionStore = InteractionManager{}
	_ authz.ConsentStore     = ConsentManager{}
)
