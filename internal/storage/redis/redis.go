// Package redis implements the interaction and consent stores on Redis,
// for deployments where the authorization endpoint runs replicated and a
// suspended interaction may resume on a different instance.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rafaelq/go-authz/pkg/authz"
)

const (
	interactionKeyPrefix = "authz:interaction:"
	consentKeyPrefix     = "authz:consent:"
)

// InteractionManager stores suspended authorization state under the
// correlation ID with a TTL. Consume relies on GETDEL, so single use holds
// across replicas without extra locking.
type InteractionManager struct {
	client   *redis.Client
	lifetime time.Duration
}

func NewInteractionManager(client *redis.Client, lifetime time.Duration) *InteractionManager {
	return &InteractionManager{
		client:   client,
		lifetime: lifetime,
	}
}

func (m *InteractionManager) Save(ctx context.Context, state *authz.InteractionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("could not encode the interaction state: %w", err)
	}

	return m.client.Set(ctx, interactionKeyPrefix+state.CorrelationID, data, m.lifetime).Err()
}

func (m *InteractionManager) Consume(ctx context.Context, correlationID string) (*authz.InteractionState, error) {
	data, err := m.client.GetDel(ctx, interactionKeyPrefix+correlationID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, authz.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var state authz.InteractionState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("could not decode the interaction state: %w", err)
	}

	return &state, nil
}

type ConsentManager struct {
	client *redis.Client
}

func NewConsentManager(client *redis.Client) *ConsentManager {
	return &ConsentManager{client: client}
}

func (m *ConsentManager) Save(ctx context.Context, decision *authz.ConsentDecision) error {
	data, err := json.Marshal(decision)
	if err != nil {
		return fmt.Errorf("could not encode the consent decision: %w", err)
	}

	key := consentKeyPrefix + decision.Subject + ":" + decision.ClientID
	return m.client.Set(ctx, key, data, 0).Err()
}

func (m *ConsentManager) Decision(ctx context.Context, subject, clientID string) (*authz.ConsentDecision, error) {
	data, err := m.client.Get(ctx, consentKeyPrefix+subject+":"+clientID).Result()
	if errors.Is(err, redis.Nil) {
		return nil, authz.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var decision authz.ConsentDecision
	if err := json.Unmarshal([]byte(data), &decision); err != nil {
		return nil, fmt.Errorf("could not decode the consent decision: %w", err)
	}

	return &decision, nil
}

var (
	_ authz.InteractionStore = &InteractionManager{}
	_ authz.ConsentStore     = &ConsentManager{}
)
