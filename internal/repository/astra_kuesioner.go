package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/freelinkd/kuesioner-api/internal/model"
)

// Astra keeps the original deployment's collection names.
const (
	astraFormCollection = "form"
	astraUserCollection = "user"
)

type astraKuesionerRepo struct {
	client *AstraClient
}

// NewAstraKuesionerRepo stores submissions in the Astra "form" collection.
// Document ids are client-generated UUIDs; the Data API echoes them back in
// insertedIds.
func NewAstraKuesionerRepo(client *AstraClient) KuesionerRepository {
	return &astraKuesionerRepo{client: client}
}

func (r *astraKuesionerRepo) Insert(ctx context.Context, k *model.Kuesioner) (string, error) {
	doc, err := toDocument(k)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	doc["_id"] = id

	envelope, err := r.client.command(ctx, astraFormCollection, map[string]interface{}{
		"insertOne": map[string]interface{}{"document": doc},
	})
	if err != nil {
		return "", err
	}
	if envelope.Status != nil && len(envelope.Status.InsertedIDs) > 0 {
		return envelope.Status.InsertedIDs[0], nil
	}
	return id, nil
}

// FindAll pages through the collection newest-first. The Data API caps a
// find at 20 documents per page, so the full set is assembled with repeated
// skip/limit fetches.
func (r *astraKuesionerRepo) FindAll(ctx context.Context) ([]model.Kuesioner, error) {
	all := make([]model.Kuesioner, 0)
	for skip := 0; ; skip += findBatchSize {
		envelope, err := r.client.command(ctx, astraFormCollection, map[string]interface{}{
			"find": map[string]interface{}{
				"filter": map[string]interface{}{},
				"sort":   map[string]interface{}{"submittedAt": -1},
				"options": map[string]interface{}{
					"limit": findBatchSize,
					"skip":  skip,
				},
			},
		})
		if err != nil {
			return nil, err
		}

		var docs []json.RawMessage
		if envelope.Data != nil {
			docs = envelope.Data.Documents
		}
		for _, raw := range docs {
			var k model.Kuesioner
			if err := json.Unmarshal(raw, &k); err != nil {
				return nil, fmt.Errorf("astra: decoding form document: %w", err)
			}
			all = append(all, k)
		}

		if len(docs) < findBatchSize {
			return all, nil
		}
	}
}

func (r *astraKuesionerRepo) Count(ctx context.Context) (int64, error) {
	envelope, err := r.client.command(ctx, astraFormCollection, map[string]interface{}{
		"countDocuments": map[string]interface{}{},
	})
	if err != nil {
		return 0, err
	}
	if envelope.Status == nil {
		return 0, fmt.Errorf("astra: countDocuments returned no status")
	}
	return envelope.Status.Count, nil
}

type astraUserRepo struct {
	client *AstraClient
}

// NewAstraUserRepo stores admin accounts in the Astra "user" collection.
func NewAstraUserRepo(client *AstraClient) UserRepository {
	return &astraUserRepo{client: client}
}

func (r *astraUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	envelope, err := r.client.command(ctx, astraUserCollection, map[string]interface{}{
		"findOne": map[string]interface{}{
			"filter": map[string]interface{}{"email": email},
		},
	})
	if err != nil {
		return nil, err
	}
	if envelope.Data == nil || len(envelope.Data.Document) == 0 || string(envelope.Data.Document) == "null" {
		return nil, nil
	}

	var user model.User
	if err := json.Unmarshal(envelope.Data.Document, &user); err != nil {
		return nil, fmt.Errorf("astra: decoding user document: %w", err)
	}
	return &user, nil
}

func (r *astraUserRepo) Insert(ctx context.Context, u *model.User) (string, error) {
	doc, err := toDocument(u)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	doc["_id"] = id

	envelope, err := r.client.command(ctx, astraUserCollection, map[string]interface{}{
		"insertOne": map[string]interface{}{"document": doc},
	})
	if err != nil {
		return "", err
	}
	if envelope.Status != nil && len(envelope.Status.InsertedIDs) > 0 {
		return envelope.Status.InsertedIDs[0], nil
	}
	return id, nil
}

// toDocument round-trips a model through JSON so the Data API sees the same
// field names the HTTP layer uses.
func toDocument(v interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
