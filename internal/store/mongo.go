package store

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/models"
)

// datasetDocID is the fixed _id of the single dataset document. The whole
// state is one document, mirroring the whole-file JSON layout.
const datasetDocID = "maintenance-dataset"

// ConnectMongo connects to MongoDB using the MONGO_URI environment
// variable, falling back to a local default.
func ConnectMongo(ctx context.Context) (*mongo.Client, error) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo.Connect error: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("mongo.Ping error: %w", err)
	}
	return client, nil
}

// MongoStore persists the dataset as a single upserted document in a
// MongoDB collection, keeping the same load-all/save-all contract as the
// file store.
type MongoStore struct {
	Collection *mongo.Collection
}

// NewMongoStore wraps the given collection.
func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{Collection: coll}
}

type datasetDoc struct {
	ID      string          `bson:"_id"`
	Dataset *models.Dataset `bson:"dataset"`
}

// Load retrieves the dataset document. A missing document yields an empty
// dataset.
func (s *MongoStore) Load(ctx context.Context) (*models.Dataset, error) {
	if s.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	var doc datasetDoc
	err := s.Collection.FindOne(ctx, bson.M{"_id": datasetDocID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.NewDataset(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	if doc.Dataset == nil {
		return models.NewDataset(), nil
	}
	return doc.Dataset, nil
}

// Save upserts the dataset document, replacing the previous state in full.
func (s *MongoStore) Save(ctx context.Context, data *models.Dataset) error {
	if s.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	doc := datasetDoc{ID: datasetDocID, Dataset: data}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.Collection.ReplaceOne(ctx, bson.M{"_id": datasetDocID}, doc, opts); err != nil {
		return fmt.Errorf("save dataset: %w", err)
	}
	return nil
}
