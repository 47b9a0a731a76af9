package serviceRepo

import (
	"context"
	"fmt"
	"time"

	"servease/database"
	"servease/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo creates a new instance of ServiceRepository using MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	coll := database.DB().Collection("services")
	repo := &MongoServiceRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoServiceRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "is_active", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a service by its unique ID. Returns nil when absent.
func (r *MongoServiceRepo) GetByID(id string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var svc models.Service
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &svc, nil
}

// GetActiveByCategory retrieves active services in a category, up to limit.
func (r *MongoServiceRepo) GetActiveByCategory(category string, limit int64) ([]models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.coll.Find(ctx, bson.M{"category": category, "is_active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services for category %s: %w", category, err)
	}
	defer cursor.Close(ctx)

	return decodeServices(ctx, cursor)
}

// GetAllActive retrieves all active services.
func (r *MongoServiceRepo) GetAllActive() ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"is_active": true})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve active services: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeServices(ctx, cursor)
}

// GetByIDs retrieves services whose IDs are in the given set.
func (r *MongoServiceRepo) GetByIDs(ids []string) ([]models.Service, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services by ids: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeServices(ctx, cursor)
}

// Create inserts a new service document.
func (r *MongoServiceRepo) Create(service *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	service.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, service); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// CreateMany inserts a batch of service documents.
func (r *MongoServiceRepo) CreateMany(services []models.Service) error {
	ctx, cancel := newContext(15 * time.Second)
	defer cancel()

	now := time.Now()
	docs := make([]interface{}, 0, len(services))
	for i := range services {
		if services[i].CreatedAt.IsZero() {
			services[i].CreatedAt = now
		}
		docs = append(docs, services[i])
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert services: %w", err)
	}
	return nil
}

// DeleteAll removes every service document.
func (r *MongoServiceRepo) DeleteAll() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to delete services: %w", err)
	}
	return nil
}

func decodeServices(ctx context.Context, cursor *mongo.Cursor) ([]models.Service, error) {
	var services []models.Service
	for cursor.Next(ctx) {
		var s models.Service
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		services = append(services, s)
	}
	return services, nil
}
