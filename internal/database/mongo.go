package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/denisAlshanov/clipgrab/internal/config"
	"github.com/denisAlshanov/clipgrab/internal/models"
)

type MongoDB struct {
	client      *mongo.Client
	database    *mongo.Database
	preferences *mongo.Collection
	history     *mongo.Collection
}

// historyDocument stores the entry id as a string so documents stay readable
// in the mongo shell.
type historyDocument struct {
	ID           string              `bson:"_id"`
	ClientID     string              `bson:"client_id"`
	Operation    models.Operation    `bson:"operation"`
	URL          string              `bson:"url"`
	VideoID      string              `bson:"video_id,omitempty"`
	Quality      string              `bson:"quality,omitempty"`
	DownloadType models.DownloadType `bson:"download_type,omitempty"`
	Success      bool                `bson:"success"`
	Error        string              `bson:"error,omitempty"`
	CreatedAt    time.Time           `bson:"created_at"`
}

func NewMongoDB(cfg *config.MongoDBConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.URI)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := client.Database(cfg.Database)

	mongodb := &MongoDB{
		client:      client,
		database:    db,
		preferences: db.Collection("preferences"),
		history:     db.Collection("history"),
	}

	// Create indexes
	if err := mongodb.createIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to create indexes: %w", err)
	}

	return mongodb, nil
}

func (m *MongoDB) createIndexes(ctx context.Context) error {
	preferencesIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "client_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := m.preferences.Indexes().CreateMany(ctx, preferencesIndexes); err != nil {
		return fmt.Errorf("failed to create preferences indexes: %w", err)
	}

	historyIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "client_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	}

	if _, err := m.history.Indexes().CreateMany(ctx, historyIndexes); err != nil {
		return fmt.Errorf("failed to create history indexes: %w", err)
	}

	return nil
}

func (m *MongoDB) GetPreferences(ctx context.Context, clientID string) (*models.Preferences, error) {
	var prefs models.Preferences
	err := m.preferences.FindOne(ctx, bson.M{"client_id": clientID}).Decode(&prefs)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (m *MongoDB) SavePreferences(ctx context.Context, prefs *models.Preferences) error {
	prefs.UpdatedAt = time.Now()

	_, err := m.preferences.UpdateOne(ctx,
		bson.M{"client_id": prefs.ClientID},
		bson.M{"$set": bson.M{
			"theme":      prefs.Theme,
			"locale":     prefs.Locale,
			"updated_at": prefs.UpdatedAt,
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (m *MongoDB) AddHistory(ctx context.Context, entry *models.HistoryEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err := m.history.InsertOne(ctx, historyDocument{
		ID:           entry.ID.String(),
		ClientID:     entry.ClientID,
		Operation:    entry.Operation,
		URL:          entry.URL,
		VideoID:      entry.VideoID,
		Quality:      entry.Quality,
		DownloadType: entry.DownloadType,
		Success:      entry.Success,
		Error:        entry.Error,
		CreatedAt:    entry.CreatedAt,
	})
	return err
}

func (m *MongoDB) ListHistory(ctx context.Context, opts models.PaginationOptions) ([]models.HistoryEntry, int, error) {
	opts = normalizePagination(opts)

	filter := bson.M{}
	if opts.ClientID != "" {
		filter["client_id"] = opts.ClientID
	}

	total, err := m.history.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((opts.Page - 1) * opts.Limit)).
		SetLimit(int64(opts.Limit))

	cursor, err := m.history.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	entries := []models.HistoryEntry{}
	for cursor.Next(ctx) {
		var doc historyDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, err
		}

		id, err := uuid.Parse(doc.ID)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid history id %q: %w", doc.ID, err)
		}

		entries = append(entries, models.HistoryEntry{
			ID:           id,
			ClientID:     doc.ClientID,
			Operation:    doc.Operation,
			URL:          doc.URL,
			VideoID:      doc.VideoID,
			Quality:      doc.Quality,
			DownloadType: doc.DownloadType,
			Success:      doc.Success,
			Error:        doc.Error,
			CreatedAt:    doc.CreatedAt,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, err
	}

	return entries, int(total), nil
}

func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *MongoDB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return m.client.Ping(ctx, readpref.Primary())
}
