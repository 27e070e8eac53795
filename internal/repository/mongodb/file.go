package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"drivebox/internal/domain"
	"drivebox/internal/domain/models"
	"drivebox/internal/domain/repositories"
)

// MongoFileRepository implements the FileRepository interface
type MongoFileRepository struct {
	coll *mongo.Collection
}

// NewFileRepository creates a new file repository
func NewFileRepository(config *RepositoryConfig) repositories.FileRepository {
	return &MongoFileRepository{
		coll: config.DB.Collection(filesCollection),
	}
}

type fileDoc struct {
	ID           bson.ObjectID  `bson:"_id,omitempty"`
	Name         string         `bson:"name"`
	URL          string         `bson:"url"`
	Folder       *bson.ObjectID `bson:"folder"`
	Owner        bson.ObjectID  `bson:"owner"`
	Size         int64          `bson:"size"`
	MimeType     string         `bson:"mimeType,omitempty"`
	PublicID     string         `bson:"publicId,omitempty"`
	ResourceType string         `bson:"resourceType,omitempty"`
	Version      int            `bson:"version,omitempty"`
	CreatedAt    time.Time      `bson:"createdAt"`
}

func (d *fileDoc) toModel() *models.File {
	return &models.File{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		URL:          d.URL,
		FolderID:     hexPtr(d.Folder),
		OwnerID:      d.Owner.Hex(),
		Size:         d.Size,
		MimeType:     d.MimeType,
		PublicID:     d.PublicID,
		ResourceType: models.ResourceKind(d.ResourceType),
		Version:      d.Version,
		CreatedAt:    d.CreatedAt,
	}
}

func (r *MongoFileRepository) ownerFilter(id, ownerID string) (bson.M, bool) {
	oid, ok := parseID(id)
	if !ok {
		return nil, false
	}
	owner, ok := parseID(ownerID)
	if !ok {
		return nil, false
	}
	return bson.M{"_id": oid, "owner": owner}, true
}

// Create inserts a new file record
func (r *MongoFileRepository) Create(ctx context.Context, file *models.File) error {
	owner, ok := parseID(file.OwnerID)
	if !ok {
		return fmt.Errorf("owner %s: %w", file.OwnerID, domain.ErrNotFound)
	}
	folder, ok := parseOptionalID(file.FolderID)
	if !ok {
		return fmt.Errorf("folder: %w", domain.ErrInvalidParent)
	}

	doc := fileDoc{
		Name:         file.Name,
		URL:          file.URL,
		Folder:       folder,
		Owner:        owner,
		Size:         file.Size,
		MimeType:     file.MimeType,
		PublicID:     file.PublicID,
		ResourceType: string(file.ResourceType),
		Version:      file.Version,
		CreatedAt:    time.Now().UTC(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("create file: %w: %w", domain.ErrPersistence, err)
	}

	file.ID = res.InsertedID.(bson.ObjectID).Hex()
	file.CreatedAt = doc.CreatedAt
	return nil
}

// GetByID retrieves a file owned by ownerID
func (r *MongoFileRepository) GetByID(ctx context.Context, id, ownerID string) (*models.File, error) {
	filter, ok := r.ownerFilter(id, ownerID)
	if !ok {
		return nil, fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
	}

	var doc fileDoc
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if isNoDocuments(err) {
			return nil, fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get file: %w: %w", domain.ErrPersistence, err)
	}

	return doc.toModel(), nil
}

// Delete removes the file record
func (r *MongoFileRepository) Delete(ctx context.Context, id, ownerID string) error {
	filter, ok := r.ownerFilter(id, ownerID)
	if !ok {
		return fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
	}

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete file: %w: %w", domain.ErrPersistence, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListInFolder lists files in a folder, newest first
func (r *MongoFileRepository) ListInFolder(ctx context.Context, ownerID string, folderID *string) ([]models.File, error) {
	owner, ok := parseID(ownerID)
	if !ok {
		return nil, fmt.Errorf("owner %s: %w", ownerID, domain.ErrNotFound)
	}
	folder, ok := parseOptionalID(folderID)
	if !ok {
		return nil, fmt.Errorf("folder: %w", domain.ErrInvalidParent)
	}

	filter := bson.M{"owner": owner}
	if folder == nil {
		filter["folder"] = nil
	} else {
		filter["folder"] = *folder
	}

	cursor, err := r.coll.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list files: %w: %w", domain.ErrPersistence, err)
	}
	defer cursor.Close(ctx)

	var docs []fileDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode files: %w: %w", domain.ErrPersistence, err)
	}

	files := make([]models.File, 0, len(docs))
	for i := range docs {
		files = append(files, *docs[i].toModel())
	}

	return files, nil
}

// SetResourceType persists a lazily detected resource kind
func (r *MongoFileRepository) SetResourceType(ctx context.Context, id string, kind models.ResourceKind) error {
	oid, ok := parseID(id)
	if !ok {
		return fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
	}

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"resourceType": string(kind)}},
	)
	if err != nil {
		return fmt.Errorf("set resource type: %w: %w", domain.ErrPersistence, err)
	}

	return nil
}
