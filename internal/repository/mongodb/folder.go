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

// MongoFolderRepository implements the FolderRepository interface
type MongoFolderRepository struct {
	coll *mongo.Collection
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(config *RepositoryConfig) repositories.FolderRepository {
	return &MongoFolderRepository{
		coll: config.DB.Collection(foldersCollection),
	}
}

type folderDoc struct {
	ID        bson.ObjectID  `bson:"_id,omitempty"`
	Name      string         `bson:"name"`
	Parent    *bson.ObjectID `bson:"parent"`
	Owner     bson.ObjectID  `bson:"owner"`
	CreatedAt time.Time      `bson:"createdAt"`
	UpdatedAt time.Time      `bson:"updatedAt"`
}

func (d *folderDoc) toModel() *models.Folder {
	return &models.Folder{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		ParentID:  hexPtr(d.Parent),
		OwnerID:   d.Owner.Hex(),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ownerFilter builds the owner-scoped filter for one folder id.
// Scoping inside the query makes a foreign id read exactly like a missing one.
func (r *MongoFolderRepository) ownerFilter(id, ownerID string) (bson.M, bool) {
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

// Create inserts a new folder
func (r *MongoFolderRepository) Create(ctx context.Context, folder *models.Folder) error {
	owner, ok := parseID(folder.OwnerID)
	if !ok {
		return fmt.Errorf("owner %s: %w", folder.OwnerID, domain.ErrNotFound)
	}
	parent, ok := parseOptionalID(folder.ParentID)
	if !ok {
		return fmt.Errorf("parent folder: %w", domain.ErrInvalidParent)
	}

	now := time.Now().UTC()
	doc := folderDoc{
		Name:      folder.Name,
		Parent:    parent,
		Owner:     owner,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("create folder: %w: %w", domain.ErrPersistence, err)
	}

	folder.ID = res.InsertedID.(bson.ObjectID).Hex()
	folder.CreatedAt = now
	folder.UpdatedAt = now
	return nil
}

// GetByID retrieves a folder owned by ownerID
func (r *MongoFolderRepository) GetByID(ctx context.Context, id, ownerID string) (*models.Folder, error) {
	filter, ok := r.ownerFilter(id, ownerID)
	if !ok {
		return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}

	var doc folderDoc
	err := r.coll.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if isNoDocuments(err) {
			return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get folder: %w: %w", domain.ErrPersistence, err)
	}

	return doc.toModel(), nil
}

// Rename updates the folder's name and returns the updated document
func (r *MongoFolderRepository) Rename(ctx context.Context, id, ownerID, name string) (*models.Folder, error) {
	filter, ok := r.ownerFilter(id, ownerID)
	if !ok {
		return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}

	update := bson.M{"$set": bson.M{"name": name, "updatedAt": time.Now().UTC()}}

	var doc folderDoc
	err := r.coll.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if isNoDocuments(err) {
			return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("rename folder: %w: %w", domain.ErrPersistence, err)
	}

	return doc.toModel(), nil
}

// Delete removes exactly the named folder
func (r *MongoFolderRepository) Delete(ctx context.Context, id, ownerID string) error {
	filter, ok := r.ownerFilter(id, ownerID)
	if !ok {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete folder: %w: %w", domain.ErrPersistence, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ListChildren lists immediate child folders, newest first.
// A nil parentID matches only root-level folders, never "any ancestor".
func (r *MongoFolderRepository) ListChildren(ctx context.Context, ownerID string, parentID *string) ([]models.Folder, error) {
	owner, ok := parseID(ownerID)
	if !ok {
		return nil, fmt.Errorf("owner %s: %w", ownerID, domain.ErrNotFound)
	}
	parent, ok := parseOptionalID(parentID)
	if !ok {
		return nil, fmt.Errorf("parent folder: %w", domain.ErrInvalidParent)
	}

	filter := bson.M{"owner": owner}
	if parent == nil {
		filter["parent"] = nil
	} else {
		filter["parent"] = *parent
	}

	cursor, err := r.coll.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w: %w", domain.ErrPersistence, err)
	}
	defer cursor.Close(ctx)

	var docs []folderDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode folders: %w: %w", domain.ErrPersistence, err)
	}

	folders := make([]models.Folder, 0, len(docs))
	for i := range docs {
		folders = append(folders, *docs[i].toModel())
	}

	return folders, nil
}
