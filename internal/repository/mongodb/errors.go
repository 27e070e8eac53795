package mongodb

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// isNoDocuments checks if error is a "no documents" error
func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

// isDuplicateKey checks if error is a unique index violation
func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// parseID converts a hex string id to an ObjectID. A malformed id cannot
// name any stored document, so callers map the failure to not-found.
func parseID(id string) (bson.ObjectID, bool) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, false
	}
	return oid, true
}

// parseOptionalID converts an optional hex id; nil stays nil (root level)
func parseOptionalID(id *string) (*bson.ObjectID, bool) {
	if id == nil {
		return nil, true
	}
	oid, ok := parseID(*id)
	if !ok {
		return nil, false
	}
	return &oid, true
}

func hexPtr(id *bson.ObjectID) *string {
	if id == nil {
		return nil
	}
	s := id.Hex()
	return &s
}
