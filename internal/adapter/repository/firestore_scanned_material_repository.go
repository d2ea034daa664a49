package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"scrappix-admin/internal/domain/repository"
	"scrappix-admin/pkg/errors"
)

const scannedMaterialsCollection = "scannedMaterials"

type firestoreScannedMaterialRepository struct {
	client *firestore.Client
}

func NewFirestoreScannedMaterialRepository(client *firestore.Client) repository.ScannedMaterialRepository {
	return &firestoreScannedMaterialRepository{
		client: client,
	}
}

func (r *firestoreScannedMaterialRepository) Count(ctx context.Context) (int, error) {
	docs, err := r.client.Collection(scannedMaterialsCollection).Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count scanned materials", err)
	}
	return len(docs), nil
}
