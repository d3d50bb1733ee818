package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"storefront-backend/internal/catalog/domain"
)

const productsCollection = "products"

// firestoreRepository reads the products collection from Firestore.
type firestoreRepository struct {
	client *firestore.Client
}

func NewFirestoreRepository(client *firestore.Client) ProductRepository {
	return &firestoreRepository{client: client}
}

func (r *firestoreRepository) ListByTitle(ctx context.Context) ([]domain.Product, error) {
	iter := r.client.Collection(productsCollection).OrderBy("title", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var products []domain.Product
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list products: %w", err)
		}

		var product domain.Product
		if err := doc.DataTo(&product); err != nil {
			return nil, fmt.Errorf("failed to decode product %s: %w", doc.Ref.ID, err)
		}
		product.ID = doc.Ref.ID
		products = append(products, product)
	}
	return products, nil
}

func (r *firestoreRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	doc, err := r.client.Collection(productsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read product %s: %w", id, err)
	}

	var product domain.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, fmt.Errorf("failed to decode product %s: %w", id, err)
	}
	product.ID = doc.Ref.ID
	return &product, nil
}
