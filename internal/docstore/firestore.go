package docstore

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/hetulpatel/athletemon/internal/credentials"
)

// FirestoreStore writes to Cloud Firestore.
type FirestoreStore struct {
	projectID string
	client    *firestore.Client
}

// NewFirestore opens a client for projectID authenticated as sa. An empty
// projectID falls back to the key's project. When FIRESTORE_EMULATOR_HOST is
// set the client library dials the emulator and the key is not used for auth.
func NewFirestore(ctx context.Context, projectID string, sa *credentials.ServiceAccount) (*FirestoreStore, error) {
	if sa == nil {
		return nil, fmt.Errorf("service account is required")
	}
	if projectID == "" {
		projectID = sa.ProjectID
	}
	if projectID == "" {
		return nil, fmt.Errorf("project id is required")
	}
	opt := option.WithCredentialsJSON(sa.Raw)
	if os.Getenv("FIRESTORE_EMULATOR_HOST") != "" {
		opt = option.WithoutAuthentication()
	}
	client, err := firestore.NewClient(ctx, projectID, opt)
	if err != nil {
		return nil, fmt.Errorf("firestore client for %s: %w", projectID, err)
	}
	return &FirestoreStore{projectID: projectID, client: client}, nil
}

// ProjectID returns the project the client writes to.
func (s *FirestoreStore) ProjectID() string {
	return s.projectID
}

func (s *FirestoreStore) collection(path string) (*firestore.CollectionRef, error) {
	if err := validateCollection(path); err != nil {
		return nil, err
	}
	ref := s.client.Collection(path)
	if ref == nil {
		return nil, fmt.Errorf("invalid collection path %q", path)
	}
	return ref, nil
}

func (s *FirestoreStore) Set(ctx context.Context, collection, id string, doc any) error {
	if err := validateID(id); err != nil {
		return err
	}
	col, err := s.collection(collection)
	if err != nil {
		return err
	}
	if _, err := col.Doc(id).Set(ctx, doc); err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *FirestoreStore) Add(ctx context.Context, collection string, doc any) (string, error) {
	col, err := s.collection(collection)
	if err != nil {
		return "", err
	}
	ref, _, err := col.Add(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("add to %s: %w", collection, err)
	}
	return ref.ID, nil
}

// Get decodes collection/id into out. It reports false if the document does not exist.
func (s *FirestoreStore) Get(ctx context.Context, collection, id string, out any) (bool, error) {
	col, err := s.collection(collection)
	if err != nil {
		return false, err
	}
	snap, err := col.Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	if err := snap.DataTo(out); err != nil {
		return true, fmt.Errorf("decode %s/%s: %w", collection, id, err)
	}
	return true, nil
}

// Count returns the number of documents directly in collection.
func (s *FirestoreStore) Count(ctx context.Context, collection string) (int, error) {
	col, err := s.collection(collection)
	if err != nil {
		return 0, err
	}
	docs, err := col.Documents(ctx).GetAll()
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return len(docs), nil
}

func (s *FirestoreStore) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}
