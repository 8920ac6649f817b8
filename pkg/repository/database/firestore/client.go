package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/donbr/raven/pkg/domain/interfaces"
	"github.com/donbr/raven/pkg/domain/model/workflow"
	"github.com/donbr/raven/pkg/domain/types"
	"github.com/donbr/raven/pkg/domain/types/apperr"
)

const (
	// Collection names
	collectionRuns = "workflow_runs"
)

// Client is a Firestore implementation of RunRepository
type Client struct {
	client     *firestore.Client
	projectID  string
	databaseID string
}

// New creates a new Firestore client using Application Default Credentials
func New(ctx context.Context, projectID, databaseID string) (*Client, error) {
	if projectID == "" {
		return nil, goerr.New("project ID is required")
	}
	if databaseID == "" {
		databaseID = "(default)"
	}

	// Create Firestore client with ADC
	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.T(apperr.ErrTagFirestore),
			goerr.TV(apperr.ProjectIDKey, projectID),
			goerr.V("database_id", databaseID))
	}

	return &Client{
		client:     client,
		projectID:  projectID,
		databaseID: databaseID,
	}, nil
}

// Close closes the Firestore client
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// PutRun stores a run record
func (c *Client) PutRun(ctx context.Context, run *workflow.Run) error {
	if run == nil {
		return goerr.New("run cannot be nil")
	}
	if !run.ID.IsValid() {
		return goerr.New("invalid run ID", goerr.TV(apperr.RunIDKey, run.ID))
	}

	_, err := c.client.Collection(collectionRuns).Doc(run.ID.String()).Set(ctx, run)
	if err != nil {
		return goerr.Wrap(err, "failed to put run",
			goerr.T(apperr.ErrTagFirestore),
			goerr.TV(apperr.RunIDKey, run.ID),
			goerr.TV(apperr.CollectionKey, collectionRuns))
	}

	return nil
}

// GetRun retrieves a run record by ID
func (c *Client) GetRun(ctx context.Context, id types.RunID) (*workflow.Run, error) {
	doc, err := c.client.Collection(collectionRuns).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(apperr.ErrRunNotFound, "run not found",
				goerr.TV(apperr.RunIDKey, id),
				goerr.V("repository", "firestore"))
		}
		return nil, goerr.Wrap(err, "failed to get run",
			goerr.T(apperr.ErrTagFirestore),
			goerr.TV(apperr.RunIDKey, id))
	}

	var run workflow.Run
	if err := doc.DataTo(&run); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal run",
			goerr.T(apperr.ErrTagFirestore),
			goerr.TV(apperr.RunIDKey, id))
	}

	return &run, nil
}

// ListRuns retrieves a paginated list of runs sorted by start time (newest first)
func (c *Client) ListRuns(ctx context.Context, offset, limit int) ([]*workflow.Run, int, error) {
	if offset < 0 {
		return nil, 0, goerr.New("offset must be non-negative", goerr.V("offset", offset))
	}
	if limit < 0 {
		return nil, 0, goerr.New("limit must be non-negative", goerr.V("limit", limit))
	}

	// First, get total count
	totalDocs, err := c.client.Collection(collectionRuns).Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, goerr.Wrap(err, "failed to get total run count",
			goerr.T(apperr.ErrTagFirestore))
	}
	totalCount := len(totalDocs)

	// If offset is beyond total count, return empty result
	if offset >= totalCount {
		return []*workflow.Run{}, totalCount, nil
	}

	// Build query with pagination
	query := c.client.Collection(collectionRuns).
		OrderBy("started_at", firestore.Desc). // Newest first
		Offset(offset)

	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var runs []*workflow.Run
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, goerr.Wrap(err, "failed to iterate runs",
				goerr.T(apperr.ErrTagFirestore))
		}

		var run workflow.Run
		if err := doc.DataTo(&run); err != nil {
			return nil, 0, goerr.Wrap(err, "failed to unmarshal run",
				goerr.T(apperr.ErrTagFirestore),
				goerr.TV(apperr.DocumentIDKey, doc.Ref.ID))
		}
		runs = append(runs, &run)
	}

	return runs, totalCount, nil
}

// Ensure Client implements RunRepository interface
var _ interfaces.RunRepository = (*Client)(nil)
