package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anuragsoft/company-portal/internal/core/domain"
)

const (
	requestsCollection = "service_requests"
	projectsCollection = "projects"
)

// RequestRepository implements ports.RequestRepository on MongoDB.
type RequestRepository struct {
	requests *mongo.Collection
	projects *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *RequestRepository {
	return &RequestRepository{
		requests: db.Collection(requestsCollection),
		projects: db.Collection(projectsCollection),
	}
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.ServiceRequest) (*domain.ServiceRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *req
	created.ID = primitive.NewObjectID().Hex()
	if _, err := r.requests.InsertOne(ctx, &created); err != nil {
		return nil, fmt.Errorf("insert request: %w", err)
	}
	return &created, nil
}

func (r *RequestRepository) FindByID(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var req domain.ServiceRequest
	if err := r.requests.FindOne(ctx, bson.M{"_id": id}).Decode(&req); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("find request: %w", err)
	}
	return &req, nil
}

func (r *RequestRepository) List(ctx context.Context, clientID string) ([]domain.ServiceRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if clientID != "" {
		filter["client_id"] = clientID
	}

	cur, err := r.requests.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	var requests []domain.ServiceRequest
	if err := cur.All(ctx, &requests); err != nil {
		return nil, fmt.Errorf("decode requests: %w", err)
	}
	return requests, nil
}

// Approve performs the dual-write. The status flip is a conditional update on
// status=pending, which is the atomic gate: a request can only ever be
// approved once, and it carries its project id from the same write. The
// project insert follows; if it fails the request is reverted to pending so
// no reader is left with an approved request that has no project.
func (r *RequestRepository) Approve(ctx context.Context, id, adminNote string, project *domain.Project) (*domain.ServiceRequest, *domain.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *project
	created.ID = primitive.NewObjectID().Hex()
	created.ServiceRequestID = id

	res, err := r.requests.UpdateOne(ctx,
		bson.M{"_id": id, "status": string(domain.RequestPending)},
		bson.M{"$set": bson.M{
			"status":     string(domain.RequestApproved),
			"admin_note": adminNote,
			"project_id": created.ID,
		}},
	)
	if err != nil {
		return nil, nil, fmt.Errorf("approve request: %w", err)
	}
	if res.MatchedCount == 0 {
		if _, findErr := r.FindByID(ctx, id); findErr != nil {
			return nil, nil, findErr
		}
		return nil, nil, domain.ErrRequestClosed
	}

	if _, err := r.projects.InsertOne(ctx, &created); err != nil {
		r.revertApproval(ctx, id)
		return nil, nil, fmt.Errorf("approve request: insert project: %w", err)
	}

	approved, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return approved, &created, nil
}

// revertApproval is the compensating step for a failed project insert.
func (r *RequestRepository) revertApproval(ctx context.Context, id string) {
	_, _ = r.requests.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$set":   bson.M{"status": string(domain.RequestPending)},
			"$unset": bson.M{"admin_note": "", "project_id": ""},
		},
	)
}

func (r *RequestRepository) Reject(ctx context.Context, id, adminNote string) (*domain.ServiceRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.requests.UpdateOne(ctx,
		bson.M{"_id": id, "status": string(domain.RequestPending)},
		bson.M{"$set": bson.M{
			"status":     string(domain.RequestRejected),
			"admin_note": adminNote,
		}},
	)
	if err != nil {
		return nil, fmt.Errorf("reject request: %w", err)
	}
	if res.MatchedCount == 0 {
		if _, findErr := r.FindByID(ctx, id); findErr != nil {
			return nil, findErr
		}
		return nil, domain.ErrRequestClosed
	}

	return r.FindByID(ctx, id)
}

func (r *RequestRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.requests.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepository) CountByStatus(ctx context.Context, status domain.RequestStatus) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.requests.CountDocuments(ctx, bson.M{"status": string(status)})
	if err != nil {
		return 0, fmt.Errorf("count requests: %w", err)
	}
	return n, nil
}
