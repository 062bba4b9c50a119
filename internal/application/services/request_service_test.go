package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusinsider/campus-insider/internal/application/services"
	"github.com/campusinsider/campus-insider/internal/domain/entities"
)

type memoryRequestRepo struct {
	created []*entities.LocationRequest
}

func (r *memoryRequestRepo) Create(_ context.Context, request *entities.LocationRequest) error {
	request.ID = len(r.created) + 1
	r.created = append(r.created, request)
	return nil
}

func (r *memoryRequestRepo) ListPending(context.Context) ([]entities.LocationRequest, error) {
	out := make([]entities.LocationRequest, 0, len(r.created))
	for _, req := range r.created {
		if req.Status == entities.RequestStatusPending {
			out = append(out, *req)
		}
	}
	return out, nil
}

func TestRequestService_SubmitStampsPendingStatus(t *testing.T) {
	repo := &memoryRequestRepo{}
	service := services.NewRequestService(repo)

	request := &entities.LocationRequest{
		RoomName:       "  Annex 2  ",
		LocationType:   "building",
		UniversityName: "Test U",
		CampusName:     "Main",
	}
	require.NoError(t, service.Submit(context.Background(), request))

	require.Len(t, repo.created, 1)
	assert.Equal(t, "Annex 2", repo.created[0].RoomName)
	assert.Equal(t, entities.RequestStatusPending, repo.created[0].Status)
	assert.False(t, repo.created[0].CreatedAt.IsZero())
}

func TestRequestService_SubmitValidation(t *testing.T) {
	service := services.NewRequestService(&memoryRequestRepo{})

	cases := []struct {
		name    string
		request entities.LocationRequest
	}{
		{"missing room name", entities.LocationRequest{UniversityName: "Test U", CampusName: "Main"}},
		{"missing university", entities.LocationRequest{RoomName: "Annex", CampusName: "Main"}},
		{"missing campus", entities.LocationRequest{RoomName: "Annex", UniversityName: "Test U"}},
		{"room without building", entities.LocationRequest{
			RoomName: "Room 5", LocationType: "room", UniversityName: "Test U", CampusName: "Main",
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			request := tc.request
			assert.Error(t, service.Submit(context.Background(), &request))
		})
	}
}

func TestRequestService_ListPendingReturnsOnlyPending(t *testing.T) {
	repo := &memoryRequestRepo{}
	service := services.NewRequestService(repo)

	require.NoError(t, service.Submit(context.Background(), &entities.LocationRequest{
		RoomName: "Annex", LocationType: "building", UniversityName: "Test U", CampusName: "Main",
	}))
	repo.created[0].Status = entities.RequestStatusApproved

	require.NoError(t, service.Submit(context.Background(), &entities.LocationRequest{
		RoomName: "Annex 2", LocationType: "building", UniversityName: "Test U", CampusName: "Main",
	}))

	pending, err := service.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Annex 2", pending[0].RoomName)
}
