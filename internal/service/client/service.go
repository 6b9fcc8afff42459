package client

import (
	"context"

	"github.com/adspro/dashboard-backend-go/internal/domain/client"
	"github.com/adspro/dashboard-backend-go/internal/pkg/validator"
)

type ClientServiceImpl struct {
	clientRepo client.ClientRepository
}

func NewClientService(clientRepo client.ClientRepository) client.ClientService {
	return &ClientServiceImpl{clientRepo: clientRepo}
}

func (s *ClientServiceImpl) List(ctx context.Context) ([]client.ClientResponse, error) {
	list, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return client.ToResponses(list), nil
}

func (s *ClientServiceImpl) Create(ctx context.Context, req client.SaveClientRequest) (client.ClientResponse, error) {
	req.ID = ""
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	created, err := s.clientRepo.Create(ctx, req)
	if err != nil {
		return client.ClientResponse{}, err
	}
	return client.ClientResponse(created), nil
}

func (s *ClientServiceImpl) Update(ctx context.Context, req client.SaveClientRequest) (client.ClientResponse, error) {
	if req.ID == "" {
		return client.ClientResponse{}, client.ErrInvalidClientID
	}
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	updated, err := s.clientRepo.Update(ctx, req)
	if err != nil {
		return client.ClientResponse{}, err
	}
	return client.ClientResponse(updated), nil
}

func (s *ClientServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidObjectID(id) {
		return client.ErrInvalidClientID
	}
	return s.clientRepo.Delete(ctx, id)
}
