package client

import "context"

type ClientService interface {
	List(ctx context.Context) ([]ClientResponse, error)
	Create(ctx context.Context, req SaveClientRequest) (ClientResponse, error)
	Update(ctx context.Context, req SaveClientRequest) (ClientResponse, error)
	Delete(ctx context.Context, id string) error
}
