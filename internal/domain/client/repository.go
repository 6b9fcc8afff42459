package client

import "context"

type ClientRepository interface {
	List(ctx context.Context) ([]Client, error)
	Create(ctx context.Context, req SaveClientRequest) (Client, error)
	Update(ctx context.Context, req SaveClientRequest) (Client, error)
	Delete(ctx context.Context, id string) error
}
