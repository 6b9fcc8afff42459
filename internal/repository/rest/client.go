package rest

import (
	"context"
	"fmt"

	"github.com/adspro/dashboard-backend-go/internal/domain/client"
	"github.com/adspro/dashboard-backend-go/internal/pkg/backend"
)

const clientsPath = "/clients"

type clientRepositoryImpl struct {
	client *backend.Client
}

func NewClientRepository(c *backend.Client) client.ClientRepository {
	return &clientRepositoryImpl{client: c}
}

func (r *clientRepositoryImpl) List(ctx context.Context) ([]client.Client, error) {
	sess, err := GetSession(ctx)
	if err != nil {
		return nil, err
	}

	var list []client.Client
	if err := r.client.Get(ctx, sess, clientsPath, nil, &list); err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return list, nil
}

func (r *clientRepositoryImpl) Create(ctx context.Context, req client.SaveClientRequest) (client.Client, error) {
	sess, err := GetSession(ctx)
	if err != nil {
		return client.Client{}, err
	}

	var created client.Client
	if err := r.client.Post(ctx, sess, clientsPath, req, &created); err != nil {
		return client.Client{}, fmt.Errorf("failed to create client: %w", err)
	}
	return created, nil
}

func (r *clientRepositoryImpl) Update(ctx context.Context, req client.SaveClientRequest) (client.Client, error) {
	sess, err := GetSession(ctx)
	if err != nil {
		return client.Client{}, err
	}

	var updated client.Client
	if err := r.client.Patch(ctx, sess, itemPath(clientsPath, req.ID), req, &updated); err != nil {
		return client.Client{}, fmt.Errorf("failed to update client %s: %w", req.ID, mapNotFound(err, client.ErrClientNotFound, req.ID))
	}
	return updated, nil
}

func (r *clientRepositoryImpl) Delete(ctx context.Context, id string) error {
	sess, err := GetSession(ctx)
	if err != nil {
		return err
	}

	if err := r.client.Delete(ctx, sess, itemPath(clientsPath, id), nil); err != nil {
		return fmt.Errorf("failed to delete client %s: %w", id, mapNotFound(err, client.ErrClientNotFound, id))
	}
	return nil
}
