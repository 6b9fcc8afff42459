package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/adspro/dashboard-backend-go/internal/pkg/backend"
	"github.com/adspro/dashboard-backend-go/internal/pkg/session"
)

// GetSession returns the session the request is running under
func GetSession(ctx context.Context) (*session.Session, error) {
	sess, ok := session.FromContext(ctx)
	if !ok {
		return nil, backend.ErrNoSession
	}
	return sess, nil
}

// mapNotFound turns a backend 404 into the domain's not-found error
func mapNotFound(err error, notFound error, id string) error {
	if backend.IsStatus(err, http.StatusNotFound) {
		return fmt.Errorf("%w: %s", notFound, id)
	}
	return err
}

func itemPath(collection, id string) string {
	return collection + "/" + url.PathEscape(id)
}
