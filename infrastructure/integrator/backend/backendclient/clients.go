package backendclient

import (
	"context"
	"errors"
	"path"

	backenddomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/backend/domain"
)

const clientByDNIPath = "/clientes/dni"

func (c *BackendClient) GetClientByDNI(ctx context.Context, dni string) (*backenddomain.Client, error) {
	var client backenddomain.Client

	err := c.get(ctx, "cliente", path.Join(clientByDNIPath, dni), &client)
	if err != nil {
		var fetchErr *backenddomain.FetchError
		if errors.As(err, &fetchErr) && fetchErr.IsNotFound() {
			return nil, nil
		}
		return nil, err
	}

	return &client, nil
}
