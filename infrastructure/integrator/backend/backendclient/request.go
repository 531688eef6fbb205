package backendclient

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"path"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	backenddomain "github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/backend/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// get faz um GET autenticado e decodifica o JSON em out. Qualquer falha
// volta como *backenddomain.FetchError.
func (c *BackendClient) get(ctx context.Context, resource, resourcePath string, out any) error {
	fetchErr := func(status int, err error) error {
		return &backenddomain.FetchError{Resource: resource, StatusCode: status, Err: err}
	}

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return fetchErr(0, errors.Wrap(err, "erro ao analisar a URL base"))
	}
	endpoint.Path = path.Join(endpoint.Path, resourcePath)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return fetchErr(0, errors.Wrap(err, "erro ao criar a requisição"))
	}

	token, err := c.token.Token()
	if err != nil {
		return fetchErr(0, err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fetchErr(0, errors.Wrap(err, "erro ao executar a requisição"))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logrus.WithFields(logrus.Fields{
			"resource": resource,
			"status":   resp.StatusCode,
		}).Warnf("Backend respondeu com erro: %s", string(body))

		return fetchErr(resp.StatusCode, errors.Errorf("requisição falhou com status: %s", resp.Status))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fetchErr(resp.StatusCode, errors.Wrap(err, "erro ao decodificar a resposta"))
	}

	return nil
}
