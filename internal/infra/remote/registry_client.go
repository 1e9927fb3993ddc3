package remote

import (
	"context"
	"encoding/json"
	"net/http"

	"checkout/config"
	"checkout/internal/domain/service"
	"checkout/internal/errors"
)

type registryResponse struct {
	Success bool   `json:"success"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type registryClient struct {
	http *httpClient
}

// NewRegistryClient creates the client of the national identity registry.
func NewRegistryClient(cfg *config.Config) (service.NationalRegistry, error) {
	client, err := newHTTPClient("registry", cfg.Registry)
	if err != nil {
		return nil, err
	}

	return &registryClient{http: client}, nil
}

// Lookup asks the registry for a person. A 404 with a JSON body is a regular
// unsuccessful answer; other non-2xx statuses are errors.
func (c *registryClient) Lookup(ctx context.Context, nationalID string) (*service.RegistryResult, error) {
	req, err := c.http.newRequest(ctx, http.MethodGet, nil, "persons", nationalID)
	if err != nil {
		return nil, err
	}

	status, body, err := c.http.do(req)
	if err != nil {
		return nil, errors.Wrap(err, "registry lookup")
	}
	if !isSuccess(status) && status != http.StatusNotFound {
		return nil, &StatusError{StatusCode: status, Body: string(body)}
	}

	var resp registryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		if status == http.StatusNotFound {
			return &service.RegistryResult{Success: false}, nil
		}

		return nil, errors.Wrap(err, "decode registry response")
	}

	result := &service.RegistryResult{
		Success: resp.Success && status != http.StatusNotFound,
		Name:    resp.Name,
		Message: resp.Message,
		Raw:     json.RawMessage(body),
	}
	if result.Success && result.Name == "" {
		return nil, errors.New("registry reported success without a name")
	}

	return result, nil
}
