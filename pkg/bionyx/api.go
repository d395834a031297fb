package bionyx

import (
	"context"
	"net/http"
)

// API is the entry point of the client.
type API struct {
	auth Requester
}

// NewAPI creates the root object on top of an authenticated transport.
func NewAPI(auth Requester) *API {
	return &API{auth: auth}
}

// GetSystems lists the systems the account can access, in server order.
func (a *API) GetSystems(ctx context.Context) ([]*System, error) {
	var payloads []SystemResponse
	if err := call(ctx, a.auth, http.MethodGet, pathSystems, nil, &payloads); err != nil {
		return nil, err
	}

	systems := make([]*System, 0, len(payloads))
	for _, p := range payloads {
		systems = append(systems, NewSystem(p, a.auth))
	}
	return systems, nil
}
