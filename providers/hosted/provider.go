package hosted

import (
	"net/url"
	"strings"

	"github.com/goliatone/go-assets/core"
	"github.com/goliatone/go-assets/providers"
)

const (
	Kind                = "HOSTED"
	DefaultMaximumLevel = 25
)

// Provider serves natively hosted imagery straight from the endpoint
// resource. The service lays native imagery out as a tile-map-service
// pyramid, so rows are flipped and the resource's auth query parameters ride
// along on every tile request.
type Provider struct {
	*providers.Tiled
	resource core.Resource
}

func New(resource core.Resource, endpoint core.Endpoint) (core.ImageryProvider, error) {
	base := strings.TrimSuffix(resource.URL(), "/")
	template := base + "/{z}/{x}/{reverseY}.png"
	if query := resource.QueryParameters(); len(query) > 0 {
		values := url.Values{}
		for key, value := range query {
			values.Set(key, value)
		}
		template += "?" + values.Encode()
	}

	tiled, err := providers.NewTiled(providers.TiledConfig{
		Kind:         Kind,
		URLTemplate:  template,
		MaximumLevel: DefaultMaximumLevel,
		Credit:       endpoint.Credit(),
	})
	if err != nil {
		return nil, err
	}
	return &Provider{Tiled: tiled, resource: resource}, nil
}

// Resource exposes the backing handle for hosts that fetch tiles through
// their own stack.
func (p *Provider) Resource() core.Resource {
	if p == nil {
		return core.Resource{}
	}
	return p.resource
}

var _ core.ImageryProvider = (*Provider)(nil)
