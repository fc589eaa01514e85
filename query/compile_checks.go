package query

import (
	gocmd "github.com/goliatone/go-command"

	"github.com/goliatone/go-assets/core"
)

var (
	_ gocmd.Querier[ResolveResourceMessage, core.Resource]               = (*ResolveResourceQuery)(nil)
	_ gocmd.Querier[ResolveImageryProviderMessage, core.ImageryProvider] = (*ResolveImageryProviderQuery)(nil)
	_ gocmd.Querier[ResolveEndpointMessage, core.Endpoint]               = (*ResolveEndpointQuery)(nil)
)
