package assets

import (
	"github.com/goliatone/go-assets/core"
	"github.com/goliatone/go-assets/providers/arcgis"
	"github.com/goliatone/go-assets/providers/bing"
	"github.com/goliatone/go-assets/providers/googleearth"
	"github.com/goliatone/go-assets/providers/singletile"
	"github.com/goliatone/go-assets/providers/tms"
	"github.com/goliatone/go-assets/providers/urltemplate"
	"github.com/goliatone/go-assets/providers/wms"
	"github.com/goliatone/go-assets/providers/wmts"
)

func ArcGISProvider(cfg arcgis.Config) (core.ImageryProvider, error) {
	return arcgis.New(cfg)
}

func BingProvider(cfg bing.Config) (core.ImageryProvider, error) {
	return bing.New(cfg)
}

func GoogleEarthProvider(cfg googleearth.Config) (core.ImageryProvider, error) {
	return googleearth.New(cfg)
}

func SingleTileProvider(cfg singletile.Config) (core.ImageryProvider, error) {
	return singletile.New(cfg)
}

func TMSProvider(cfg tms.Config) (core.ImageryProvider, error) {
	return tms.New(cfg)
}

func URLTemplateProvider(cfg urltemplate.Config) (core.ImageryProvider, error) {
	return urltemplate.New(cfg)
}

func WMSProvider(cfg wms.Config) (core.ImageryProvider, error) {
	return wms.New(cfg)
}

func WMTSProvider(cfg wmts.Config) (core.ImageryProvider, error) {
	return wmts.New(cfg)
}

// BuiltinImageryRegistry returns the closed dispatch table mapping every
// supported external type tag to its family constructor.
func BuiltinImageryRegistry() (core.Registry, error) {
	registry := core.NewConstructorRegistry()
	entries := map[core.ExternalType]core.ImageryConstructor{
		core.ExternalTypeArcGIS:      arcgis.FromOptions,
		core.ExternalTypeBing:        bing.FromOptions,
		core.ExternalTypeGoogleEarth: googleearth.FromOptions,
		core.ExternalTypeSingleTile:  singletile.FromOptions,
		core.ExternalTypeTMS:         tms.FromOptions,
		core.ExternalTypeURLTemplate: urltemplate.FromOptions,
		core.ExternalTypeWMS:         wms.FromOptions,
		core.ExternalTypeWMTS:        wmts.FromOptions,
	}
	for tag, constructor := range entries {
		if err := registry.Register(tag, constructor); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
