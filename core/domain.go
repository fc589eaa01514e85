package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAssetIDRequired     = errors.New("core: asset id is required")
	ErrInvalidServerURL    = errors.New("core: invalid server url")
	ErrEndpointURLMissing  = errors.New("core: endpoint url is missing")
	ErrExternalTypeMissing = errors.New("core: external type option url is missing")
)

type AssetType string

const (
	AssetTypeImagery AssetType = "IMAGERY"
	AssetTypeTerrain AssetType = "TERRAIN"
	AssetType3DTiles AssetType = "3DTILES"
	AssetTypeKML     AssetType = "KML"
	AssetTypeCZML    AssetType = "CZML"
	AssetTypeGeoJSON AssetType = "GEOJSON"
)

// ExternalType tags an asset hosted by a third-party provider family. An
// empty tag means the asset is natively hosted and addressable through the
// endpoint resource itself.
type ExternalType string

const (
	ExternalTypeNone          ExternalType = ""
	ExternalType3DTiles       ExternalType = "3DTILES"
	ExternalTypeTerrainServer ExternalType = "STK_TERRAIN_SERVER"
	ExternalTypeArcGIS        ExternalType = "ARCGIS_MAPSERVER"
	ExternalTypeBing          ExternalType = "BING"
	ExternalTypeGoogleEarth   ExternalType = "GOOGLE_EARTH_ENTERPRISE"
	ExternalTypeSingleTile    ExternalType = "SINGLE_TILE"
	ExternalTypeTMS           ExternalType = "TMS"
	ExternalTypeURLTemplate   ExternalType = "URL_TEMPLATE"
	ExternalTypeWMS           ExternalType = "WMS"
	ExternalTypeWMTS          ExternalType = "WMTS"
)

// BareResource reports whether an externally hosted asset of this type
// degrades cleanly to a plain URL resource. Only terrain-server and tiled-3D
// kinds do; imagery families carry tiling configuration a bare URL cannot
// express. The membership mirrors the current service contract and should be
// revisited against it, not assumed fixed.
func (t ExternalType) BareResource() bool {
	switch t {
	case ExternalType3DTiles, ExternalTypeTerrainServer:
		return true
	default:
		return false
	}
}

func (t ExternalType) String() string {
	return string(t)
}

// ProviderOptions is the opaque provider-specific construction payload from
// the endpoint document. It is handed to constructors verbatim; core never
// interprets individual fields beyond the bare-resource url.
type ProviderOptions map[string]any

func (o ProviderOptions) Clone() ProviderOptions {
	if o == nil {
		return nil
	}
	copied := make(ProviderOptions, len(o))
	for key, value := range o {
		copied[key] = value
	}
	return copied
}

// URL returns the options url field when present. Bare-resource external
// types carry their target there.
func (o ProviderOptions) URL() (string, bool) {
	raw, ok := o["url"]
	if !ok {
		return "", false
	}
	value, ok := raw.(string)
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}

// Attribution is a credit line the hosting service requires to be displayed
// alongside the asset. Passed through untouched; no HTML processing happens
// here.
type Attribution struct {
	HTML          string `json:"html,omitempty"`
	Text          string `json:"text,omitempty"`
	URL           string `json:"url,omitempty"`
	CollapsedText string `json:"collapsedText,omitempty"`
}

// Endpoint is the descriptor document returned by the asset lookup service.
type Endpoint struct {
	Type         AssetType       `json:"type"`
	ExternalType ExternalType    `json:"externalType,omitempty"`
	URL          string          `json:"url,omitempty"`
	AccessToken  string          `json:"accessToken,omitempty"`
	Options      ProviderOptions `json:"options,omitempty"`
	Attributions []Attribution   `json:"attributions,omitempty"`
}

func (e Endpoint) Validate() error {
	if strings.TrimSpace(string(e.Type)) == "" {
		return fmt.Errorf("core: endpoint type is required")
	}
	return nil
}

// Credit flattens the endpoint attributions into a single display string.
func (e Endpoint) Credit() string {
	parts := make([]string, 0, len(e.Attributions))
	for _, attribution := range e.Attributions {
		text := strings.TrimSpace(attribution.Text)
		if text == "" {
			text = strings.TrimSpace(attribution.HTML)
		}
		if text == "" {
			continue
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, ", ")
}

// ResolveRequest identifies the asset to resolve plus per-call overrides.
// Overrides fall back to the service Config when empty and are discarded
// after the call.
type ResolveRequest struct {
	AssetID     int64
	AccessToken string
	ServerURL   string
}

func (r ResolveRequest) Validate() error {
	if r.AssetID <= 0 {
		return fmt.Errorf("%w: got %d", ErrAssetIDRequired, r.AssetID)
	}
	return nil
}
