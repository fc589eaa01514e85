package core

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const endpointPathFormat = "v1/assets/%d/endpoint"

// EndpointRequest is the fully resolved lookup request for one asset. Pure
// data; the transport layer turns it into the actual GET.
type EndpointRequest struct {
	AssetID         int64
	URL             string
	QueryParameters map[string]string
}

// AccessToken returns the token attached to the request, if any.
func (r EndpointRequest) AccessToken() (string, bool) {
	token, ok := r.QueryParameters["access_token"]
	return token, ok && token != ""
}

// CacheKey identifies the request for descriptor caching. The token is
// fingerprinted so cache keys never carry the raw credential.
func (r EndpointRequest) CacheKey() string {
	key := r.URL
	if token, ok := r.AccessToken(); ok {
		sum := sha256.Sum256([]byte(token))
		key += "#" + hex.EncodeToString(sum[:8])
	}
	return key
}

// BuildEndpointRequest composes the authenticated lookup request for assetID.
// Per-call overrides win over the config defaults; when neither side carries
// an access token the access_token parameter is omitted and the lookup goes
// out unauthenticated. No I/O happens here.
func BuildEndpointRequest(cfg Config, req ResolveRequest) (EndpointRequest, error) {
	if err := req.Validate(); err != nil {
		return EndpointRequest{}, err
	}

	server := strings.TrimSpace(req.ServerURL)
	if server == "" {
		server = strings.TrimSpace(cfg.ServerURL)
	}
	if server == "" {
		return EndpointRequest{}, fmt.Errorf("%w: no server url configured", ErrInvalidServerURL)
	}
	base, err := url.Parse(server)
	if err != nil {
		return EndpointRequest{}, fmt.Errorf("%w: %v", ErrInvalidServerURL, err)
	}
	if !base.IsAbs() || base.Host == "" {
		return EndpointRequest{}, fmt.Errorf("%w: server url must be absolute, got %q", ErrInvalidServerURL, server)
	}

	endpoint := *base
	endpoint.Path = joinPath(base.Path, fmt.Sprintf(endpointPathFormat, req.AssetID))

	token := strings.TrimSpace(req.AccessToken)
	if token == "" {
		token = strings.TrimSpace(cfg.AccessToken)
	}

	out := EndpointRequest{
		AssetID:         req.AssetID,
		URL:             endpoint.String(),
		QueryParameters: map[string]string{},
	}
	if token != "" {
		out.QueryParameters["access_token"] = token
	}
	return out, nil
}

// RequestURL renders the request target including query parameters, the form
// a generic resource inherits for subsequent payload fetches.
func (r EndpointRequest) RequestURL() string {
	if len(r.QueryParameters) == 0 {
		return r.URL
	}
	values := url.Values{}
	for key, value := range r.QueryParameters {
		values.Set(key, value)
	}
	return r.URL + "?" + values.Encode()
}

func joinPath(base, rest string) string {
	base = strings.TrimSuffix(base, "/")
	return base + "/" + rest
}

func formatAssetID(assetID int64) string {
	return strconv.FormatInt(assetID, 10)
}
