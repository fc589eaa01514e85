package core

import (
	"fmt"
	"net/url"
	"strings"
)

// Resource is an immutable authenticated URL handle. It carries everything a
// caller needs to fetch the asset payload directly; this module never mutates
// a resource after handing it out.
type Resource struct {
	url             string
	queryParameters map[string]string
	credit          string
}

func NewResource(rawURL string, queryParameters map[string]string) (Resource, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return Resource{}, ErrEndpointURLMissing
	}
	if _, err := url.Parse(trimmed); err != nil {
		return Resource{}, fmt.Errorf("core: invalid resource url %q: %w", rawURL, err)
	}
	copied := make(map[string]string, len(queryParameters))
	for key, value := range queryParameters {
		copied[key] = value
	}
	return Resource{url: trimmed, queryParameters: copied}, nil
}

// ResourceFromEndpoint builds the handle for a natively hosted asset: the
// descriptor URL, the original request's auth query parameters, and the
// descriptor-issued access token when the service minted one for the asset.
func ResourceFromEndpoint(endpoint Endpoint, req EndpointRequest) (Resource, error) {
	query := make(map[string]string, len(req.QueryParameters)+1)
	for key, value := range req.QueryParameters {
		query[key] = value
	}
	if token := strings.TrimSpace(endpoint.AccessToken); token != "" {
		query["access_token"] = token
	}
	resource, err := NewResource(endpoint.URL, query)
	if err != nil {
		return Resource{}, err
	}
	resource.credit = endpoint.Credit()
	return resource, nil
}

// BareResourceFromOptions builds the handle for external kinds that degrade
// to a plain URL. Every descriptor field other than options.url is discarded.
func BareResourceFromOptions(endpoint Endpoint) (Resource, error) {
	target, ok := endpoint.Options.URL()
	if !ok {
		return Resource{}, fmt.Errorf("%w: external type %q", ErrExternalTypeMissing, endpoint.ExternalType)
	}
	return NewResource(target, nil)
}

func (r Resource) URL() string {
	return r.url
}

func (r Resource) QueryParameters() map[string]string {
	copied := make(map[string]string, len(r.queryParameters))
	for key, value := range r.queryParameters {
		copied[key] = value
	}
	return copied
}

func (r Resource) Credit() string {
	return r.credit
}

// RequestURL renders the handle as a single fetchable URL with its query
// parameters encoded.
func (r Resource) RequestURL() string {
	if len(r.queryParameters) == 0 {
		return r.url
	}
	values := url.Values{}
	for key, value := range r.queryParameters {
		values.Set(key, value)
	}
	separator := "?"
	if strings.Contains(r.url, "?") {
		separator = "&"
	}
	return r.url + separator + values.Encode()
}
