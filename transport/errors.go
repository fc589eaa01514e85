package transport

import (
	"fmt"
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-assets/core"
)

func fetchError(req core.EndpointRequest, err error) error {
	return goerrors.Wrap(
		err,
		goerrors.CategoryExternal,
		fmt.Sprintf("transport: endpoint fetch failed for asset %d", req.AssetID),
	).
		WithCode(http.StatusBadGateway).
		WithTextCode(core.AssetErrorEndpointUnavailable)
}

func statusError(req core.EndpointRequest, status int, body string) error {
	body = strings.TrimSpace(body)
	if len(body) > 200 {
		body = body[:200]
	}
	message := fmt.Sprintf("transport: endpoint fetch failed for asset %d: status %d", req.AssetID, status)
	if body != "" {
		message += ": " + body
	}
	return goerrors.New(message, goerrors.CategoryExternal).
		WithCode(http.StatusBadGateway).
		WithTextCode(core.AssetErrorEndpointUnavailable)
}

func decodeError(req core.EndpointRequest, err error) error {
	return goerrors.Wrap(
		err,
		goerrors.CategoryExternal,
		fmt.Sprintf("transport: endpoint decode failed for asset %d", req.AssetID),
	).
		WithCode(http.StatusBadGateway).
		WithTextCode(core.AssetErrorEndpointUnavailable)
}
