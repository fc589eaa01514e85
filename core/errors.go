package core

import (
	"net/http"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

const (
	AssetErrorBadInput            = "ASSETS_BAD_INPUT"
	AssetErrorEndpointUnavailable = "ASSETS_ENDPOINT_UNAVAILABLE"
	AssetErrorNotResource         = "ASSETS_NOT_RESOURCE"
	AssetErrorWrongAssetType      = "ASSETS_WRONG_ASSET_TYPE"
	AssetErrorUnknownExternalType = "ASSETS_UNKNOWN_EXTERNAL_TYPE"
	AssetErrorInternal            = "ASSETS_INTERNAL_ERROR"
)

func assetErrorMapper(err error) *goerrors.Error {
	if err == nil {
		return nil
	}

	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return ensureAssetErrorEnvelope(richErr)
	}

	msg := strings.ToLower(strings.TrimSpace(err.Error()))
	switch {
	case strings.Contains(msg, "external type") && strings.Contains(msg, "not registered"):
		return newAssetError(err.Error(), goerrors.CategoryNotFound, AssetErrorUnknownExternalType)
	case strings.Contains(msg, "not an imagery asset"):
		return newAssetError(err.Error(), goerrors.CategoryOperation, AssetErrorWrongAssetType)
	case strings.Contains(msg, "imagery provider entry point"):
		return newAssetError(err.Error(), goerrors.CategoryOperation, AssetErrorNotResource)
	case strings.Contains(msg, "endpoint fetch"), strings.Contains(msg, "endpoint decode"):
		return newAssetError(err.Error(), goerrors.CategoryExternal, AssetErrorEndpointUnavailable)
	case strings.Contains(msg, "url is missing"):
		// The service handed back a descriptor without a usable target; that
		// is an upstream defect, not caller input.
		return newAssetError(err.Error(), goerrors.CategoryExternal, AssetErrorEndpointUnavailable)
	case strings.Contains(msg, "required"), strings.Contains(msg, "invalid"):
		return newAssetError(err.Error(), goerrors.CategoryBadInput, AssetErrorBadInput)
	}

	mapped := goerrors.MapToError(err, goerrors.DefaultErrorMappers())
	return ensureAssetErrorEnvelope(mapped)
}

func newAssetError(message string, category goerrors.Category, textCode string) *goerrors.Error {
	return ensureAssetErrorEnvelope(
		goerrors.New(message, category).
			WithTextCode(textCode),
	)
}

func ensureAssetErrorEnvelope(err *goerrors.Error) *goerrors.Error {
	if err == nil {
		return nil
	}
	if err.Code == 0 {
		err.Code = assetHTTPStatus(err.Category)
	}
	if strings.TrimSpace(err.TextCode) == "" {
		err.TextCode = defaultAssetTextCode(err.Category)
	}
	if err.Category == goerrors.CategoryInternal && strings.TrimSpace(err.Message) == "" {
		err.Message = "An unexpected error occurred"
	}
	return err
}

func defaultAssetTextCode(category goerrors.Category) string {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return AssetErrorBadInput
	case goerrors.CategoryNotFound:
		return AssetErrorUnknownExternalType
	case goerrors.CategoryExternal:
		return AssetErrorEndpointUnavailable
	case goerrors.CategoryOperation:
		return AssetErrorWrongAssetType
	default:
		return AssetErrorInternal
	}
}

func assetHTTPStatus(category goerrors.Category) int {
	switch category {
	case goerrors.CategoryBadInput, goerrors.CategoryValidation:
		return http.StatusBadRequest
	case goerrors.CategoryNotFound:
		return http.StatusNotFound
	case goerrors.CategoryExternal:
		return http.StatusBadGateway
	case goerrors.CategoryOperation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
