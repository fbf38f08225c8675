package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/tripplanner/internal/domain"
)

// pathUUID binds the named chi path parameter as a UUID.
// A malformed value wraps domain.ErrValidation.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s: %v", domain.ErrValidation, name, err)
	}
	return id, nil
}

// pathInt binds the named chi path parameter as an integer.
func pathInt(r *http.Request, name string) (int, error) {
	var n int
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &n,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s: %v", domain.ErrValidation, name, err)
	}
	return n, nil
}

// ListTripsParams are the optional query parameters of GET /trips.
type ListTripsParams struct {
	Page  *int
	Limit *int
}

func bindListTripsParams(r *http.Request) (ListTripsParams, error) {
	var p ListTripsParams
	q := r.URL.Query()
	if err := runtime.BindQueryParameter("form", true, false, "page", q, &p.Page); err != nil {
		return p, fmt.Errorf("%w: invalid page: %v", domain.ErrValidation, err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", q, &p.Limit); err != nil {
		return p, fmt.Errorf("%w: invalid limit: %v", domain.ErrValidation, err)
	}
	return p, nil
}

// ListPackingItemsParams are the optional query parameters of
// GET /trips/{tripID}/packing-items.
type ListPackingItemsParams struct {
	Category *string
}

func bindListPackingItemsParams(r *http.Request) (ListPackingItemsParams, error) {
	var p ListPackingItemsParams
	if err := runtime.BindQueryParameter("form", true, false, "category", r.URL.Query(), &p.Category); err != nil {
		return p, fmt.Errorf("%w: invalid category: %v", domain.ErrValidation, err)
	}
	return p, nil
}
