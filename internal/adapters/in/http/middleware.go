package http

import (
	"errors"
	"net/http"

	"orderflow/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

// NewRequestValidator loads the OpenAPI description and returns middleware
// that rejects malformed requests before they reach the handlers. Requests
// for paths outside the description (health, swagger) pass through untouched.
func NewRequestValidator(specPath string) (echo.MiddlewareFunc, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile(specPath)
	if err != nil {
		return nil, err
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, err
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, routeErr := router.FindRoute(req)
			if errors.Is(routeErr, routers.ErrPathNotFound) || errors.Is(routeErr, routers.ErrMethodNotAllowed) {
				// Health and swagger routes are not part of the API document
				return next(ctx)
			}
			if routeErr != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, routeErr.Error())
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
			}
			if validationErr := openapi3filter.ValidateRequest(req.Context(), input); validationErr != nil {
				return ctx.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: validationErr.Error(),
				})
			}

			return next(ctx)
		}
	}, nil
}
