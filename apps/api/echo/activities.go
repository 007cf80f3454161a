package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/logbook/core/logbook"
)

type activityApi struct {
	svc *logbook.Service
}

func registerActivityAPI(g *echo.Group, svc *logbook.Service) {
	api := activityApi{svc: svc}

	ag := g.Group("/activities")
	ag.GET("", api.query)
	ag.POST("", api.create)
	ag.PUT("/:id", api.update)
	ag.DELETE("/:id", api.destroy, confirmMiddleware())
}

// Handlers

func (api *activityApi) query(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Activities())
}

func (api *activityApi) create(ctx echo.Context) error {
	var data logbook.ActivityForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ActivityForm")
	}
	a, err := api.svc.CreateActivity(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating activity")
	}
	return ctx.JSON(http.StatusCreated, a)
}

func (api *activityApi) update(ctx echo.Context) error {
	var data logbook.ActivityForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ActivityForm")
	}
	a, err := api.svc.UpdateActivity(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating activity")
	}
	return ctx.JSON(http.StatusOK, a)
}

func (api *activityApi) destroy(ctx echo.Context) error {
	if err := api.svc.DeleteActivity(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting activity")
	}
	return ctx.NoContent(http.StatusNoContent)
}
