package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/logbook/core/logbook"
)

type programApi struct {
	svc *logbook.Service
}

func registerProgramAPI(g *echo.Group, svc *logbook.Service) {
	api := programApi{svc: svc}

	pg := g.Group("/program")
	pg.GET("", api.retrieve)
	pg.PUT("", api.update)
	pg.POST("/modules", api.createModule)
	pg.PUT("/modules/:id", api.updateModule)
	pg.DELETE("/modules/:id", api.destroyModule, confirmMiddleware())
}

// Handlers

func (api *programApi) retrieve(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Program())
}

func (api *programApi) update(ctx echo.Context) error {
	var data logbook.ProgramForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ProgramForm")
	}
	prog, err := api.svc.UpdateProgram(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "updating program")
	}
	return ctx.JSON(http.StatusOK, prog)
}

func (api *programApi) createModule(ctx echo.Context) error {
	var data logbook.ModuleForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ModuleForm")
	}
	m, err := api.svc.CreateModule(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating module")
	}
	return ctx.JSON(http.StatusCreated, m)
}

func (api *programApi) updateModule(ctx echo.Context) error {
	var data logbook.ModuleForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ModuleForm")
	}
	m, err := api.svc.UpdateModule(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating module")
	}
	return ctx.JSON(http.StatusOK, m)
}

func (api *programApi) destroyModule(ctx echo.Context) error {
	if err := api.svc.DeleteModule(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting module")
	}
	return ctx.NoContent(http.StatusNoContent)
}
