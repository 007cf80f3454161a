package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/logbook/core/logbook"
)

type lessonApi struct {
	svc *logbook.Service
}

func registerLessonAPI(g *echo.Group, svc *logbook.Service) {
	api := lessonApi{svc: svc}

	lg := g.Group("/lessons")
	lg.GET("", api.query)
	lg.POST("", api.create)
	lg.PUT("/:id", api.update)
	lg.DELETE("/:id", api.destroy, confirmMiddleware())
}

// Handlers

func (api *lessonApi) query(ctx echo.Context) error {
	ordering := new(Ordering)
	ordering.Bind(ctx)
	return ctx.JSON(http.StatusOK, api.svc.Lessons(ordering.Orderings...))
}

func (api *lessonApi) create(ctx echo.Context) error {
	var data logbook.LessonForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LessonForm")
	}
	l, err := api.svc.CreateLesson(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating lesson")
	}
	return ctx.JSON(http.StatusCreated, l)
}

func (api *lessonApi) update(ctx echo.Context) error {
	var data logbook.LessonForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LessonForm")
	}
	l, err := api.svc.UpdateLesson(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating lesson")
	}
	return ctx.JSON(http.StatusOK, l)
}

func (api *lessonApi) destroy(ctx echo.Context) error {
	if err := api.svc.DeleteLesson(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting lesson")
	}
	return ctx.NoContent(http.StatusNoContent)
}
