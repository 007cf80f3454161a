package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/logbook/core"
	"github.com/trezcool/logbook/core/logbook"
)

type dashboardApi struct {
	svc *logbook.Service
}

type (
	NavigateRequest struct {
		ActiveView logbook.View `json:"activeView"`
	}

	SelectClassRequest struct {
		ClassID string `json:"classId"`
	}
)

func registerDashboardAPI(g *echo.Group, svc *logbook.Service) {
	api := dashboardApi{svc: svc}

	g.GET("/dashboard", api.summary)

	vg := g.Group("/view")
	vg.GET("", api.view)
	vg.PUT("", api.navigate)
	vg.POST("/select-class", api.selectClass)
}

// Handlers

func (api *dashboardApi) summary(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Summary())
}

func (api *dashboardApi) view(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.View())
}

func (api *dashboardApi) navigate(ctx echo.Context) error {
	var data NavigateRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NavigateRequest")
	}
	state, err := api.svc.Navigate(data.ActiveView)
	if err != nil {
		return errors.Wrap(err, "navigating")
	}
	return ctx.JSON(http.StatusOK, state)
}

func (api *dashboardApi) selectClass(ctx echo.Context) error {
	var data SelectClassRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SelectClassRequest")
	}
	if core.CleanString(data.ClassID) == "" {
		return core.NewFieldValidationError("classId", errClassIDRequired)
	}
	state, err := api.svc.SelectClass(core.CleanString(data.ClassID))
	if err != nil {
		return errors.Wrap(err, "selecting class")
	}
	return ctx.JSON(http.StatusOK, state)
}
