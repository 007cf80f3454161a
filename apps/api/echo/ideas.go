package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/logbook/core/logbook"
)

type ideaApi struct {
	svc *logbook.Service
}

// IdeaOptions lists what the generator form offers.
type IdeaOptions struct {
	Skills       []string `json:"skills"`
	Levels       []string `json:"levels"`
	DefaultSkill string   `json:"defaultSkill"`
	DefaultLevel string   `json:"defaultLevel"`
}

func registerIdeaAPI(g *echo.Group, svc *logbook.Service) {
	api := ideaApi{svc: svc}

	ig := g.Group("/ideas")
	ig.GET("", api.query)
	ig.POST("", api.generate)
	ig.GET("/options", api.options)
	ig.POST("/:index/import", api.importIdea)
}

// Handlers

func (api *ideaApi) query(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Ideas())
}

func (api *ideaApi) options(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, IdeaOptions{
		Skills:       logbook.Skills,
		Levels:       logbook.Levels,
		DefaultSkill: logbook.DefaultSkill,
		DefaultLevel: logbook.DefaultLevel,
	})
}

func (api *ideaApi) generate(ctx echo.Context) error {
	var data logbook.IdeaRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to IdeaRequest")
	}
	if _, err := api.svc.GenerateIdeas(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "generating ideas")
	}
	return ctx.JSON(http.StatusOK, api.svc.Ideas())
}

func (api *ideaApi) importIdea(ctx echo.Context) error {
	index, err := indexParam(ctx, "index")
	if err != nil {
		return err
	}
	a, err := api.svc.ImportIdea(ctx.Request().Context(), index)
	if err != nil {
		return errors.Wrap(err, "importing idea")
	}
	return ctx.JSON(http.StatusCreated, a)
}
