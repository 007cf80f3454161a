package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/logbook/core/logbook"
)

var errClassIDRequired = errors.New("ce champ est obligatoire")

type classApi struct {
	svc *logbook.Service
}

func registerClassAPI(g *echo.Group, svc *logbook.Service) {
	api := classApi{svc: svc}

	cg := g.Group("/classes")
	cg.GET("", api.query)
	cg.POST("", api.create)
	cg.GET("/:id", api.retrieve)
	cg.PUT("/:id", api.update)
	cg.DELETE("/:id", api.destroy, confirmMiddleware())

	// students of a class
	sg := cg.Group("/:id/students")
	sg.GET("", api.queryStudents)
	sg.POST("", api.createStudent)
	sg.GET("/:sid", api.retrieveStudent)
	sg.PUT("/:sid", api.updateStudent)
	sg.DELETE("/:sid", api.destroyStudent, confirmMiddleware())
	sg.POST("/:sid/notes", api.addNote)
	sg.DELETE("/:sid/notes/:nid", api.destroyNote, confirmMiddleware())

	// students of the selected class
	g.GET("/students", api.selectedStudents)
}

// Handlers

func (api *classApi) query(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Classes())
}

func (api *classApi) create(ctx echo.Context) error {
	var data logbook.ClassForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ClassForm")
	}
	cls, err := api.svc.CreateClass(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating class")
	}
	return ctx.JSON(http.StatusCreated, cls)
}

func (api *classApi) retrieve(ctx echo.Context) error {
	cls, err := api.svc.FindClass(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "retrieving class")
	}
	return ctx.JSON(http.StatusOK, cls)
}

func (api *classApi) update(ctx echo.Context) error {
	var data logbook.ClassForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ClassForm")
	}
	cls, err := api.svc.UpdateClass(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "updating class")
	}
	return ctx.JSON(http.StatusOK, cls)
}

func (api *classApi) destroy(ctx echo.Context) error {
	if err := api.svc.DeleteClass(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting class")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *classApi) queryStudents(ctx echo.Context) error {
	students, err := api.svc.Students(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *classApi) selectedStudents(ctx echo.Context) error {
	cls, err := api.svc.SelectedClass()
	if err != nil {
		return errors.Wrap(err, "getting selected class")
	}
	return ctx.JSON(http.StatusOK, cls.Students)
}

func (api *classApi) createStudent(ctx echo.Context) error {
	var data logbook.StudentForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to StudentForm")
	}
	st, err := api.svc.CreateStudent(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return errors.Wrap(err, "creating student")
	}
	return ctx.JSON(http.StatusCreated, st)
}

func (api *classApi) retrieveStudent(ctx echo.Context) error {
	st, err := api.svc.FindStudent(ctx.Param("id"), ctx.Param("sid"))
	if err != nil {
		return errors.Wrap(err, "retrieving student")
	}
	return ctx.JSON(http.StatusOK, st)
}

func (api *classApi) updateStudent(ctx echo.Context) error {
	var data logbook.StudentForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to StudentForm")
	}
	st, err := api.svc.UpdateStudent(ctx.Request().Context(), ctx.Param("id"), ctx.Param("sid"), data)
	if err != nil {
		return errors.Wrap(err, "updating student")
	}
	return ctx.JSON(http.StatusOK, st)
}

func (api *classApi) destroyStudent(ctx echo.Context) error {
	if err := api.svc.DeleteStudent(ctx.Request().Context(), ctx.Param("id"), ctx.Param("sid")); err != nil {
		return errors.Wrap(err, "deleting student")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *classApi) addNote(ctx echo.Context) error {
	var data logbook.NoteForm
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NoteForm")
	}
	note, err := api.svc.AddNote(ctx.Request().Context(), ctx.Param("id"), ctx.Param("sid"), data)
	if err != nil {
		return errors.Wrap(err, "adding note")
	}
	return ctx.JSON(http.StatusCreated, note)
}

func (api *classApi) destroyNote(ctx echo.Context) error {
	err := api.svc.DeleteNote(ctx.Request().Context(), ctx.Param("id"), ctx.Param("sid"), ctx.Param("nid"))
	if err != nil {
		return errors.Wrap(err, "deleting note")
	}
	return ctx.NoContent(http.StatusNoContent)
}
