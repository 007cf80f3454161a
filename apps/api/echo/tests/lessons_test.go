package tests

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/logbook/core/logbook"
)

func Test_lessonApi(t *testing.T) {
	ctx := context.Background()
	app := setup(t, nil)
	first := logbook.DefaultData().Lessons[0]

	restaurant, err := app.svc.CreateLesson(ctx, logbook.LessonForm{Title: "Au restaurant", Date: "2024-09-16"})
	require.NoError(t, err)
	bilan, err := app.svc.CreateLesson(ctx, logbook.LessonForm{Title: "Bilan", Date: "2024-09-09"})
	require.NoError(t, err)

	edited := bilan
	edited.Title = "Bilan de mi-parcours"
	edited.Objectives = []string{"Réviser"}

	tests := []httpTest{
		{name: "list", method: http.MethodGet, path: "/v1/lessons", wantCode: http.StatusOK, wantData: marshallObj(t, []logbook.Lesson{first, restaurant, bilan})},
		{name: "by date", method: http.MethodGet, path: "/v1/lessons?ordering=date", wantCode: http.StatusOK, wantData: marshallObj(t, []logbook.Lesson{first, bilan, restaurant})},
		{name: "by date desc", method: http.MethodGet, path: "/v1/lessons?ordering=-date", wantCode: http.StatusOK, wantData: marshallObj(t, []logbook.Lesson{restaurant, bilan, first})},
		{name: "by title", method: http.MethodGet, path: "/v1/lessons?ordering=title", wantCode: http.StatusOK, wantData: marshallObj(t, []logbook.Lesson{restaurant, bilan, first})},
		{
			name:     "create with bad date",
			method:   http.MethodPost,
			path:     "/v1/lessons",
			body:     []byte(`{"title":"x","date":"16/09/2024"}`),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "edit",
			method:   http.MethodPut,
			path:     "/v1/lessons/" + bilan.ID,
			body:     []byte(`{"title":"Bilan de mi-parcours","date":"2024-09-09","objectives":["Réviser",""],"materials":[]}`),
			wantCode: http.StatusOK,
			wantData: marshallObj(t, edited),
		},
		{
			name:     "edit without date",
			method:   http.MethodPut,
			path:     "/v1/lessons/" + bilan.ID,
			body:     []byte(`{"title":"Bilan de mi-parcours","objectives":["Réviser"]}`),
			wantCode: http.StatusOK,
			wantData: marshallObj(t, edited),
		},
		{name: "delete unconfirmed", method: http.MethodDelete, path: "/v1/lessons/" + first.ID, wantCode: http.StatusPreconditionRequired, wantData: marshallObj(t, errConfirmation)},
		{name: "delete", method: http.MethodDelete, path: "/v1/lessons/" + first.ID + "?confirm=true", wantCode: http.StatusNoContent},
		{name: "list after delete", method: http.MethodGet, path: "/v1/lessons", wantCode: http.StatusOK, wantData: marshallObj(t, []logbook.Lesson{restaurant, edited})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(tt)
			if tt.wantData != nil || tt.wantCode == http.StatusNoContent {
				checkCodeAndData(t, tt, rec)
			} else {
				checkCode(t, tt, rec)
			}
		})
	}

	tt := httpTest{method: http.MethodPost, path: "/v1/lessons", body: []byte(`{"title":"Sans date"}`), wantCode: http.StatusCreated}
	rec := app.do(tt)
	checkCode(t, tt, rec)
	var l logbook.Lesson
	unmarshallObj(t, rec, &l)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, l.Date, "defaults to today")
	assert.Equal(t, []string{}, l.Objectives)
}
