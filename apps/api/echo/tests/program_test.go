package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/logbook/core/logbook"
)

func Test_programApi(t *testing.T) {
	app := setup(t, nil)
	prog := logbook.DefaultData().Program

	updated := prog
	updated.Title = "Programme 2024-2025"
	updated.Goals = []string{"Parler", "Écrire"}

	tests := []httpTest{
		{name: "retrieve default", method: http.MethodGet, path: "/v1/program", wantCode: http.StatusOK, wantData: marshallObj(t, prog)},
		{
			name:     "update blank title",
			method:   http.MethodPut,
			path:     "/v1/program",
			body:     []byte(`{"title":" ","goals":[]}`),
			wantCode: http.StatusBadRequest,
			wantData: marshallObj(t, map[string]string{"title": errRequired}),
		},
		{
			name:     "update drops blank goals",
			method:   http.MethodPut,
			path:     "/v1/program",
			body:     []byte(`{"title":"Programme 2024-2025","goals":[" Parler","","Écrire "]}`),
			wantCode: http.StatusOK,
			wantData: marshallObj(t, updated),
		},
		{
			name:     "update module",
			method:   http.MethodPut,
			path:     "/v1/program/modules/module-2",
			body:     []byte(`{"title":"Le quotidien","topics":["L'heure"," "]}`),
			wantCode: http.StatusOK,
			wantData: marshallObj(t, logbook.ProgramModule{ID: "module-2", Title: "Le quotidien", Topics: []string{"L'heure"}}),
		},
		{
			name:     "update unknown module",
			method:   http.MethodPut,
			path:     "/v1/program/modules/nope",
			body:     []byte(`{"title":"x"}`),
			wantCode: http.StatusNotFound,
			wantData: marshallObj(t, errNotFound),
		},
		{
			name:     "delete module unconfirmed",
			method:   http.MethodDelete,
			path:     "/v1/program/modules/module-1",
			wantCode: http.StatusPreconditionRequired,
			wantData: marshallObj(t, errConfirmation),
		},
		{
			name:     "delete module",
			method:   http.MethodDelete,
			path:     "/v1/program/modules/module-1?confirm=true",
			wantCode: http.StatusNoContent,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, app.do(tt))
		})
	}

	tt := httpTest{method: http.MethodPost, path: "/v1/program/modules", body: []byte(`{"title":"Voyager","topics":["Transports","Hôtel"]}`), wantCode: http.StatusCreated}
	rec := app.do(tt)
	checkCode(t, tt, rec)
	var m logbook.ProgramModule
	unmarshallObj(t, rec, &m)
	assert.Regexp(t, `^module-`, m.ID)

	modules := app.svc.Program().Modules
	require.Len(t, modules, 2)
	assert.Equal(t, "module-2", modules[0].ID)
	assert.Equal(t, m, modules[1])
}
