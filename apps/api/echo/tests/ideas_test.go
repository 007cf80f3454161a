package tests

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/logbook/core/logbook"
	"github.com/trezcool/logbook/tests"
)

var sampleIdeas = []logbook.Idea{
	{Title: "Jeu de rôle au marché", Description: "Acheter des fruits en négociant.", Duration: 20, Type: "Jeu de rôle"},
	{Title: "Le prix juste", Description: "Deviner les prix des produits.", Duration: 10, Type: "Jeu"},
}

func Test_ideaApi_options(t *testing.T) {
	app := setup(t, nil)
	tt := httpTest{
		method:   http.MethodGet,
		path:     "/v1/ideas/options",
		wantCode: http.StatusOK,
		wantData: []byte(`{"skills":["Oral","Écrit","Grammaire","Vocabulaire"],"levels":["A1","A2","B1","B2"],"defaultSkill":"Oral","defaultLevel":"A2"}`),
	}
	checkCodeAndData(t, tt, app.do(tt))
}

func Test_ideaApi_generate(t *testing.T) {
	tests := []struct {
		httpTest
		gen *testutil.StubGenerator
	}{
		{
			httpTest: httpTest{
				name:     "missing api key",
				body:     []byte(`{"topic":"les courses"}`),
				wantCode: http.StatusServiceUnavailable,
				wantData: marshallObj(t, httpErr{Error: logbook.ErrMissingAPIKey.Error()}),
			},
		},
		{
			httpTest: httpTest{
				name:     "blank topic",
				body:     []byte(`{"topic":"  "}`),
				wantCode: http.StatusBadRequest,
				wantData: marshallObj(t, httpErr{Error: logbook.ErrTopicRequired.Error()}),
			},
			gen: &testutil.StubGenerator{Ideas: sampleIdeas},
		},
		{
			httpTest: httpTest{
				name:     "unknown level",
				body:     []byte(`{"topic":"les courses","level":"C2"}`),
				wantCode: http.StatusBadRequest,
			},
			gen: &testutil.StubGenerator{Ideas: sampleIdeas},
		},
		{
			httpTest: httpTest{
				name:     "generator failure",
				body:     []byte(`{"topic":"les courses"}`),
				wantCode: http.StatusBadGateway,
				wantData: marshallObj(t, httpErr{Error: logbook.ErrIdeaGeneration.Error()}),
			},
			gen: &testutil.StubGenerator{Err: errors.New("quota exceeded")},
		},
		{
			httpTest: httpTest{
				name:     "success",
				body:     []byte(`{"topic":" les courses ","skill":"Écrit"}`),
				wantCode: http.StatusOK,
				wantData: marshallObj(t, logbook.IdeaBatch{
					Request: &logbook.IdeaRequest{Topic: "les courses", Skill: "Écrit", Level: logbook.DefaultLevel},
					Ideas:   sampleIdeas,
				}),
			},
			gen: &testutil.StubGenerator{Ideas: sampleIdeas},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setup(t, tt.gen)
			tt.method = http.MethodPost
			tt.path = "/v1/ideas"
			rec := app.do(tt.httpTest)
			if tt.wantData != nil {
				checkCodeAndData(t, tt.httpTest, rec)
			} else {
				checkCode(t, tt.httpTest, rec)
			}
		})
	}
}

func Test_ideaApi_generateFailureClearsIdeas(t *testing.T) {
	gen := &testutil.StubGenerator{Ideas: sampleIdeas}
	app := setup(t, gen)

	tt := httpTest{method: http.MethodPost, path: "/v1/ideas", body: []byte(`{"topic":"les courses"}`), wantCode: http.StatusOK}
	checkCode(t, tt, app.do(tt))

	gen.Err = errors.New("boom")
	tt.wantCode = http.StatusBadGateway
	checkCode(t, tt, app.do(tt))

	batch := app.svc.Ideas()
	assert.Empty(t, batch.Ideas)
	assert.False(t, batch.Generating)
	assert.Equal(t, 2, gen.Calls)
}

func Test_ideaApi_import(t *testing.T) {
	app := setup(t, &testutil.StubGenerator{Ideas: sampleIdeas})

	tt := httpTest{name: "nothing to import", method: http.MethodPost, path: "/v1/ideas/0/import", wantCode: http.StatusNotFound, wantData: marshallObj(t, errNotFound)}
	checkCodeAndData(t, tt, app.do(tt))

	tt = httpTest{method: http.MethodPost, path: "/v1/ideas", body: []byte(`{"topic":"le marché"}`), wantCode: http.StatusOK}
	checkCode(t, tt, app.do(tt))

	tests := []httpTest{
		{name: "out of range", method: http.MethodPost, path: "/v1/ideas/2/import", wantCode: http.StatusNotFound, wantData: marshallObj(t, errNotFound)},
		{name: "not a number", method: http.MethodPost, path: "/v1/ideas/abc/import", wantCode: http.StatusNotFound, wantData: marshallObj(t, errNotFound)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, app.do(tt))
		})
	}

	tt = httpTest{method: http.MethodPost, path: "/v1/ideas/1/import", wantCode: http.StatusCreated}
	rec := app.do(tt)
	checkCode(t, tt, rec)

	var act logbook.Activity
	unmarshallObj(t, rec, &act)
	assert.Regexp(t, `^activity-`, act.ID)
	assert.Equal(t, sampleIdeas[1].Title, act.Title)
	assert.Equal(t, sampleIdeas[1].Duration, act.Duration)

	activities := app.svc.Activities()
	require.Len(t, activities, 2)
	assert.Equal(t, act, activities[0], "imported ideas come first")
	assert.Len(t, app.svc.Ideas().Ideas, 2, "imported ideas stay listed")
}
