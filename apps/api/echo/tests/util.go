package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/trezcool/logbook/apps/api/echo"
	"github.com/trezcool/logbook/core"
	"github.com/trezcool/logbook/core/logbook"
	"github.com/trezcool/logbook/storage/database/inmem"
	"github.com/trezcool/logbook/tests"
)

var (
	errNotFound     = httpErr{Error: "not found"}
	errConfirmation = httpErr{Error: "confirmation requise : ajoutez ?confirm=true"}
	errRequired     = "ce champ est obligatoire"
)

type testApp struct {
	Server
	svc *logbook.Service
	gen *testutil.StubGenerator
}

// setup starts a server over an empty in-memory store. A nil generator means no API key.
func setup(t *testing.T, gen *testutil.StubGenerator) testApp {
	return setupWithStore(t, inmemdb.Open(), gen)
}

func setupWithStore(t *testing.T, ds core.DocumentStore, gen *testutil.StubGenerator) testApp {
	var ideaGen logbook.IdeaGenerator
	if gen != nil {
		ideaGen = gen
	}
	svc := testutil.NewService(t, ds, ideaGen)

	conf := testutil.NewConfig(t)
	conf.Server.DisableReqLogs = true

	app := NewServer(ServerDeps{
		Conf:       conf,
		Logger:     core.NopLogger{},
		Service:    svc,
		Translator: core.NewTranslator(),
	})
	t.Cleanup(func() { _ = app.Close() })
	return testApp{Server: app, svc: svc, gen: gen}
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func (app testApp) do(tt httpTest) *httptest.ResponseRecorder {
	req, rec := newRequest(tt.method, tt.path, tt.body)
	app.ServeHTTP(rec, req)
	return rec
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj() failed: %v", err)
	}
	return data
}

func unmarshallObj(t *testing.T, rec *httptest.ResponseRecorder, obj interface{}) {
	if err := json.Unmarshal(rec.Body.Bytes(), obj); err != nil {
		t.Fatalf("unmarshallObj() failed: %v; body %s", err, rec.Body.String())
	}
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCode(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v; body %s", rec.Code, tt.wantCode, rec.Body.String())
	}
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	checkCode(t, tt, rec)
	if tt.wantData == nil {
		assert.Empty(t, rec.Body.String())
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
