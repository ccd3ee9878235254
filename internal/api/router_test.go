package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/multierr"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"winequality/internal/app"
	"winequality/internal/explore"
	"winequality/internal/features"
	"winequality/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, staticDir string) (*gin.Engine, *MockBackend) {
	t.Helper()
	ctrl := gomock.NewController(t)
	backend := NewMockBackend(ctrl)
	return NewRouter(backend, nil, staticDir), backend
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	assert.NilError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestPredictJSON(t *testing.T) {
	r, backend := newTestRouter(t, "")
	backend.EXPECT().
		Predict(map[string]string{"alcohol": "12.5", "pH": "3.3", "density": ""}).
		Return(app.Prediction{Class: "good", Message: app.GoodMessage, Probability: 0.8}, nil)

	req := httptest.NewRequest(http.MethodPost, "/predict",
		strings.NewReader(`{"alcohol": 12.5, "pH": "3.3", "density": null}`))
	req.Header.Set("Content-Type", "application/json")
	w := do(r, req)

	assert.Equal(t, w.Code, http.StatusOK)
	body := decode(t, w)
	assert.Equal(t, body["prediction"], app.GoodMessage)
	assert.Equal(t, body["class"], "good")
}

func TestPredictForm(t *testing.T) {
	r, backend := newTestRouter(t, "")
	backend.EXPECT().
		Predict(map[string]string{"alcohol": "9", "sulphates": "0.4"}).
		Return(app.Prediction{Class: "bad", Message: app.BadMessage}, nil)

	form := url.Values{"alcohol": {"9"}, "sulphates": {"0.4"}}
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := do(r, req)

	assert.Equal(t, w.Code, http.StatusOK)
	assert.Equal(t, decode(t, w)["prediction"], app.BadMessage)
}

func TestPredictErrors(t *testing.T) {
	invalid := &features.ValidationError{Err: multierr.Combine(
		errors.New("alcohol is missing"),
		errors.New(`pH: "acid" is not a number`),
	)}
	tests := []struct {
		name     string
		err      error
		code     int
		problems int
	}{
		{"invalid input", invalid, http.StatusBadRequest, 2},
		{"not ready", models.ErrNotReady, http.StatusServiceUnavailable, 0},
		{"internal", errors.New("boom"), http.StatusInternalServerError, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, backend := newTestRouter(t, "")
			backend.EXPECT().Predict(gomock.Any()).Return(app.Prediction{}, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{"pH": "acid"}`))
			req.Header.Set("Content-Type", "application/json")
			w := do(r, req)

			assert.Equal(t, w.Code, tt.code)
			body := decode(t, w)
			if tt.problems > 0 {
				problems, ok := body["problems"].([]any)
				assert.Assert(t, ok, body)
				assert.Assert(t, is.Len(problems, tt.problems))
			}
		})
	}
}

func TestPredictMalformedBody(t *testing.T) {
	r, _ := newTestRouter(t, "")
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{"alcohol": `))
	req.Header.Set("Content-Type", "application/json")
	w := do(r, req)
	assert.Equal(t, w.Code, http.StatusBadRequest)
}

func TestScatter(t *testing.T) {
	r, backend := newTestRouter(t, "")
	pts := []explore.Point{{X: 9.4, Y: 5, Label: 0}, {X: 12.8, Y: 7, Label: 1}}
	backend.EXPECT().Scatter("alcohol", "quality").Return(pts, nil)

	w := do(r, httptest.NewRequest(http.MethodGet, "/api/scatter?x=Alcohol&y=quality", nil))
	assert.Equal(t, w.Code, http.StatusOK)
	body := decode(t, w)
	assert.Equal(t, body["title"], "Correlation between alcohol and quality")
	assert.Assert(t, is.Len(body["points"], 2))
}

func TestScatterRejectsQuery(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"x=alcohol", "y is required"},
		{"x=alcohol&y=colour", `y: unknown column "colour"`},
		{"x=vintage&y=pH", `x: unknown column "vintage"`},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r, _ := newTestRouter(t, "")
			w := do(r, httptest.NewRequest(http.MethodGet, "/api/scatter?"+tt.query, nil))
			assert.Equal(t, w.Code, http.StatusBadRequest)
			problems, ok := decode(t, w)["problems"].([]any)
			assert.Assert(t, ok)
			assert.Assert(t, is.Contains(problems, tt.want))
		})
	}
}

func TestScatterPNG(t *testing.T) {
	r, backend := newTestRouter(t, "")
	backend.EXPECT().ScatterPNG("alcohol", "sulphates").Return([]byte("\x89PNG"), nil)

	w := do(r, httptest.NewRequest(http.MethodGet, "/api/scatter.png?x=alcohol&y=sulphates", nil))
	assert.Equal(t, w.Code, http.StatusOK)
	assert.Equal(t, w.Header().Get("Content-Type"), "image/png")
	assert.Equal(t, w.Body.String(), "\x89PNG")
}

func TestReadOnlyEndpoints(t *testing.T) {
	r, backend := newTestRouter(t, "")
	backend.EXPECT().Fields().Return(features.Fields())
	backend.EXPECT().Columns().Return(explore.Columns())
	backend.EXPECT().Correlation().Return(explore.CorrelationMatrix{Columns: []string{"a"}, Values: [][]float64{{1}}})
	backend.EXPECT().Metrics().Return(models.Report{Model: "LogisticRegression", Accuracy: 0.75})
	backend.EXPECT().Summary().Return(app.Summary{Model: "LogisticRegression", Train: 8, Test: 2})

	w := do(r, httptest.NewRequest(http.MethodGet, "/api/fields", nil))
	assert.Equal(t, w.Code, http.StatusOK)
	body := decode(t, w)
	assert.Equal(t, body["title"], "Wine Quality Prediction")
	assert.Assert(t, is.Len(body["fields"], 11))

	w = do(r, httptest.NewRequest(http.MethodGet, "/api/columns", nil))
	assert.Assert(t, is.Len(decode(t, w)["columns"], 12))

	w = do(r, httptest.NewRequest(http.MethodGet, "/api/correlation", nil))
	assert.Equal(t, w.Code, http.StatusOK)

	w = do(r, httptest.NewRequest(http.MethodGet, "/api/metrics", nil))
	assert.Equal(t, decode(t, w)["accuracy"], 0.75)

	w = do(r, httptest.NewRequest(http.MethodGet, "/api/summary", nil))
	assert.Equal(t, decode(t, w)["test"], float64(2))

	w = do(r, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, w.Code, http.StatusOK)
}

func TestDashboardPage(t *testing.T) {
	dir := t.TempDir()
	page := "<title>Wine Quality Prediction</title>"
	assert.NilError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(page), 0o644))
	r, _ := newTestRouter(t, dir)

	w := do(r, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	assert.Equal(t, w.Code, http.StatusOK)
	assert.Assert(t, is.Contains(w.Body.String(), "Wine Quality Prediction"))

	w = do(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, w.Code, http.StatusFound)
	assert.Equal(t, w.Header().Get("Location"), "/dashboard")
}

func TestInputString(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{json.Number("7.4"), "7.4"},
		{0.5, "0.5"},
		{"3.51", "3.51"},
		{true, "true"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			assert.Equal(t, inputString(tt.in), tt.want)
		})
	}
}
