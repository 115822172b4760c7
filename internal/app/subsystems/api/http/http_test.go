package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/statcalc/statcalc/internal/app/service"
	"github.com/statcalc/statcalc/internal/app/subsystems/api"
	"github.com/statcalc/statcalc/internal/app/subsystems/store/file"
	"github.com/statcalc/statcalc/internal/metrics"
	"github.com/statcalc/statcalc/pkg/history"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, origins ...string) http.Handler {
	t.Helper()

	s, err := file.New(&file.Config{Dir: t.TempDir(), Dataset: "dataset.json", History: "history.json"})
	require.NoError(t, err)
	require.NoError(t, s.Start())

	m := metrics.New(prometheus.NewRegistry())
	calc := service.New(s, m, &service.Config{HistoryCapacity: 20})
	require.NoError(t, calc.Load())

	return Handler(calc, m, &Config{Cors: Cors{AllowOrigins: origins}})
}

func do(t *testing.T, h http.Handler, method string, path string, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestDataset(t *testing.T) {
	h := setup(t, "*")

	w := do(t, h, "GET", "/dataset", "")
	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	for _, v := range []string{"3", "1.5", "-2", "3"} {
		w := do(t, h, "POST", "/add-data", `{"value": `+v+`}`)
		assert.Equal(t, 200, w.Code)
		assert.Equal(t, "ok", w.Body.String())
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	}

	w = do(t, h, "GET", "/dataset", "")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, []float64{-2, 1.5, 3, 3}, decode[[]float64](t, w))

	w = do(t, h, "POST", "/clear", "")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "ok", w.Body.String())

	w = do(t, h, "GET", "/dataset", "")
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestAddDataInvalid(t *testing.T) {
	h := setup(t, "*")

	for _, tc := range []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "Missing",
			body:    `{}`,
			message: "The field value is required.",
		},
		{
			name:    "WrongType",
			body:    `{"value": "three"}`,
			message: "The field value must be of type float64.",
		},
		{
			name:    "Syntax",
			body:    `{"value": 1`,
			message: "",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, h, "POST", "/add-data", tc.body)
			assert.Equal(t, 400, w.Code)

			res := decode[api.ErrorResponse](t, w)
			require.NotNil(t, res.Error)
			assert.Equal(t, 400, res.Error.Code)
			assert.Equal(t, "The request is invalid", res.Error.Message)
			require.Len(t, res.Error.Details, 1)
			assert.Equal(t, "FieldValidationError", res.Error.Details[0].Type)
			if tc.message != "" {
				assert.Equal(t, tc.message, res.Error.Details[0].Message)
			}
		})
	}

	// rejected requests leave the dataset untouched
	assert.JSONEq(t, `[]`, do(t, h, "GET", "/dataset", "").Body.String())
}

func TestDescriptive(t *testing.T) {
	h := setup(t, "*")

	for _, v := range []string{"4", "2", "9", "4", "5", "4", "7", "5"} {
		require.Equal(t, 200, do(t, h, "POST", "/add-data", `{"value": `+v+`}`).Code)
	}

	for _, tc := range []struct {
		path     string
		expected string
	}{
		{"/calculate/mean", `{"result": 5}`},
		{"/calculate/median", `{"result": 4.5}`},
		{"/calculate/mode", `{"result": 4, "modes": [4]}`},
		{"/calculate/sd", `{"result": 2}`},
	} {
		t.Run(tc.path, func(t *testing.T) {
			w := do(t, h, "GET", tc.path, "")
			assert.Equal(t, 200, w.Code)
			assert.JSONEq(t, tc.expected, w.Body.String())
		})
	}

	w := do(t, h, "GET", "/history", "")
	assert.Equal(t, 200, w.Code)
	assert.Equal(t, []history.Entry{
		{Op: "Mean", Res: 5},
		{Op: "Median", Res: 4.5},
		{Op: "Mode", Res: 4},
		{Op: "Std Dev", Res: 2},
	}, decode[[]history.Entry](t, w))
}

func TestDescriptiveEmpty(t *testing.T) {
	h := setup(t, "*")

	assert.JSONEq(t, `{"result": 0}`, do(t, h, "GET", "/calculate/mean", "").Body.String())
	assert.JSONEq(t, `{"result": 0, "modes": []}`, do(t, h, "GET", "/calculate/mode", "").Body.String())
}

func TestCombinatorics(t *testing.T) {
	h := setup(t, "*")

	for _, tc := range []struct {
		path     string
		body     string
		code     int
		expected string
	}{
		{"/calculate/ncr", `{"n": 5, "r": 2}`, 200, `{"result": 10}`},
		{"/calculate/ncr", `{"n": 5, "r": 6}`, 200, `{"result": 0}`},
		{"/calculate/ncr", `{"n": 5, "r": 0}`, 200, `{"result": 1}`},
		{"/calculate/npr", `{"n": 5, "r": 2}`, 200, `{"result": 20}`},
		{"/calculate/npr", `{"n": 5, "r": -1}`, 200, `{"result": 0}`},
		{"/calculate/binomial", `{"n": 10, "k": 0, "p": 0.5}`, 200, `{"result": 0.0009765625}`},
		{"/calculate/binomial", `{"n": 10, "k": 2, "p": 1.5}`, 200, `{"result": 0}`},
	} {
		t.Run(tc.path, func(t *testing.T) {
			w := do(t, h, "POST", tc.path, tc.body)
			assert.Equal(t, tc.code, w.Code)
			assert.JSONEq(t, tc.expected, w.Body.String())
		})
	}

	assert.Len(t, decode[[]history.Entry](t, do(t, h, "GET", "/history", "")), 7)
}

func TestCombinatoricsInvalid(t *testing.T) {
	h := setup(t, "*")

	w := do(t, h, "POST", "/calculate/ncr", `{"n": 5}`)
	assert.Equal(t, 400, w.Code)

	res := decode[api.ErrorResponse](t, w)
	require.Len(t, res.Error.Details, 1)
	assert.Equal(t, "The field r is required.", res.Error.Details[0].Message)

	w = do(t, h, "POST", "/calculate/binomial", `{"n": 5, "k": 1}`)
	assert.Equal(t, 400, w.Code)

	w = do(t, h, "POST", "/calculate/npr", `{"n": 1.5, "r": 1}`)
	assert.Equal(t, 400, w.Code)

	// nothing is recorded for rejected requests
	assert.JSONEq(t, `[]`, do(t, h, "GET", "/history", "").Body.String())
}

func TestEventOp(t *testing.T) {
	h := setup(t, "*")

	for _, tc := range []struct {
		name   string
		body   string
		label  string
		result float64
	}{
		{
			name:   "NotA",
			body:   `{"op": "pa_not", "pa": 0.3, "pb": 0.5}`,
			label:  "P(A')",
			result: 0.7,
		},
		{
			name:   "NotBFromComplement",
			body:   `{"op": "pb_not", "pa": "0.3", "pb_not": "0.25"}`,
			label:  "P(B')",
			result: 0.25,
		},
		{
			name:   "Inter",
			body:   `{"op": "inter", "pa": 0.5, "pb": 0.4}`,
			label:  "P(AnB)",
			result: 0.2,
		},
		{
			name:   "UnionFromStrings",
			body:   `{"op": "union", "pa": "0.5", "pb": "0.2", "pa_not": "", "pb_not": null}`,
			label:  "P(AuB)",
			result: 0.6,
		},
		{
			name:   "XorFromIntersection",
			body:   `{"op": "xor", "pa": 0.5, "inter": 0.25}`,
			label:  "P(AxB)",
			result: 0.5,
		},
		{
			name:   "Neither",
			body:   `{"op": "neither", "pa_not": 0.5, "pb_not": 0.5}`,
			label:  "P((AuB)')",
			result: 0.25,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, h, "POST", "/calculate/event-op", tc.body)
			require.Equal(t, 200, w.Code, w.Body.String())

			res := decode[EventOpResponse](t, w)
			assert.Equal(t, tc.label, res.Label)
			assert.InDelta(t, tc.result, res.Result, 1e-12)
		})
	}
}

func TestEventOpInvalid(t *testing.T) {
	h := setup(t, "*")

	for _, tc := range []struct {
		name    string
		body    string
		dtype   string
		message string
	}{
		{
			name:    "Unresolved",
			body:    `{"op": "inter", "pa": "0.5", "pb": ""}`,
			dtype:   "RequestError",
			message: "P(A) and P(B) could not be resolved from the given probabilities",
		},
		{
			name:    "ZeroPA",
			body:    `{"op": "union", "pa": 0, "inter": 0.1}`,
			dtype:   "RequestError",
			message: "P(A) and P(B) could not be resolved from the given probabilities",
		},
		{
			name:    "UnknownOp",
			body:    `{"op": "both", "pa": 0.5, "pb": 0.5}`,
			dtype:   "FieldValidationError",
			message: "The field op must be one of pa_not, pb_not, inter, union, xor, or neither.",
		},
		{
			name:    "MissingOp",
			body:    `{"pa": 0.5, "pb": 0.5}`,
			dtype:   "FieldValidationError",
			message: "The field op is required.",
		},
		{
			name:  "NotANumber",
			body:  `{"op": "union", "pa": "half", "pb": 0.5}`,
			dtype: "FieldValidationError",
		},
		{
			name:  "NaN",
			body:  `{"op": "union", "pa": "NaN", "pb": "0.5"}`,
			dtype: "FieldValidationError",
		},
		{
			name:  "Inf",
			body:  `{"op": "pb_not", "pa": 0.5, "pb": "-Inf"}`,
			dtype: "FieldValidationError",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, h, "POST", "/calculate/event-op", tc.body)
			assert.Equal(t, 400, w.Code)

			res := decode[api.ErrorResponse](t, w)
			require.NotNil(t, res.Error)
			require.Len(t, res.Error.Details, 1)
			assert.Equal(t, tc.dtype, res.Error.Details[0].Type)
			if tc.message != "" {
				assert.Equal(t, tc.message, res.Error.Details[0].Message)
			}
		})
	}

	assert.JSONEq(t, `[]`, do(t, h, "GET", "/history", "").Body.String())
}

func TestEventOpNotFinite(t *testing.T) {
	h := setup(t, "*")

	// P(B) = P(A∩B)/P(A) overflows
	w := do(t, h, "POST", "/calculate/event-op", `{"op": "pb_not", "pa": 1e-320, "inter": 0.5}`)
	assert.Equal(t, 422, w.Code)

	res := decode[api.ErrorResponse](t, w)
	require.NotNil(t, res.Error)
	require.Len(t, res.Error.Details, 1)
	assert.Equal(t, "result is not a finite number: P(B') = -Inf", res.Error.Details[0].Message)

	assert.JSONEq(t, `[]`, do(t, h, "GET", "/history", "").Body.String())
}

func TestNotFinite(t *testing.T) {
	h := setup(t, "*")

	for i := 0; i < 2; i++ {
		require.Equal(t, 200, do(t, h, "POST", "/add-data", `{"value": 1e308}`).Code)
	}

	for _, path := range []string{"/calculate/mean", "/calculate/median", "/calculate/sd"} {
		t.Run(path, func(t *testing.T) {
			w := do(t, h, "GET", path, "")
			assert.Equal(t, 422, w.Code)

			res := decode[api.ErrorResponse](t, w)
			require.NotNil(t, res.Error)
			assert.Equal(t, 422, res.Error.Code)
			require.Len(t, res.Error.Details, 1)
			assert.Contains(t, res.Error.Details[0].Message, "result is not a finite number")
		})
	}

	// nothing was recorded and the history stays serviceable
	w := do(t, h, "GET", "/history", "")
	require.Equal(t, 200, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	require.Equal(t, 200, do(t, h, "POST", "/calculate/ncr", `{"n": 4, "r": 2}`).Code)
	assert.Equal(t, []history.Entry{{Op: "nCr", Res: 6}}, decode[[]history.Entry](t, do(t, h, "GET", "/history", "")))
}

func TestRecovery(t *testing.T) {
	// every calculator call panics
	h := Handler(struct{ Calculator }{}, nil, &Config{})

	w := do(t, h, "GET", "/calculate/mean", "")
	assert.Equal(t, 500, w.Code)

	res := decode[api.ErrorResponse](t, w)
	require.NotNil(t, res.Error)
	require.Len(t, res.Error.Details, 1)
	assert.Equal(t, "ServerError", res.Error.Details[0].Type)
}

func TestUndoRedo(t *testing.T) {
	h := setup(t, "*")

	// no-ops still answer 200
	assert.Equal(t, 200, do(t, h, "POST", "/undo", "").Code)
	assert.Equal(t, 200, do(t, h, "POST", "/redo", "").Code)

	do(t, h, "POST", "/calculate/ncr", `{"n": 4, "r": 2}`)
	do(t, h, "POST", "/calculate/npr", `{"n": 4, "r": 2}`)

	w := do(t, h, "POST", "/undo", "")
	assert.Equal(t, 200, w.Code)
	assert.Empty(t, w.Body.String())
	assert.JSONEq(t, `[{"op": "nCr", "res": 6}]`, do(t, h, "GET", "/history", "").Body.String())

	w = do(t, h, "POST", "/redo", "")
	assert.Equal(t, 200, w.Code)
	assert.Empty(t, w.Body.String())
	assert.JSONEq(t, `[{"op": "nCr", "res": 6}, {"op": "nPr", "res": 12}]`, do(t, h, "GET", "/history", "").Body.String())
}

func TestCors(t *testing.T) {
	t.Run("Preflight", func(t *testing.T) {
		h := setup(t, "*")

		req := httptest.NewRequest("OPTIONS", "/add-data", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", "POST")
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")

		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.GreaterOrEqual(t, w.Code, 200)
		assert.Less(t, w.Code, 300)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	})

	t.Run("Simple", func(t *testing.T) {
		h := setup(t, "*")

		req := httptest.NewRequest("GET", "/dataset", nil)
		req.Header.Set("Origin", "http://localhost:3000")

		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Disabled", func(t *testing.T) {
		h := setup(t)

		req := httptest.NewRequest("GET", "/dataset", nil)
		req.Header.Set("Origin", "http://localhost:3000")

		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

		// options is answered without cors too
		assert.Equal(t, 200, do(t, h, "OPTIONS", "/clear", "").Code)
	})

	t.Run("Restricted", func(t *testing.T) {
		h := setup(t, "http://localhost:3000")

		req := httptest.NewRequest("GET", "/dataset", nil)
		req.Header.Set("Origin", "http://localhost:3000")

		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

		req = httptest.NewRequest("GET", "/dataset", nil)
		req.Header.Set("Origin", "http://evil.example")

		w = httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRequestId(t *testing.T) {
	h := setup(t, "*")

	w := do(t, h, "GET", "/healthz", "")
	assert.Equal(t, 200, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
	assert.Len(t, w.Header().Get("X-Request-Id"), 36)

	req := httptest.NewRequest("GET", "/healthz", nil)
	req.Header.Set("X-Request-Id", "abc")

	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get("X-Request-Id"))
}

func TestMetrics(t *testing.T) {
	s, err := file.New(&file.Config{Dir: t.TempDir(), Dataset: "dataset.json", History: "history.json"})
	require.NoError(t, err)
	require.NoError(t, s.Start())

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	h := Handler(service.New(s, m, &service.Config{}), m, &Config{})

	do(t, h, "GET", "/calculate/mean", "")
	do(t, h, "GET", "/calculate/mean", "")
	do(t, h, "GET", "/nope", "")

	families, err := reg.Gather()
	require.NoError(t, err)

	totals := map[string]float64{}
	for _, family := range families {
		if family.GetName() != "statcalc_api_total_requests" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "route" {
					totals[label.GetValue()] += metric.GetCounter().GetValue()
				}
			}
		}
	}

	assert.Equal(t, 2.0, totals["/calculate/mean"])
	assert.Equal(t, 1.0, totals["unmatched"])
}

func TestProbability(t *testing.T) {
	for _, tc := range []struct {
		name     string
		json     string
		expected *float64
		err      bool
	}{
		{name: "Number", json: `0.25`, expected: ptr(0.25)},
		{name: "Zero", json: `0`, expected: ptr(0)},
		{name: "String", json: `"0.75"`, expected: ptr(0.75)},
		{name: "PaddedString", json: `" 1 "`, expected: ptr(1)},
		{name: "EmptyString", json: `""`},
		{name: "Null", json: `null`},
		{name: "Garbage", json: `"abc"`, err: true},
		{name: "Bool", json: `true`, err: true},
		{name: "NaN", json: `"NaN"`, err: true},
		{name: "Inf", json: `"Inf"`, err: true},
		{name: "NegativeInfinity", json: `"-infinity"`, err: true},
		{name: "OutOfRange", json: `"1e400"`, err: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var p Probability
			err := json.Unmarshal([]byte(tc.json), &p)
			if tc.err {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, p.Value)
		})
	}
}

func ptr(f float64) *float64 {
	return &f
}
