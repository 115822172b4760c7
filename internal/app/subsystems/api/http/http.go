package http

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"reflect"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/statcalc/statcalc/internal/api"
	"github.com/statcalc/statcalc/internal/metrics"
	"github.com/statcalc/statcalc/pkg/history"
	"github.com/statcalc/statcalc/pkg/stats"
)

type Config struct {
	Addr    string        `flag:"addr" desc:"http server address" default:"0.0.0.0:8080"`
	Timeout time.Duration `flag:"timeout" desc:"http server graceful shutdown timeout" default:"10s"`
	Cors    Cors          `flag:"cors" desc:"http cors settings"`
}

type Cors struct {
	AllowOrigins []string `flag:"allow-origins" desc:"allowed origins, if not provided cors is not enabled" default:"*"`
}

// Calculator is the set of operations served over http.
type Calculator interface {
	AddData(float64)
	Dataset() []float64
	Clear()
	Mean() float64
	Median() float64
	Mode() (float64, []float64)
	StandardDeviation() float64
	NCr(int64, int64) float64
	NPr(int64, int64) float64
	Binomial(int64, int64, float64) float64
	EventOp(stats.EventOp, stats.EventInput) (*stats.Outcome, error)
	History() []history.Entry
	Undo() bool
	Redo() bool
}

type Http struct {
	config   *Config
	listener net.Listener
	server   *http.Server
}

func New(calc Calculator, metrics *metrics.Metrics, config *Config) (api.Subsystem, error) {
	listener, err := net.Listen("tcp", config.Addr)
	if err != nil {
		return nil, err
	}

	return &Http{
		config:   config,
		listener: listener,
		server: &http.Server{
			Handler: Handler(calc, metrics, config),
		},
	}, nil
}

// Handler returns the gin engine with every route and middleware
// registered.
func Handler(calc Calculator, metrics *metrics.Metrics, config *Config) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	useJsonFieldNames()

	r := gin.New()
	s := &server{calc: calc}

	// middleware
	r.Use(gin.CustomRecovery(recovery))
	r.Use(requestId())
	r.Use(logger())
	if metrics != nil {
		r.Use(observe(metrics))
	}
	if c, ok := corsConfig(config.Cors); ok {
		r.Use(cors.New(c))
	}

	// preflight requests are always answered, with or without cors
	r.OPTIONS("/*path", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Dataset API
	r.POST("/add-data", s.addData)
	r.GET("/dataset", s.dataset)
	r.POST("/clear", s.clear)

	// Calculate API
	r.GET("/calculate/mean", s.mean)
	r.GET("/calculate/median", s.median)
	r.GET("/calculate/mode", s.mode)
	r.GET("/calculate/sd", s.standardDeviation)
	r.POST("/calculate/ncr", s.ncr)
	r.POST("/calculate/npr", s.npr)
	r.POST("/calculate/binomial", s.binomial)
	r.POST("/calculate/event-op", s.eventOp)

	// History API
	r.GET("/history", s.history)
	r.POST("/undo", s.undo)
	r.POST("/redo", s.redo)

	// Health
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

func (h *Http) String() string {
	return "http"
}

func (h *Http) Kind() string {
	return "http"
}

func (h *Http) Addr() string {
	return h.listener.Addr().String()
}

func (h *Http) Start(errors chan<- error) {
	slog.Info("starting http server", "addr", h.Addr())
	if err := h.server.Serve(h.listener); err != nil && !isClosed(err) {
		errors <- err
	}
}

func (h *Http) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	return h.server.Shutdown(ctx)
}

type server struct {
	calc Calculator
}

// Helper functions

func isClosed(err error) bool {
	return errors.Is(err, http.ErrServerClosed) || errors.Is(err, net.ErrClosed)
}

func corsConfig(c Cors) (cors.Config, bool) {
	if len(c.AllowOrigins) == 0 {
		return cors.Config{}, false
	}

	config := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Content-Type"},
		MaxAge:       12 * time.Hour,
	}

	if slices.Contains(c.AllowOrigins, "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = c.AllowOrigins
	}

	return config, true
}

var jsonFieldNames sync.Once

// useJsonFieldNames makes validation errors refer to fields by their
// json name.
func useJsonFieldNames() {
	jsonFieldNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}
