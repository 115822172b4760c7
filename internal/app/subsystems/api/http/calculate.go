package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/statcalc/statcalc/internal/app/subsystems/api"
	"github.com/statcalc/statcalc/pkg/stats"
)

type ResultResponse struct {
	Result float64 `json:"result"`
}

type ModeResponse struct {
	Result float64   `json:"result"`
	Modes  []float64 `json:"modes"`
}

type EventOpResponse struct {
	Result float64 `json:"result"`
	Label  string  `json:"label"`
}

// result writes v, or a 422 when v is not a finite number.
func result(c *gin.Context, v float64) {
	if !stats.Finite(v) {
		err := fmt.Errorf("%w: %g", stats.ErrNotFinite, v)
		c.JSON(http.StatusUnprocessableEntity, api.RequestError(http.StatusUnprocessableEntity, err).Response())
		return
	}

	c.JSON(http.StatusOK, &ResultResponse{Result: v})
}

// Descriptive statistics

func (s *server) mean(c *gin.Context) {
	result(c, s.calc.Mean())
}

func (s *server) median(c *gin.Context) {
	result(c, s.calc.Median())
}

func (s *server) mode(c *gin.Context) {
	v, modes := s.calc.Mode()
	c.JSON(http.StatusOK, &ModeResponse{Result: v, Modes: modes})
}

func (s *server) standardDeviation(c *gin.Context) {
	result(c, s.calc.StandardDeviation())
}

// Combinatorics

type CombinatoricsBody struct {
	N *int64 `json:"n" binding:"required"`
	R *int64 `json:"r" binding:"required"`
}

func (s *server) ncr(c *gin.Context) {
	var body CombinatoricsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, api.RequestValidationError(err).Response())
		return
	}

	result(c, s.calc.NCr(*body.N, *body.R))
}

func (s *server) npr(c *gin.Context) {
	var body CombinatoricsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, api.RequestValidationError(err).Response())
		return
	}

	result(c, s.calc.NPr(*body.N, *body.R))
}

// Binomial

type BinomialBody struct {
	N *int64   `json:"n" binding:"required"`
	K *int64   `json:"k" binding:"required"`
	P *float64 `json:"p" binding:"required"`
}

func (s *server) binomial(c *gin.Context) {
	var body BinomialBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, api.RequestValidationError(err).Response())
		return
	}

	result(c, s.calc.Binomial(*body.N, *body.K, *body.P))
}

// Event Op

type EventOpBody struct {
	Op    stats.EventOp `json:"op" binding:"required,oneof=pa_not pb_not inter union xor neither"`
	PA    Probability   `json:"pa"`
	PB    Probability   `json:"pb"`
	PANot Probability   `json:"pa_not"`
	PBNot Probability   `json:"pb_not"`
	Inter Probability   `json:"inter"`
}

func (b *EventOpBody) Input() stats.EventInput {
	return stats.EventInput{
		PA:    b.PA.Value,
		PB:    b.PB.Value,
		PANot: b.PANot.Value,
		PBNot: b.PBNot.Value,
		Inter: b.Inter.Value,
	}
}

func (s *server) eventOp(c *gin.Context) {
	var body EventOpBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, api.RequestValidationError(err).Response())
		return
	}

	outcome, err := s.calc.EventOp(body.Op, body.Input())
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, stats.ErrNotFinite) {
			code = http.StatusUnprocessableEntity
		}

		c.JSON(code, api.RequestError(code, err).Response())
		return
	}

	c.JSON(http.StatusOK, &EventOpResponse{Result: outcome.Result, Label: outcome.Label})
}
