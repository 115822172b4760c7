package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/statcalc/statcalc/internal/app/subsystems/api"
)

// Add Data

type AddDataBody struct {
	Value *float64 `json:"value" binding:"required"`
}

func (s *server) addData(c *gin.Context) {
	var body AddDataBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, api.RequestValidationError(err).Response())
		return
	}

	s.calc.AddData(*body.Value)
	c.String(http.StatusOK, "ok")
}

// Dataset

func (s *server) dataset(c *gin.Context) {
	c.JSON(http.StatusOK, s.calc.Dataset())
}

// Clear

func (s *server) clear(c *gin.Context) {
	s.calc.Clear()
	c.String(http.StatusOK, "ok")
}
