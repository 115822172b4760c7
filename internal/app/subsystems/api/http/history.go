package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *server) history(c *gin.Context) {
	c.JSON(http.StatusOK, s.calc.History())
}

// Undo and redo answer 200 with an empty body whether or not there was
// anything to undo or redo.

func (s *server) undo(c *gin.Context) {
	s.calc.Undo()
	c.Status(http.StatusOK)
}

func (s *server) redo(c *gin.Context) {
	s.calc.Redo()
	c.Status(http.StatusOK)
}
