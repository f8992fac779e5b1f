package handler

import (
	"net/http"

	"scripturenotes/internal/contract"

	"github.com/labstack/echo/v4"
)

func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, &contract.HealthResponse{
		Status:  "ok",
		Message: "Scripture Notes API is running",
	})
}
