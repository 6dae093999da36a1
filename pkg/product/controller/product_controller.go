package controller

import "github.com/labstack/echo/v4"

type ProductController interface {
	Get(c echo.Context) error
	List(c echo.Context) error
	Create(c echo.Context) error
}
