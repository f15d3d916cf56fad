package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v3"

	"orthoroute/routing"
	"orthoroute/svgexport"
)

// Server wires the router into a fiber application.
type Server struct {
	router *routing.Router
}

// NewServer creates an HTTP server around the given router.
func NewServer(router *routing.Router) *Server {
	return &Server{router: router}
}

// Register attaches all routes to the app.
func (s *Server) Register(app *fiber.App) {
	app.Get("/healthz", s.health)
	app.Post("/route", s.route)
	app.Post("/route/debug", s.routeDebug)
}

func (s *Server) health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// route computes a path and returns it as JSON. An unreachable pair is not
// an error; it answers 200 with an empty path.
func (s *Server) route(c fiber.Ctx) error {
	req, errResp := s.decode(c)
	if errResp != nil {
		return errResp
	}

	path, err := s.router.Route(req)
	if err != nil {
		return s.routeError(c, err)
	}
	return c.JSON(toResponse(path))
}

// routeDebug renders the full routing scene as an SVG document.
func (s *Server) routeDebug(c fiber.Ctx) error {
	req, errResp := s.decode(c)
	if errResp != nil {
		return errResp
	}

	path, diag, err := s.router.RouteDebug(req)
	if err != nil {
		return s.routeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/svg+xml")
	return c.SendString(svgexport.Render(req, path, diag))
}

// decode binds and converts the request body. The second return value is
// non-nil when the response has already been written.
func (s *Server) decode(c fiber.Ctx) (routing.Request, error) {
	var body routeRequest
	if err := c.Bind().Body(&body); err != nil {
		return routing.Request{}, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed request body",
		})
	}
	req, err := body.toRouting()
	if err != nil {
		return routing.Request{}, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return req, nil
}

func (s *Server) routeError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, routing.ErrInvalidGeometry):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, routing.ErrEndpointNotFound):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("[API] route failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}
