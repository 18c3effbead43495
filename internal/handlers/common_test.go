package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/codehubhq/codehub-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{services.ErrNotFound, fiber.StatusNotFound},
		{services.ErrNotAuthorized, fiber.StatusForbidden},
		{services.ErrSelfFollow, fiber.StatusForbidden},
		{services.ErrProviderFailure, fiber.StatusServiceUnavailable},
		{assert.AnError, fiber.StatusBadRequest},
	}

	for _, tc := range cases {
		app := fiber.New()
		app.Get("/", func(c *fiber.Ctx) error {
			return serviceError(c, tc.err)
		})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
		require.NoError(t, err)
		assert.Equal(t, tc.status, resp.StatusCode, "error %v", tc.err)
	}
}

func TestPageParams(t *testing.T) {
	cases := []struct {
		url       string
		wantPage  int
		wantLimit int
	}{
		{"/?page=2&limit=5", 2, 5},
		{"/", 0, 10},
		{"/?page=-1&limit=0", 0, 10},
		{"/?limit=999", 0, 10},
		{"/?page=abc", 0, 10},
	}

	for _, tc := range cases {
		app := fiber.New()
		var page, limit int
		app.Get("/", func(c *fiber.Ctx) error {
			page, limit = pageParams(c, 10)
			return c.SendString("ok")
		})

		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, tc.url, nil))
		require.NoError(t, err)
		assert.Equal(t, tc.wantPage, page, "url %s", tc.url)
		assert.Equal(t, tc.wantLimit, limit, "url %s", tc.url)
	}
}
