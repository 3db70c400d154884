package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"

	"flocknet/dto"
	"flocknet/internal/apperr"
)

var validate = validator.New()

// userIDFrom reads the authenticated actor set by the JWT middleware.
func userIDFrom(c *fiber.Ctx) (bson.ObjectID, bool) {
	if v := c.Locals("user_id"); v != nil {
		if s, ok := v.(string); ok {
			if oid, err := bson.ObjectIDFromHex(s); err == nil {
				return oid, true
			}
		}
	}
	return bson.NilObjectID, false
}

func paramID(c *fiber.Ctx, name string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(c.Params(name))
	if err != nil {
		return bson.NilObjectID, apperr.Validation("invalid %s", name)
	}
	return oid, nil
}

func parseBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := validate.Struct(dst); err != nil {
		return apperr.Validation("%s", err.Error())
	}
	return nil
}

// fail maps a service error to the HTTP boundary. Unexpected errors are
// logged and masked.
func fail(c *fiber.Ctx, err error) error {
	msg := err.Error()
	if apperr.KindOf(err) == apperr.KindUnexpected {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		msg = "Internal server error"
	}
	return c.Status(apperr.Status(err)).JSON(dto.ErrorResponse{Error: msg})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "unauthorized"})
}
