package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"

	"flocknet/dto"
	"flocknet/model"
	"flocknet/services"
)

const sessionTTL = 15 * 24 * time.Hour

type AuthHandler struct {
	Users  services.UserStore
	Secret string
}

// POST /auth/signup
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var body dto.SignupReq
	if err := parseBody(c, &body); err != nil {
		return fail(c, err)
	}

	if existing, err := h.Users.FindByUsername(c.Context(), body.Username); err != nil {
		return fail(c, err)
	} else if existing != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "username is already taken"})
	}
	if existing, err := h.Users.FindByEmail(c.Context(), body.Email); err != nil {
		return fail(c, err)
	} else if existing != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "email is already taken"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return fail(c, err)
	}

	now := time.Now().UTC()
	user := &model.User{
		Username:       body.Username,
		FullName:       body.FullName,
		Email:          body.Email,
		PasswordHash:   string(hash),
		Following:      []bson.ObjectID{},
		LikedPosts:     []bson.ObjectID{},
		FavouritePosts: []bson.ObjectID{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := h.Users.Insert(c.Context(), user); err != nil {
		// unique index on username/email closes the check-then-insert race
		if mongo.IsDuplicateKeyError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "username or email is already taken"})
		}
		return fail(c, err)
	}

	token, err := h.issueToken(c, user.ID.Hex())
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"user": user, "token": token})
}

// POST /auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body dto.LoginReq
	if err := parseBody(c, &body); err != nil {
		return fail(c, err)
	}

	user, err := h.Users.FindByUsername(c.Context(), body.Username)
	if err != nil {
		return fail(c, err)
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)) != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid username or password"})
	}

	token, err := h.issueToken(c, user.ID.Hex())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"user": user, "token": token})
}

// POST /auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.JSON(dto.MessageResponse{Message: "Logged out successfully"})
}

// GET /auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	uid, ok := userIDFrom(c)
	if !ok {
		return unauthorized(c)
	}
	user, err := h.Users.FindByID(c.Context(), uid)
	if err != nil {
		return fail(c, err)
	}
	if user == nil {
		return unauthorized(c)
	}
	return c.JSON(user)
}

func (h *AuthHandler) issueToken(c *fiber.Ctx, uid string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   uid,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.Secret))
	if err != nil {
		return "", err
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    token,
		Expires:  now.Add(sessionTTL),
		HTTPOnly: true,
		SameSite: "Strict",
	})
	return token, nil
}
