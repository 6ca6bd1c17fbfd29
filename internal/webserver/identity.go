package webserver

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

const userIDKey = "storefront.userID"

// DemoIdentity stamps every request with a fixed user. Meant for local runs and fixtures.
func DemoIdentity(userID uuid.UUID) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

// JWTIdentity accepts HS256 bearer tokens whose subject is the user id.
func JWTIdentity(secret []byte) echo.MiddlewareFunc {
	verify := echojwt.WithConfig(echojwt.Config{
		SigningKey:    secret,
		SigningMethod: echojwt.AlgorithmHS256,
		NewClaimsFunc: func(echo.Context) jwt.Claims {
			return new(jwt.RegisteredClaims)
		},
		// A missing, malformed or rejected token is always 401.
		ErrorHandler: func(_ echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid token").SetInternal(err)
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return verify(func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
			}

			subject, err := token.Claims.GetSubject()
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject").SetInternal(err)
			}

			userID, err := uuid.Parse(subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject").SetInternal(err)
			}

			c.Set(userIDKey, userID)
			return next(c)
		})
	}
}

// UserID returns the identity stamped by DemoIdentity or JWTIdentity.
func UserID(c echo.Context) uuid.UUID {
	userID, _ := c.Get(userIDKey).(uuid.UUID)
	return userID
}
