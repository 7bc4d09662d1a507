package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"cotafrete/internal/domain/entities"
	"cotafrete/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

// PrincipalKey is the gin context key under which AuthMiddleware stores the
// authenticated entities.Principal.
const PrincipalKey = "principal"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)

// Claims are the marketplace JWT claims. Subject carries the user id.
type Claims struct {
	UserType  string `json:"user_type"`
	CpfOuCnpj string `json:"cpf_ou_cnpj,omitempty"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the Bearer token and stores the resulting
// Principal in the gin context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims, err := ValidateJWT(tokenParts[1])
		if err != nil {
			logrus.WithError(err).Warn("invalid JWT")
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(PrincipalKey, entities.Principal{
			ID:        claims.Subject,
			UserType:  entities.UserType(claims.UserType),
			CpfOuCnpj: claims.CpfOuCnpj,
		})
		c.Next()
	}
}

// GenerateJWT issues a signed token for a user, used by the auth service and
// by tests.
func GenerateJWT(p entities.Principal, ttl time.Duration) (string, time.Time, error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return "", time.Time{}, fmt.Errorf("JWT_SECRET not configured")
	}

	expirationTime := time.Now().Add(ttl)
	claims := &Claims{
		UserType:  string(p.UserType),
		CpfOuCnpj: p.CpfOuCnpj,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "cotafrete",
			Subject:   p.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, expirationTime, nil
}

// ValidateJWT parses and verifies a token, returning its claims.
func ValidateJWT(tokenString string) (*Claims, error) {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET not configured")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to validate token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// PrincipalFromContext returns the Principal stored by AuthMiddleware.
func PrincipalFromContext(c *gin.Context) (entities.Principal, bool) {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return entities.Principal{}, false
	}
	p, ok := v.(entities.Principal)
	return p, ok
}

// CORSMiddleware allows cross-origin requests from the web frontend.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Cache-Control, X-Requested-With")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
