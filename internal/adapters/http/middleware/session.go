package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/domain"
	"github.com/Nilakshi15/AI-Chat-bot-for-CG/internal/usecase"
	res "github.com/Nilakshi15/AI-Chat-bot-for-CG/pkg/http"
)

// Context keys set for downstream handlers.
const (
	ContextUser         = "user"
	ContextSessionToken = "session_token"
)

type SessionMiddleware struct {
	auth       usecase.AuthService
	cookieName string
}

func NewSessionMiddleware(auth usecase.AuthService, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{auth: auth, cookieName: cookieName}
}

// Handler resolves the caller's session and stores the user in the echo
// context. The cookie channel wins over the Authorization header when
// both carry a token.
func (m *SessionMiddleware) Handler(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := ExtractToken(c, m.cookieName)

		user, err := m.auth.Resolve(c.Request().Context(), token)
		if err != nil {
			traceID := requestIDFromCtx(c)
			switch {
			case errors.Is(err, domain.ErrUnauthenticated):
				return res.ErrorJSON(c, http.StatusUnauthorized, "not_authenticated", "not authenticated", traceID, nil)
			case errors.Is(err, domain.ErrInvalidSession):
				return res.ErrorJSON(c, http.StatusUnauthorized, "invalid_session", "invalid session", traceID, nil)
			case errors.Is(err, domain.ErrSessionExpired):
				return res.ErrorJSON(c, http.StatusUnauthorized, "session_expired", "session expired", traceID, nil)
			case errors.Is(err, domain.ErrUserNotFound):
				return res.ErrorJSON(c, http.StatusNotFound, "user_not_found", "user not found", traceID, nil)
			default:
				return res.ErrorJSON(c, http.StatusInternalServerError, "internal", "internal error", traceID, nil)
			}
		}

		c.Set(ContextUser, user)
		c.Set(ContextSessionToken, token)
		return next(c)
	}
}

// ExtractToken reads the session credential: designated cookie first,
// bearer header as fallback.
func ExtractToken(c echo.Context, cookieName string) string {
	if ck, err := c.Cookie(cookieName); err == nil && ck.Value != "" {
		return ck.Value
	}
	authz := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// UserFromCtx returns the resolved user set by Handler.
func UserFromCtx(c echo.Context) *domain.User {
	user, _ := c.Get(ContextUser).(*domain.User)
	return user
}

func requestIDFromCtx(c echo.Context) string {
	if reqID := c.Response().Header().Get(echo.HeaderXRequestID); reqID != "" {
		return reqID
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}
