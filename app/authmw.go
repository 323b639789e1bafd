package app

import (
	"net/http"
	"strconv"
	"strings"

	"movie_rental_api/db"
	"movie_rental_api/models"
	"movie_rental_api/session"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// APIClaims：sub 是 api_user id，sid 指向 Redis 会话（吊销用）。
type APIClaims struct {
	Role      string `json:"role"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func AuthRequired(appSess *session.AppSessionStore, repo *db.Repo, cfg Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		var claims APIClaims
		tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !tok.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "invalid token"})
			return
		}

		// token 本身有效还不够，会话被吊销就拒绝
		as, err := appSess.Get(c.Request.Context(), claims.SessionID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "session revoked"})
			return
		}

		uid, _ := strconv.ParseInt(claims.Subject, 10, 64)
		if uid == 0 || uid != as.UserID {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}

		// 确认账号仍存在；没了就顺手清掉会话
		if _, err := repo.FindApiUserByID(c.Request.Context(), uid); err != nil {
			_ = appSess.Delete(c.Request.Context(), claims.SessionID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}

		c.Set("apiUserID", uid)
		c.Set("role", claims.Role)
		c.Set("sessionID", claims.SessionID)
		c.Next()
	}
}

// AdminOnly：ADMIN / SUPERUSER 以外一律 403
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get("role")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}
		role, _ := v.(string)
		if role != models.RoleAdmin && role != models.RoleSuperuser {
			c.AbortWithStatusJSON(http.StatusForbidden, H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
