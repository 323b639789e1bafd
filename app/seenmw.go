// app/seenmw.go
package app

import (
	"fmt"
	"time"

	"movie_rental_api/db"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func TouchLastSeen(repo *db.Repo, rdb *redis.Client, throttle time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, ok := c.Get("apiUserID")
		if !ok {
			c.Next()
			return
		}
		uid, _ := v.(int64)
		if uid == 0 {
			c.Next()
			return
		}

		key := fmt.Sprintf("api:lastseen:%d", uid)
		if ok, _ := rdb.SetNX(c, key, "1", throttle).Result(); ok {
			_ = repo.TouchApiUserSeen(c, uid) // 忽略错误，不阻塞请求
		}
		c.Next()
	}
}
