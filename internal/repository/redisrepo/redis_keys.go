package redisrepo

import "fmt"

const (
	SESSION_KEY = "admin-session:%s" // <key>
)

func SessionKey(key string) string {
	return fmt.Sprintf(SESSION_KEY, key)
}
