package middleware

import (
	"github.com/gofiber/fiber/v2"
)

const (
	IPAddressContextKey = "ip_address"
	UserAgentContextKey = "user_agent"
)

// RequestInfo captures client attribution for audit logging. Respects the
// usual proxy headers before falling back to the socket address.
func RequestInfo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := c.Get("X-Forwarded-For")
		if ip == "" {
			ip = c.Get("X-Real-IP")
		}
		if ip == "" {
			ip = c.IP()
		}

		c.Locals(IPAddressContextKey, ip)
		c.Locals(UserAgentContextKey, c.Get("User-Agent"))

		return c.Next()
	}
}

func GetIPAddress(c *fiber.Ctx) string {
	ip, ok := c.Locals(IPAddressContextKey).(string)
	if !ok {
		return ""
	}
	return ip
}

func GetUserAgentFromContext(c *fiber.Ctx) string {
	ua, ok := c.Locals(UserAgentContextKey).(string)
	if !ok {
		return ""
	}
	return ua
}
