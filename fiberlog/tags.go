package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	TagPid      = "pid"
	TagLatency  = "latency"
	TagStatus   = "status"
	TagMethod   = "method"
	TagPath     = "path"
	TagIP       = "ip"
	TagUA       = "ua"
	TagBody     = "body"
	TagResBody  = "resBody"
	TagBytesIn  = "bytesIn"
	TagBytesOut = "bytesOut"
	RequestID   = "requestId"

	requestIDHeader = "X-Request-ID"
	// тело запроса и ответа в логе обрезается
	maxBodyLen = 2048
)

// FuncTag значение поля лога для запроса
type FuncTag func(c *fiber.Ctx, d *data) interface{}

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

func getFuncTagMap(cfg Config, d *data) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(_ *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagLatency: func(_ *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagStatus: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Response().StatusCode()
		},
		TagMethod: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, _ *data) interface{} {
			return c.OriginalURL()
		},
		TagIP: func(c *fiber.Ctx, _ *data) interface{} {
			return c.IP()
		},
		TagUA: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Get(fiber.HeaderUserAgent)
		},
		TagBody: func(c *fiber.Ctx, _ *data) interface{} {
			return truncate(string(c.Body()))
		},
		TagResBody: func(c *fiber.Ctx, _ *data) interface{} {
			return truncate(string(c.Response().Body()))
		},
		TagBytesIn: func(c *fiber.Ctx, _ *data) interface{} {
			return len(c.Request().Body())
		},
		TagBytesOut: func(c *fiber.Ctx, _ *data) interface{} {
			return len(c.Response().Body())
		},
		RequestID: func(c *fiber.Ctx, _ *data) interface{} {
			return GetRequestID(c)
		},
	}
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}

// GetRequestID id запроса из заголовка, если его нет - новый, сохраняется в заголовок ответа
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(RequestID).(string); ok && id != "" {
		return id
	}
	id := c.Get(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Locals(RequestID, id)
	c.Set(requestIDHeader, id)
	return id
}

func truncate(value string) string {
	if len(value) <= maxBodyLen {
		return value
	}
	return value[:maxBodyLen] + "..."
}
