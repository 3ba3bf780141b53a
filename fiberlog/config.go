package fiberlog

import "github.com/sirupsen/logrus"

// Config настройки middleware логирования запросов
type Config struct {
	Logger *logrus.Logger
	Tags   []string
	// SkipPaths пути без логирования успешных ответов (health-check)
	SkipPaths []string
}

var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		RequestID,
	},
}

func (c Config) skip(path string, status int) bool {
	if status >= 300 {
		return false
	}
	for _, p := range c.SkipPaths {
		if p == path {
			return true
		}
	}
	return false
}
