package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/teamvirrey/meetup-announcer/internal/config"
	"github.com/teamvirrey/meetup-announcer/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	s.T().Setenv("REDIS_ADDR", "")
	s.T().Setenv("POGOAPI_BASE_URL", "")
	s.T().Setenv("HTTP_TIMEOUT", "")
	s.T().Setenv("TEMPLATES_DIR", "")

	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Assert().Equal(config.DefaultRedisAddr, cfg.RedisAddr)
	s.Assert().Empty(cfg.PoGoAPIBaseURL)
	s.Assert().Equal(config.DefaultHTTPTimeout, cfg.HTTPTimeout)
	s.Assert().Empty(cfg.TemplatesDir)
}

func (s *ConfigTestSuite) TestOverrides() {
	s.T().Setenv("REDIS_ADDR", "redis.internal:6380")
	s.T().Setenv("POGOAPI_BASE_URL", "http://localhost:8080/api/v1")
	s.T().Setenv("HTTP_TIMEOUT", "5s")
	s.T().Setenv("TEMPLATES_DIR", "/etc/announcer/templates")

	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Assert().Equal("redis.internal:6380", cfg.RedisAddr)
	s.Assert().Equal("http://localhost:8080/api/v1", cfg.PoGoAPIBaseURL)
	s.Assert().Equal(5*time.Second, cfg.HTTPTimeout)
	s.Assert().Equal("/etc/announcer/templates", cfg.TemplatesDir)
}

func (s *ConfigTestSuite) TestInvalidTimeout() {
	s.T().Setenv("HTTP_TIMEOUT", "soon")
	_, err := config.Load()
	s.Assert().True(errors.IsInvalidArgument(err))

	s.T().Setenv("HTTP_TIMEOUT", "-3s")
	_, err = config.Load()
	s.Assert().True(errors.IsInvalidArgument(err))
}
