package redis_test

import (
	"context"
	"crypto/tls"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/harsheetasys/pokemon-battle-simulation/internal/redis"
)

type ClientTestSuite struct {
	suite.Suite
	server *miniredis.Miniredis
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.server = miniredis.RunT(s.T())
}

func (s *ClientTestSuite) TestNew_SingleAddress() {
	client, err := redis.New(redis.Topology{Addrs: []string{s.server.Addr()}}, nil)
	s.Require().NoError(err)
	defer func() { _ = client.Close() }()

	s.NoError(redis.Ping(context.Background(), client, time.Second))

	s.Require().NoError(client.Set(context.Background(), "battle:1", "x", 0).Err())
	s.True(s.server.Exists("battle:1"))

	_, err = client.Get(context.Background(), "battle:missing").Result()
	s.ErrorIs(err, redis.Nil)
}

func (s *ClientTestSuite) TestNew_Validation() {
	_, err := redis.New(redis.Topology{}, nil)
	s.Error(err)

	_, err = redis.New(redis.Topology{MasterName: "primary"}, nil)
	s.Error(err)

	_, err = redis.NewClient("", nil)
	s.Error(err)
}

func (s *ClientTestSuite) TestNew_ClusterAndFailover() {
	cluster, err := redis.New(redis.Topology{Addrs: []string{"a:6379", "b:6379"}}, &redis.Options{PoolSize: 4})
	s.Require().NoError(err)
	s.NotNil(cluster)
	_ = cluster.Close()

	failover, err := redis.New(redis.Topology{Addrs: []string{"s:26379"}, MasterName: "primary"}, nil)
	s.Require().NoError(err)
	s.NotNil(failover)
	_ = failover.Close()
}

func (s *ClientTestSuite) TestTLSConfig() {
	var none *redis.Options
	s.Nil(none.TLSConfig())
	s.Nil((&redis.Options{TLSInsecureSkipVerify: true}).TLSConfig())

	verified := (&redis.Options{UseTLS: true}).TLSConfig()
	s.Require().NotNil(verified)
	s.False(verified.InsecureSkipVerify)
	s.Equal(uint16(tls.VersionTLS12), verified.MinVersion)

	insecure := (&redis.Options{UseTLS: true, TLSInsecureSkipVerify: true}).TLSConfig()
	s.Require().NotNil(insecure)
	s.True(insecure.InsecureSkipVerify)
}
