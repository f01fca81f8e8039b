package config

import (
	_ "embed"
	"os"
	"school-chat/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/core/stores/cache"
)

// //go:embed config.local.yaml
var embeddedConfig []byte

var config *Config

type Oss struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyId     string
	AccessKeySecret string
}

type Config struct {
	service.ServiceConf
	ListenOn string
	State    string
	Mongo    struct {
		URL string
		DB  string
	}
	Cache cache.CacheConf
	Oss   Oss
}

func NewConfig() (*Config, error) {
	c := new(Config)

	if len(embeddedConfig) == 0 {
		path := os.Getenv("CONFIG_PATH")
		log.Info("NewConfig load config from path: %s", path)
		err := conf.Load(path, c)
		if err != nil {
			return nil, err
		}
	} else {
		err := conf.LoadFromYamlBytes(embeddedConfig, c)
		if err != nil {
			return nil, err
		}
	}

	err := c.SetUp()
	if err != nil {
		return nil, err
	}
	config = c
	return c, nil
}

func GetConfig() *Config {
	return config
}
