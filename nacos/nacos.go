package nacos

import (
	"fmt"

	"github.com/0xPolygonHermez/zkevm-node/log"
	"github.com/nacos-group/nacos-sdk-go/v2/clients"
	"github.com/nacos-group/nacos-sdk-go/v2/clients/naming_client"
	"github.com/nacos-group/nacos-sdk-go/v2/common/constant"
	"github.com/nacos-group/nacos-sdk-go/v2/model"
	"github.com/nacos-group/nacos-sdk-go/v2/vo"
	"github.com/pkg/errors"
)

const defaultScheme = "https"

var (
	client naming_client.INamingClient
	scheme = defaultScheme
)

// InitNacosClient starts the nacos naming client used to discover the verifier
func InitNacosClient(cfg Config) error {
	serverConfigs, err := getServerConfigs(cfg.NacosUrls)
	if err != nil {
		log.Error(fmt.Sprintf("failed to resolve nacos server url %s: %s", cfg.NacosUrls, err.Error()))
		return err
	}
	const timeoutMs = 5000
	c, err := clients.CreateNamingClient(map[string]interface{}{
		"serverConfigs": serverConfigs,
		"clientConfig": constant.ClientConfig{
			TimeoutMs:           timeoutMs,
			NotLoadCacheAtStart: true,
			NamespaceId:         cfg.NamespaceId,
			LogDir:              "/dev/null",
			LogLevel:            "error",
		},
	})
	if err != nil {
		log.Error(fmt.Sprintf("failed to create nacos client. error: %s", err.Error()))
		return err
	}
	client = c
	if cfg.Scheme != "" {
		scheme = cfg.Scheme
	}
	log.Info("nacos naming client started")
	return nil
}

// GetOneInstance returns the info of one healthy instance of the service
func GetOneInstance(serviceName string) (*model.Instance, error) {
	if client == nil {
		return nil, errors.New("nacos client is not initialized")
	}
	params := vo.SelectOneHealthInstanceParam{ServiceName: serviceName}
	return client.SelectOneHealthyInstance(params)
}

// GetOneURL returns the base URL of one healthy instance of the service
func GetOneURL(serviceName string) (string, error) {
	instance, err := GetOneInstance(serviceName)
	if err != nil {
		log.Debugf("nacos GetOneInstance serviceName[%v] err[%v]", serviceName, err)
		return "", err
	}
	return instanceURL(scheme, instance), nil
}

func instanceURL(scheme string, instance *model.Instance) string {
	return fmt.Sprintf("%s://%v:%v", scheme, instance.Ip, instance.Port)
}
