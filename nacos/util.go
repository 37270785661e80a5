package nacos

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nacos-group/nacos-sdk-go/v2/common/constant"
)

func getServerConfigs(urls string) ([]constant.ServerConfig, error) {
	var configs []constant.ServerConfig
	for _, url := range strings.Split(urls, ",") {
		url = strings.TrimSpace(url)
		if url == "" {
			continue
		}
		laddr := strings.Split(url, ":")
		if len(laddr) != 2 { //nolint:gomnd
			return nil, fmt.Errorf("invalid nacos server address %q", url)
		}
		serverPort, err := strconv.ParseUint(laddr[1], 10, 64)
		if err != nil {
			return nil, err
		}
		configs = append(configs, constant.ServerConfig{
			IpAddr: laddr[0],
			Port:   serverPort,
		})
	}
	if len(configs) == 0 {
		return nil, fmt.Errorf("no nacos server configured")
	}
	return configs, nil
}
