package infra

import (
	"crypto/tls"
	"net/http"
	"os"
	"strings"

	opensearch "github.com/opensearch-project/opensearch-go/v2"
	"go.uber.org/zap"
)

func InitOpenSearch() *opensearch.Client {
	addresses := strings.Split(os.Getenv("OPENSEARCH_URL"), ",")

	client, err := opensearch.NewClient(opensearch.Config{
		Addresses: addresses,
		Username:  os.Getenv("OPENSEARCH_USERNAME"),
		Password:  os.Getenv("OPENSEARCH_PASSWORD"),
		Transport: &http.Transport{
			// Local single-node clusters run with self-signed certificates.
			TLSClientConfig: &tls.Config{InsecureSkipVerify: os.Getenv("OPENSEARCH_INSECURE") == "true"},
		},
	})
	if err != nil {
		zap.L().Fatal("error connecting to opensearch", zap.Error(err))
	}

	return client
}
