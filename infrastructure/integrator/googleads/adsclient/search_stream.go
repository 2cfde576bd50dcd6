package adsclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	adsdomain "github.com/dataapps-variant/google-ads-compaign-stat/infrastructure/integrator/googleads/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type searchStreamRequest struct {
	Query string `json:"query"`
}

// SearchStream submete uma query GAQL ao endpoint googleAds:searchStream e
// devolve a sequência de lotes de resultados na ordem recebida
func (c *GoogleAdsClient) SearchStream(ctx context.Context, customerID string, query string) ([]adsdomain.SearchStreamBatch, error) {
	creds, err := ParseCredentials(c.Cfg.Ads.ConfigString)
	if err != nil {
		return nil, err
	}

	token, err := creds.TokenSource(ctx).Token()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao obter token de acesso do Google Ads")
	}

	url := fmt.Sprintf("%s/%s/customers/%s/googleAds:searchStream",
		c.Cfg.Ads.Endpoint, c.Cfg.Ads.APIVersion, customerID)

	payload, err := json.Marshal(searchStreamRequest{Query: query})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar a query")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("developer-token", creds.DeveloperToken)
	if creds.LoginCustomerID != "" {
		req.Header.Set("login-customer-id", creds.LoginCustomerID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler a resposta do searchStream")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp.StatusCode, body)
	}

	var batches []adsdomain.SearchStreamBatch
	if err := json.Unmarshal(body, &batches); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return batches, nil
}

// apiError extrai a mensagem de erro da plataforma sem reclassificá-la.
// O searchStream pode devolver o erro como objeto ou como lista de objetos.
func apiError(statusCode int, body []byte) error {
	var list []adsdomain.ErrorResponse
	if err := json.Unmarshal(body, &list); err == nil && len(list) > 0 && list[0].Error.Message != "" {
		return formatAPIError(&list[0])
	}

	var single adsdomain.ErrorResponse
	if err := json.Unmarshal(body, &single); err == nil && single.Error.Message != "" {
		return formatAPIError(&single)
	}

	return fmt.Errorf("google ads api: status %d: %s", statusCode, strings.TrimSpace(string(body)))
}

func formatAPIError(resp *adsdomain.ErrorResponse) error {
	if resp.IsAuthError() {
		logrus.WithFields(logrus.Fields{
			"status": resp.Error.Status,
			"code":   resp.Error.Code,
		}).Error("Falha de autenticação na API do Google Ads, verifique as credenciais em ADS_CONFIG_STRING")
	}

	if resp.Error.Status != "" {
		return fmt.Errorf("google ads api: %s (%s)", resp.Error.Message, resp.Error.Status)
	}
	return fmt.Errorf("google ads api: %s", resp.Error.Message)
}
