package adsclient

import (
	"context"
	"errors"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/viper"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Erros de construção do client da API do Google Ads
var (
	ErrMissingCredentials    = errors.New("ADS_CONFIG_STRING não configurado")
	ErrIncompleteCredentials = errors.New("credenciais do Google Ads incompletas")
)

// Credentials é o blob YAML de configuração da API do Google Ads
// (ADS_CONFIG_STRING), no mesmo formato usado pelo deploy original
type Credentials struct {
	DeveloperToken  string `mapstructure:"developer_token"`
	ClientID        string `mapstructure:"client_id"`
	ClientSecret    string `mapstructure:"client_secret"`
	RefreshToken    string `mapstructure:"refresh_token"`
	LoginCustomerID string `mapstructure:"login_customer_id"`
}

// ParseCredentials interpreta o blob YAML de credenciais. É chamado no
// caminho da consulta: um blob malformado vira falha de extração do job.
func ParseCredentials(configString string) (*Credentials, error) {
	if strings.TrimSpace(configString) == "" {
		return nil, ErrMissingCredentials
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(strings.NewReader(configString)); err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao interpretar ADS_CONFIG_STRING")
	}

	creds := &Credentials{}
	if err := v.Unmarshal(creds); err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao decodificar credenciais do Google Ads")
	}

	if creds.DeveloperToken == "" || creds.ClientID == "" ||
		creds.ClientSecret == "" || creds.RefreshToken == "" {
		return nil, ErrIncompleteCredentials
	}

	return creds, nil
}

// TokenSource cria a fonte de tokens OAuth2 a partir do refresh token
func (c *Credentials) TokenSource(ctx context.Context) oauth2.TokenSource {
	conf := &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Endpoint:     google.Endpoint,
	}

	return conf.TokenSource(ctx, &oauth2.Token{RefreshToken: c.RefreshToken})
}
