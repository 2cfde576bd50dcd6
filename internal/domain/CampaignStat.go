package domain

import "github.com/shopspring/decimal"

// CampaignStat é uma linha já transformada para o esquema da tabela de
// destino: uma combinação (campanha, data, dispositivo, tipo de rede).
type CampaignStat struct {
	EventDate          string
	ExternalCustomerID int64
	CampaignID         int64
	AdNetworkType      string
	Device             string
	Cost               decimal.Decimal
}

// CostFromMicros converte custo em micros (1.000.000 micros = 1 unidade da
// moeda) para o valor em unidades padrão. Decimal de ponto fixo, sem passar
// por float64.
func CostFromMicros(micros int64) decimal.Decimal {
	return decimal.New(micros, -6)
}
