package adsdomain

// SearchStreamBatch é um lote de resultados devolvido pelo endpoint
// googleAds:searchStream. A resposta completa é uma sequência de lotes.
type SearchStreamBatch struct {
	Results   []CampaignStatRow `json:"results"`
	FieldMask string            `json:"fieldMask,omitempty"`
	RequestID string            `json:"requestId,omitempty"`
}

// CampaignStatRow é um registro bruto para uma combinação
// (campanha, data, dispositivo, tipo de rede)
type CampaignStatRow struct {
	Campaign Campaign `json:"campaign"`
	Segments Segments `json:"segments"`
	Metrics  Metrics  `json:"metrics"`
	Customer Customer `json:"customer"`
}

// Campaign identifica a campanha. A API REST serializa int64 como string.
type Campaign struct {
	ResourceName string `json:"resourceName,omitempty"`
	ID           int64  `json:"id,string"`
}

// Segments carrega os segmentos selecionados na query. Os enums chegam já
// com o nome legível (ex.: "MOBILE", "SEARCH"), não com o código numérico.
type Segments struct {
	Date          string `json:"date"`
	Device        string `json:"device"`
	AdNetworkType string `json:"adNetworkType"`
}

type Metrics struct {
	CostMicros int64 `json:"costMicros,string"`
}

type Customer struct {
	ID int64 `json:"id,string"`
}
