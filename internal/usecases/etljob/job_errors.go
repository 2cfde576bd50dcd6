package etljob

import "errors"

// Kind classifica a falha de um job de ETL. O estágio que falhou define o
// Kind; o mapeamento para status HTTP acontece apenas na borda, no handler.
type Kind string

const (
	KindInvalidRequest    Kind = "invalid_request"
	KindExtractionFailure Kind = "extraction_failure"
	KindLoadFailure       Kind = "load_failure"
)

// JobError é um erro tipado do pipeline carregando a causa estruturada.
// Nenhum estágio captura e reclassifica o erro de outro.
type JobError struct {
	Kind  Kind
	Cause error
}

// Error implementa a interface error; a descrição da causa é propagada
// tal como recebida do serviço upstream
func (e *JobError) Error() string {
	return e.Cause.Error()
}

// Unwrap retorna o erro subjacente
func (e *JobError) Unwrap() error {
	return e.Cause
}

// NewInvalidRequest cria uma falha de validação da requisição
func NewInvalidRequest(cause error) *JobError {
	return &JobError{Kind: KindInvalidRequest, Cause: cause}
}

// NewExtractionFailure cria uma falha de extração na plataforma de anúncios
func NewExtractionFailure(cause error) *JobError {
	return &JobError{Kind: KindExtractionFailure, Cause: cause}
}

// NewLoadFailure cria uma falha de carga no warehouse
func NewLoadFailure(cause error) *JobError {
	return &JobError{Kind: KindLoadFailure, Cause: cause}
}

// KindOf devolve o Kind do erro, ou vazio quando o erro não veio do pipeline
func KindOf(err error) Kind {
	var jobErr *JobError
	if errors.As(err, &jobErr) {
		return jobErr.Kind
	}
	return ""
}
