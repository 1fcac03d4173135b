package exchange

// Kind discriminates the shapes a token endpoint response can take.
type Kind int

const (
	// KindSuccess means the provider returned an access token.
	KindSuccess Kind = iota
	// KindProviderError means the provider rejected the exchange with an
	// OAuth error code.
	KindProviderError
	// KindMalformed means the body parsed as JSON but carried neither an
	// access token nor an error field.
	KindMalformed
)

// DefaultTokenType is applied when the provider omits token_type.
const DefaultTokenType = "Bearer"

// Result is the classified outcome of a token exchange. Kind selects which
// of the field groups is populated.
type Result struct {
	Kind Kind

	// Populated for KindSuccess.
	AccessToken string
	TokenType   string
	ExpiresIn   int

	// Populated for KindProviderError.
	Error            string
	ErrorDescription string
}

// Message returns the provider's human-readable rejection reason, preferring
// error_description over the bare error code.
func (r Result) Message() string {
	if r.ErrorDescription != "" {
		return r.ErrorDescription
	}
	return r.Error
}

// tokenResponse is the raw wire shape of the token endpoint response, either
// {access_token, token_type?, expires_in?} or {error, error_description?}.
type tokenResponse struct {
	AccessToken      string `json:"access_token,omitempty"`
	TokenType        string `json:"token_type,omitempty"`
	ExpiresIn        int    `json:"expires_in,omitempty"`
	Error            string `json:"error,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// classify decides the variant by field presence rather than by the HTTP
// status of the response: providers report rejections inside a 200 body.
func (t tokenResponse) classify() Result {
	if t.Error != "" {
		return Result{
			Kind:             KindProviderError,
			Error:            t.Error,
			ErrorDescription: t.ErrorDescription,
		}
	}
	if t.AccessToken == "" {
		return Result{Kind: KindMalformed}
	}
	tokenType := t.TokenType
	if tokenType == "" {
		tokenType = DefaultTokenType
	}
	return Result{
		Kind:        KindSuccess,
		AccessToken: t.AccessToken,
		TokenType:   tokenType,
		ExpiresIn:   t.ExpiresIn,
	}
}
