// Package i18n provides internationalization support for the storefront service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := getDefaultMessages()[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":         "Invalid request",
			"error.invalid_request_body":    "Invalid request body",
			"error.internal_error":          "An unexpected error occurred",
			"error.unauthorized":            "Unauthorized",
			"error.invalid_credentials":     "Invalid username or password",
			"error.api_key_required":        "API key is required",
			"error.invalid_api_key":         "Invalid API key",
			"error.forbidden":               "Forbidden",
			"error.not_found":               "Not found",
			"error.rate_limit_exceeded":     "Too many requests, please try again later",
			"error.conflict":                "Conflict",
			"error.invalid_token":           "Invalid or expired token",
			"error.token_required":          "Authentication token is required",
			"error.combo_not_found":         "Combo not found",
			"error.session_not_found":       "Selection session not found or expired",
			"error.cart_not_found":          "Cart not found",
			"error.selection_full":          "All entree selections are already filled",
			"error.base_choice_not_allowed": "This combo does not take a base choice",
			"error.item_unknown":            "This item is not available in this combo",
			"error.item_in_other_pool":      "This item is already part of your selection",
			"error.incomplete_selection":    "Please complete your selection first",

			// Success messages
			"success.quote_calculated": "Quote calculated successfully",
		},
		"pt": {
			// Error messages
			"error.invalid_request":         "Requisição inválida",
			"error.invalid_request_body":    "Corpo da requisição inválido",
			"error.internal_error":          "Ocorreu um erro inesperado",
			"error.unauthorized":            "Não autorizado",
			"error.invalid_credentials":     "Usuário ou senha inválidos",
			"error.api_key_required":        "Chave de API é obrigatória",
			"error.invalid_api_key":         "Chave de API inválida",
			"error.forbidden":               "Proibido",
			"error.not_found":               "Não encontrado",
			"error.rate_limit_exceeded":     "Muitas requisições, tente novamente mais tarde",
			"error.conflict":                "Conflito",
			"error.invalid_token":           "Token inválido ou expirado",
			"error.token_required":          "Token de autenticação é obrigatório",
			"error.combo_not_found":         "Combo não encontrado",
			"error.session_not_found":       "Sessão de seleção não encontrada ou expirada",
			"error.cart_not_found":          "Carrinho não encontrado",
			"error.selection_full":          "Todas as seleções de pratos já estão preenchidas",
			"error.base_choice_not_allowed": "Este combo não aceita escolha de base",
			"error.item_unknown":            "Este item não está disponível neste combo",
			"error.item_in_other_pool":      "Este item já faz parte da sua seleção",
			"error.incomplete_selection":    "Complete sua seleção primeiro",

			// Success messages
			"success.quote_calculated": "Cotação calculada com sucesso",
		},
		"nl": {
			// Error messages
			"error.invalid_request":         "Ongeldig verzoek",
			"error.invalid_request_body":    "Ongeldige aanvraag body",
			"error.internal_error":          "Er is een onverwachte fout opgetreden",
			"error.unauthorized":            "Niet geautoriseerd",
			"error.invalid_credentials":     "Ongeldige gebruikersnaam of wachtwoord",
			"error.api_key_required":        "API-sleutel is vereist",
			"error.invalid_api_key":         "Ongeldige API-sleutel",
			"error.forbidden":               "Verboden",
			"error.not_found":               "Niet gevonden",
			"error.rate_limit_exceeded":     "Te veel verzoeken, probeer het later opnieuw",
			"error.conflict":                "Conflict",
			"error.invalid_token":           "Ongeldig of verlopen token",
			"error.token_required":          "Authenticatietoken is vereist",
			"error.combo_not_found":         "Combo niet gevonden",
			"error.session_not_found":       "Selectiesessie niet gevonden of verlopen",
			"error.cart_not_found":          "Winkelwagen niet gevonden",
			"error.selection_full":          "Alle gerechtkeuzes zijn al ingevuld",
			"error.base_choice_not_allowed": "Deze combo heeft geen basiskeuze",
			"error.item_unknown":            "Dit item is niet beschikbaar in deze combo",
			"error.item_in_other_pool":      "Dit item is al onderdeel van je selectie",
			"error.incomplete_selection":    "Maak eerst je selectie compleet",

			// Success messages
			"success.quote_calculated": "Offerte succesvol berekend",
		},
	}
}
