package problems

import (
	"fmt"
	"strings"
)

// Supported locales. English is the default; Portuguese messages are kept for
// the user-facing fixed strings.
const (
	LocaleEN = "en"
	LocalePT = "pt"
)

// MatchLocale resolves an Accept-Language header value to a supported locale.
// Only the first language tag is considered; anything that is not Portuguese
// falls back to English.
func MatchLocale(acceptLanguage string) string {
	tag := acceptLanguage
	if i := strings.IndexAny(tag, ",;"); i >= 0 {
		tag = tag[:i]
	}
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "pt" || strings.HasPrefix(tag, "pt-") {
		return LocalePT
	}
	return LocaleEN
}

const (
	msgGenericError        = "generic-error"
	msgInvalidDataDetail   = "invalid-data-detail"
	msgRouteNotFound       = "route-not-found"
	msgBodySyntax          = "body-syntax"
	msgBodyUnknownProperty = "body-unknown-property"
	msgBodyInvalidValue    = "body-invalid-value"
	msgInvalidURLParameter = "invalid-url-parameter"
	msgViolationRequired   = "violation-required"
	msgViolationInvalid    = "violation-invalid"
)

var messages = map[string]map[string]string{
	LocaleEN: {
		msgGenericError:        "An unexpected internal error occurred. Try again and, if the problem persists, contact the system administrator.",
		msgInvalidDataDetail:   "One or more fields are invalid. Fill them in correctly and try again.",
		msgRouteNotFound:       "The resource %s you tried to access does not exist.",
		msgBodySyntax:          "The request body is invalid. Check it for syntax errors.",
		msgBodyUnknownProperty: "The property '%s' does not exist. Fix or remove it and try again.",
		msgBodyInvalidValue:    "The property '%s' received the value '%s', which is of an invalid type. Provide a value compatible with type %s.",
		msgInvalidURLParameter: "The URL parameter '%s' received the value '%s', which is of an invalid type. Provide a value compatible with type %s.",
		msgViolationRequired:   "must not be blank",
		msgViolationInvalid:    "is invalid",
	},
	LocalePT: {
		msgGenericError:        "Ocorreu um erro interno inesperado no sistema. Tente novamente e se o problema persistir, entre em contato com o administrador do sistema.",
		msgInvalidDataDetail:   "Um ou mais campos estão inválidos. Faça o preenchimento correto e tente novamente.",
		msgRouteNotFound:       "O recurso %s, que você tentou acessar, é inexistente.",
		msgBodySyntax:          "O corpo da requisição está inválido. Verifique erro de sintaxe.",
		msgBodyUnknownProperty: "A propriedade '%s' não existe. Corrija ou remova essa propriedade e tente novamente.",
		msgBodyInvalidValue:    "A propriedade '%s' recebeu o valor '%s', que é de um tipo inválido. Corrija e informe um valor compatível com o tipo %s.",
		msgInvalidURLParameter: "O parâmetro de URL '%s' recebeu o valor '%s', que é de um tipo inválido. Corrija e informe um valor compatível com o tipo %s.",
		msgViolationRequired:   "não deve estar em branco",
		msgViolationInvalid:    "é inválido",
	},
}

// message resolves a message key to its localized text. Unknown locales fall
// back to English; unknown keys return the key itself so a missing entry is
// visible instead of silent.
func message(locale, key string, args ...any) string {
	table, ok := messages[locale]
	if !ok {
		table = messages[LocaleEN]
	}
	text, ok := table[key]
	if !ok {
		text = messages[LocaleEN][key]
	}
	if text == "" {
		return key
	}
	if len(args) == 0 {
		return text
	}
	return fmt.Sprintf(text, args...)
}

// ResolveViolation resolves a validation violation code to a localized
// message. Unknown codes resolve to the generic invalid-value text.
func ResolveViolation(locale, code string) string {
	switch code {
	case "required":
		return message(locale, msgViolationRequired)
	default:
		return message(locale, msgViolationInvalid)
	}
}
