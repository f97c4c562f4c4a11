package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.BrazilianPortuguese

	message.SetString(lang, "category.math", "Matemática")
	message.SetString(lang, "category.science", "Ciências")
	message.SetString(lang, "category.history", "História")
	message.SetString(lang, "category.geography", "Geografia")
	message.SetString(lang, "category.literature", "Literatura")
	message.SetString(lang, "category.all", "Todos")
}
