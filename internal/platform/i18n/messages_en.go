package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, "category.math", "Mathematics")
	message.SetString(lang, "category.science", "Science")
	message.SetString(lang, "category.history", "History")
	message.SetString(lang, "category.geography", "Geography")
	message.SetString(lang, "category.literature", "Literature")
	message.SetString(lang, "category.all", "All")
}
