package i18n

import "strings"

// Translator renders the message for a ParseError code. Placeholders such
// as {target} are filled from data.
type Translator interface {
	Message(code string, data map[string]string) string
}

type dictTranslator struct{ lang string }

var dict = map[string]map[string]string{
	"en": {
		"invalid_json_type": "invalid JSON type for conversion to {target}",
		"invalid_structure": "invalid value structure for conversion to {target}",
		"missing_field":     "missing field \"{target}\"",
		"duplicate_key":     "duplicate key",
		"parse_error":       "parse error",
		"truncated":         "truncated",
	},
	"ja": {
		"invalid_json_type": "{target} へ変換できない JSON 型です",
		"invalid_structure": "{target} へ変換できない値の構造です",
		"missing_field":     "フィールド \"{target}\" がありません",
		"duplicate_key":     "キーが重複しています",
		"parse_error":       "解析エラー",
		"truncated":         "打ち切られました",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dict[t.lang][code]
	if !ok {
		return code
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage selects the built-in dictionary. Anything other than "ja"
// means English.
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator installs tr; nil restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T renders code with the installed Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
