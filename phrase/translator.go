// Package phrase supplies the wording used by inspection failure messages.
package phrase

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Translator retrieves message templates for phrase codes. data provides
// optional values substituted into {name} placeholders (for example,
// "count" or "quant").
type Translator interface {
	Message(code string, data map[string]string) string
}

var english = map[string]string{
	"failed_because":        "{quant} failed, because",
	"no_element":            "no element satisfied the check",
	"only_one_element":      "only 1 element satisfied the check",
	"only_n_elements":       "only {count} elements satisfied the check",
	"one_element_satisfied": "1 element satisfied the check",
	"n_elements_satisfied":  "{count} elements satisfied the check",
}

var japanese = map[string]string{
	"failed_because":        "{quant} は失敗しました",
	"no_element":            "検査を満たす要素がありませんでした",
	"only_one_element":      "検査を満たした要素は 1 個だけでした",
	"only_n_elements":       "検査を満たした要素は {count} 個だけでした",
	"one_element_satisfied": "1 個の要素が検査を満たしました",
	"n_elements_satisfied":  "{count} 個の要素が検査を満たしました",
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ dict map[string]string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := t.dict[code]
	if !ok {
		return code
	}
	return expand(msg, data)
}

func expand(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}

var currentTranslator Translator = dictTranslator{dict: english}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang == "ja" {
		currentTranslator = dictTranslator{dict: japanese}
		return
	}
	currentTranslator = dictTranslator{dict: english}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). Passing nil restores the built-in English one.
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{dict: english}
		return
	}
	currentTranslator = tr
}

// CatalogFromYAML builds a Translator from a YAML code-to-template mapping.
// Codes missing from the catalog fall back to the built-in dictionary for
// lang.
func CatalogFromYAML(lang string, data []byte) (Translator, error) {
	var overlay map[string]string
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("phrase: parse catalog: %w", err)
	}
	base := english
	if lang == "ja" {
		base = japanese
	}
	dict := make(map[string]string, len(base)+len(overlay))
	for k, v := range base {
		dict[k] = v
	}
	for k, v := range overlay {
		dict[k] = v
	}
	return dictTranslator{dict: dict}, nil
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
