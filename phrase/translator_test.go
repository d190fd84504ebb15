package phrase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestT_Defaults(t *testing.T) {
	assert.Equal(t, "no element satisfied the check", T("no_element", nil))
	assert.Equal(t, "only 3 elements satisfied the check", T("only_n_elements", map[string]string{"count": "3"}))
	assert.Equal(t, "forAll failed, because", T("failed_because", map[string]string{"quant": "forAll"}))
}

func TestT_UnknownCodeFallsBackToCode(t *testing.T) {
	assert.Equal(t, "nope", T("nope", nil))
}

func TestSetLanguage(t *testing.T) {
	defer SetLanguage("en")

	SetLanguage("ja")
	assert.Equal(t, "検査を満たす要素がありませんでした", T("no_element", nil))
	assert.Equal(t, "検査を満たした要素は 2 個だけでした", T("only_n_elements", map[string]string{"count": "2"}))

	// Unknown languages fall back to English.
	SetLanguage("fr")
	assert.Equal(t, "no element satisfied the check", T("no_element", nil))
}

type upperTranslator struct{}

func (upperTranslator) Message(code string, data map[string]string) string { return "CODE:" + code }

func TestSetTranslator(t *testing.T) {
	defer SetTranslator(nil)

	SetTranslator(upperTranslator{})
	assert.Equal(t, "CODE:no_element", T("no_element", nil))

	SetTranslator(nil)
	assert.Equal(t, "no element satisfied the check", T("no_element", nil))
}

func TestCatalogFromYAML(t *testing.T) {
	catalog := []byte("no_element: nothing matched\nonly_n_elements: just {count} matched\n")
	tr, err := CatalogFromYAML("en", catalog)
	require.NoError(t, err)

	assert.Equal(t, "nothing matched", tr.Message("no_element", nil))
	assert.Equal(t, "just 2 matched", tr.Message("only_n_elements", map[string]string{"count": "2"}))
	// Codes missing from the catalog keep the built-in wording.
	assert.Equal(t, "1 element satisfied the check", tr.Message("one_element_satisfied", nil))
}

func TestCatalogFromYAML_Invalid(t *testing.T) {
	_, err := CatalogFromYAML("en", []byte("a: [unbalanced"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "phrase: parse catalog")
}

func TestExpand(t *testing.T) {
	assert.Equal(t, "a b a", expand("{x} b {x}", map[string]string{"x": "a"}))
	assert.Equal(t, "plain", expand("plain", map[string]string{"x": "a"}))
	assert.Equal(t, "{x}", expand("{x}", nil))
}
