package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownService_ToHTMLSanitized_RendersGFM(t *testing.T) {
	svc := NewMarkdownService()

	out, err := svc.ToHTMLSanitized("El ascensor **no funciona** desde ayer")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>no funciona</strong>")

	out, err = svc.ToHTMLSanitized("- [ ] revisar bomba\n- [x] cambiar filtro")
	require.NoError(t, err)
	assert.Contains(t, out, "<li>")
}

func TestMarkdownService_ToHTMLSanitized_StripsScript(t *testing.T) {
	svc := NewMarkdownService()

	out, err := svc.ToHTMLSanitized("Hola <script>alert('xss')</script> vecinos")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "alert")
	assert.Contains(t, out, "Hola")
}

func TestMarkdownService_Sanitize_RemovesEventHandlers(t *testing.T) {
	svc := NewMarkdownService()

	out := svc.Sanitize(`<a href="https://example.com" onclick="steal()">link</a>`)
	assert.NotContains(t, out, "onclick")
	assert.Contains(t, out, "link")
}

func TestMarkdownService_ToHTML_AutoLinks(t *testing.T) {
	svc := NewMarkdownService()

	out, err := svc.ToHTML("ver https://condominio.example/aviso")
	require.NoError(t, err)
	assert.Contains(t, out, "<a href=")
}
