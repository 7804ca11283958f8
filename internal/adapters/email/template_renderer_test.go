package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventhub/internal/domain"
)

func TestTemplateRenderer_Welcome(t *testing.T) {
	r := NewTemplateRenderer()
	subject, html, text, err := r.Render(TemplateWelcome, &domain.WelcomeMessageEmailData{
		Email:    "alex@example.com",
		Fullname: "Alex Johnson",
		Username: "alexjohnson",
	})
	require.NoError(t, err)
	assert.Equal(t, "Welcome to EventHub, Alex Johnson", subject)
	assert.Contains(t, html, "<strong>alexjohnson</strong>")
	assert.Contains(t, text, `"alexjohnson"`)
}

func TestTemplateRenderer_Report_escapes_html(t *testing.T) {
	r := NewTemplateRenderer()
	_, html, text, err := r.Render(TemplateReport, &domain.ReportEmailData{
		Fullname: "Alex",
		Report:   "Awards Won: <1>",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Awards Won: &lt;1&gt;")
	assert.Contains(t, text, "Awards Won: <1>")
}

func TestTemplateRenderer_unknown_template(t *testing.T) {
	r := NewTemplateRenderer()
	_, _, _, err := r.Render("missing", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "render subject")
}
