package templates

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)

	for _, name := range []string{"index.html", "signup.html", "login.html", "payment.html", "success.html", "404.html"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestFlashesAreEscaped(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.ExecuteTemplate(&buf, "index.html", map[string]any{
		"Title":   "Home",
		"Flashes": []map[string]string{{"Category": "error", "Message": "<script>x</script>"}},
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "alert alert-error")
	assert.Contains(t, buf.String(), "&lt;script&gt;x&lt;/script&gt;")
}
