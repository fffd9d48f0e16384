package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderMarkdown(t *testing.T) {
	out := string(Render("Kulübümüz **2015** yılında kuruldu."))
	assert.Contains(t, out, "<strong>2015</strong>")
}

func TestRenderStripsScript(t *testing.T) {
	out := string(Render("merhaba <script>alert(1)</script> dünya"))
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "merhaba")
}

func TestRenderPlainText(t *testing.T) {
	out := string(Render("sadece düz yazı"))
	assert.Contains(t, out, "sadece düz yazı")
}
