// Package richtext kulüp açıklamalarını Markdown'dan güvenli HTML'e çevirir.
// Çıktı bluemonday UGC politikasıyla temizlenir; script/iframe gibi öğeler
// kullanıcı girdisinden sayfaya taşınamaz.
package richtext

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	md     = goldmark.New()
	policy = bluemonday.UGCPolicy()
)

// Render Markdown metni sanitize edilmiş HTML'e çevirir.
// Dönüşüm hatasında metin escape edilerek düz yazı olarak döner.
func Render(source string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes()))
}
