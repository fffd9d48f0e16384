// Package listfield virgülle birleştirilmiş metin sütunları ile sıralı
// string listeleri arasındaki dönüşümü yapar (clubs.owners, clubs.instagram,
// clubs.urls). Elemanın içinde virgül varsa bölme kayıplıdır; bu bilinen
// bir sınırdır ve kaçış karakteri eklenerek mevcut veri bozulmaz.
package listfield

import "strings"

// Split virgülle ayrılmış değeri sıralı listeye çevirir.
// Elemanlar trim edilir, boş/beyaz karakter elemanlar atılır.
func Split(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// SplitLines çok satırlı form alanını (textarea, satır başına bir değer)
// sıralı listeye çevirir. Satırlar trim edilir, boş satırlar atılır.
func SplitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Join listeyi tek sütun değerine çevirir. Boş/beyaz karakter elemanlar
// kaydedilmeden önce filtrelenir.
func Join(items []string) string {
	clean := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it != "" {
			clean = append(clean, it)
		}
	}
	return strings.Join(clean, ", ")
}
