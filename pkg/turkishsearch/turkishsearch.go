// Package turkishsearch liste sayfalarındaki serbest metin aramaları için
// büyük/küçük harf duyarsız SQL parçaları üretir. PostgreSQL ILIKE Türkçe
// İ/ı dönüşümünü locale'e göre yapar; parametre tarafında ToLower yeterlidir.
package turkishsearch

import (
	"fmt"
	"strings"
)

// SQLFilter verilen sütun için ILIKE koşulu ve argümanını döndürür.
// Kullanım: frag, args := SQLFilter("cert.given", term); q.Where(frag, args...)
func SQLFilter(column, value string) (string, []interface{}) {
	return fmt.Sprintf("%s ILIKE ?", column), []interface{}{"%" + strings.ToLower(strings.TrimSpace(value)) + "%"}
}

// AnyColumn birden fazla sütunda OR aramasının koşulunu üretir.
func AnyColumn(value string, columns ...string) (string, []interface{}) {
	frags := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for _, col := range columns {
		frag, a := SQLFilter(col, value)
		frags = append(frags, frag)
		args = append(args, a...)
	}
	return "(" + strings.Join(frags, " OR ") + ")", args
}
