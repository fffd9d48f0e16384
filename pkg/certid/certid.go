// Package certid sertifika kimliği üretir. Kullanıcı özel bir ID girmezse
// CERT-YYYYMMDD-###### formatında, epoch milisaniyenin son 6 hanesiyle
// üretilir. Benzersizlik garanti edilmez; çakışma riski düşük kabul edilir
// ve veritabanında unique kısıt yoktur.
package certid

import (
	"fmt"
	"strconv"
	"time"
)

// New verilen ana göre sertifika ID'si üretir.
func New(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	return fmt.Sprintf("CERT-%s-%s", now.Format("20060102"), ms[len(ms)-6:])
}
