// Package scope kimlikten erişim kapsamı türetme kuralını tek yerde toplar.
// Her sayfanın kendi başına e-posta ayrıştırması yapması yerine middleware
// bir kez Resolve çağırır ve sonucu handler'lara taşır.
package scope

import "strings"

// DefaultSuperadminEmail tüm kulüpleri gören hesabın varsayılan adresi.
const DefaultSuperadminEmail = "admin@naal.org.tr"

// defaultOverrides e-postanın local kısmından türetilemeyen kulüp kodları.
var defaultOverrides = map[string]string{
	"tech@naal.org.tr": "tech",
}

// Scope bir kimliğin erişim sınırıdır: ya süper yönetici (sınırsız)
// ya da tek bir kulüp koduna kısıtlı.
type Scope struct {
	Superadmin bool
	ClubCode   string
}

// Resolver e-posta -> Scope dönüşümünü yapar.
type Resolver struct {
	superadminEmail string
	overrides       map[string]string
}

// NewResolver yeni bir Resolver oluşturur. superadminEmail boş verilirse
// varsayılan adres, overrides nil verilirse varsayılan istisna tablosu kullanılır.
func NewResolver(superadminEmail string, overrides map[string]string) *Resolver {
	if superadminEmail == "" {
		superadminEmail = DefaultSuperadminEmail
	}
	if overrides == nil {
		overrides = defaultOverrides
	}
	return &Resolver{
		superadminEmail: strings.ToLower(superadminEmail),
		overrides:       overrides,
	}
}

// Resolve e-posta adresinden kapsamı türetir:
//   - süper yönetici adresi -> Superadmin
//   - istisna tablosundaki adres -> sabit kulüp kodu
//   - diğerleri -> ilk '@' öncesindeki kısım
//
// Kodun clubs tablosunda var olup olmadığı kontrol edilmez; olmayan kod
// sorgularda boş sonuç üretir, hata değil.
func (r *Resolver) Resolve(email string) Scope {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == r.superadminEmail {
		return Scope{Superadmin: true}
	}
	if code, ok := r.overrides[email]; ok {
		return Scope{ClubCode: code}
	}
	code := email
	if i := strings.Index(email, "@"); i >= 0 {
		code = email[:i]
	}
	return Scope{ClubCode: code}
}
