package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	r := NewResolver("", nil)

	tests := []struct {
		name  string
		email string
		want  Scope
	}{
		{
			name:  "süper yönetici sınırsız erişim alır",
			email: "admin@naal.org.tr",
			want:  Scope{Superadmin: true},
		},
		{
			name:  "süper yönetici adresi büyük/küçük harf ve boşluk duyarsız",
			email: "  Admin@NAAL.org.tr ",
			want:  Scope{Superadmin: true},
		},
		{
			name:  "istisna adresi sabit kodu alır",
			email: "tech@naal.org.tr",
			want:  Scope{ClubCode: "tech"},
		},
		{
			name:  "normal adres @ öncesini kod olarak alır",
			email: "robotics@naal.org.tr",
			want:  Scope{ClubCode: "robotics"},
		},
		{
			name:  "farklı domain de local kısmı kullanır",
			email: "satranc@example.com",
			want:  Scope{ClubCode: "satranc"},
		},
		{
			name:  "@ içermeyen girdi olduğu gibi kod olur",
			email: "robotics",
			want:  Scope{ClubCode: "robotics"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.email))
		})
	}
}

func TestResolveCustomSuperadmin(t *testing.T) {
	r := NewResolver("yonetim@naal.org.tr", map[string]string{"kurul@naal.org.tr": "ykc"})

	assert.True(t, r.Resolve("yonetim@naal.org.tr").Superadmin)
	// Varsayılan süper yönetici artık normal kulüp kullanıcısıdır.
	got := r.Resolve("admin@naal.org.tr")
	assert.False(t, got.Superadmin)
	assert.Equal(t, "admin", got.ClubCode)
	// İstisna tablosu local kısımdan türetilemeyen bir kodu zorlayabilir.
	assert.Equal(t, "ykc", r.Resolve("kurul@naal.org.tr").ClubCode)
	// Tabloda olmayan adres local kısımdan türetilmeye devam eder.
	assert.Equal(t, "robotics", r.Resolve("robotics@naal.org.tr").ClubCode)
}
