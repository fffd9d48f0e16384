package models

// UrlRedirect kulüp subdomain'i altındaki kısa path'i mutlak bir URL'e bağlar:
// <club_code>.naal.org.tr/<path> -> Redirect
type UrlRedirect struct {
	BaseModel
	ClubCode string `gorm:"type:varchar(50);index:idx_url_club_path,unique;not null"`
	Path     string `gorm:"type:varchar(100);index:idx_url_club_path,unique;not null"`
	Redirect string `gorm:"type:varchar(1000);not null"` // mutlak http(s) URL
}

func (UrlRedirect) TableName() string { return "url" }
