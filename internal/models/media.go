package models

// Media types, derived from the file extension at upload time and never
// recomputed afterwards.
const (
	MediaTypePhoto = "photo"
	MediaTypeVideo = "video"
)

// MediaCategories is the single authoritative category list. The column is
// plain varchar validated against this slice, so extending the set is a code
// change in exactly one place rather than a column migration.
var MediaCategories = []string{
	"wedding",
	"baptism",
	"concert",
	"on-set",
	"studio",
	"modelling",
	"travel",
	"other",
}

// MediaCategoryLabels maps categories to their public display names.
var MediaCategoryLabels = map[string]string{
	"all":       "All Photos",
	"wedding":   "Weddings",
	"baptism":   "Baptisms",
	"concert":   "Concerts",
	"on-set":    "On Set",
	"studio":    "Studio",
	"modelling": "Modelling",
	"travel":    "Travel",
	"other":     "Other",
}

// IsValidCategory reports whether c is a known media category.
func IsValidCategory(c string) bool {
	for _, known := range MediaCategories {
		if known == c {
			return true
		}
	}
	return false
}

// Media is one uploaded asset. Filepath is the storage key of the backing
// blob; a row may legitimately outlive its blob (deletion removes the row
// even when the blob is already gone).
type Media struct {
	BaseModel
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Filename    string `gorm:"not null" json:"filename"`
	Filepath    string `gorm:"not null;uniqueIndex" json:"filepath"`
	Category    string `gorm:"type:varchar(20);not null;index:idx_media_category_type" json:"category"`
	Type        string `gorm:"type:varchar(10);not null;index:idx_media_category_type" json:"type"`
	FileSize    int64  `json:"file_size"`
	Dimensions  string `json:"dimensions"` // e.g. "1920x1080", photos only
	AltText     string `json:"alt_text"`
	IsFeatured  bool   `gorm:"default:false;index" json:"is_featured"`
	SortOrder   int    `gorm:"default:0;index" json:"sort_order"`

	// Resolved through the storage chain at read time, not persisted.
	URL          string `gorm:"-" json:"url,omitempty"`
	ThumbnailURL string `gorm:"-" json:"thumbnail_url,omitempty"`
}

func (Media) TableName() string {
	return "media"
}
