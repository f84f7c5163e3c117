package rooms

type CreateRoomRequest struct {
	ID            string   `json:"id"`
	Type          string   `json:"type" binding:"required"`
	TitleEn       string   `json:"titleEn" binding:"required"`
	TitleAr       string   `json:"titleAr" binding:"required"`
	DescriptionEn string   `json:"descriptionEn"`
	DescriptionAr string   `json:"descriptionAr"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	Capacity      int      `json:"capacity" binding:"required,gt=0"`
	Amenities     []string `json:"amenities"`
	ImageURL      string   `json:"imageUrl"`
	Available     *bool    `json:"available"`
}

type UpdateRoomRequest struct {
	Type          string   `json:"type" binding:"required"`
	TitleEn       string   `json:"titleEn" binding:"required"`
	TitleAr       string   `json:"titleAr" binding:"required"`
	DescriptionEn string   `json:"descriptionEn"`
	DescriptionAr string   `json:"descriptionAr"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	Capacity      int      `json:"capacity" binding:"required,gt=0"`
	Amenities     []string `json:"amenities"`
	ImageURL      string   `json:"imageUrl"`
	Available     *bool    `json:"available"`
}
