package dto

type MaskByURLRequest struct {
	URL string `json:"url" validate:"required,url"`
}
