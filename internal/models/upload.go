package models

type UploadImageResponse struct {
	Filename string `json:"filename"`
	ImageURL string `json:"image_url"`
}
