package dto

type MaskResponse struct {
	Success     bool   `json:"success"`
	MaskUsed    string `json:"mask_used"`
	ImageData   string `json:"image_data"`
	ContentType string `json:"content_type"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type InfoResponse struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}
