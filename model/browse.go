package model

// ImagePage is one page of image URLs for a (market, shop, mode) folder.
type ImagePage struct {
	Page    int      `json:"page"`
	Total   int      `json:"total"`
	HasMore bool     `json:"has_more"`
	Images  []string `json:"images"`
}

// BrowseQuery carries the query params of the directory endpoints.
type BrowseQuery struct {
	TenantName string
	Shop       string
	Mode       string
	Page       int
	PageSize   int
}
