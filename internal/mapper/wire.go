package mapper

// WireProduct is the flat JSON representation of a product used by the
// products API. Dates travel as YYYY-MM-DD strings.
type WireProduct struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Logo         string `json:"logo"`
	DateRelease  string `json:"date_release"`
	DateRevision string `json:"date_revision"`
}

// UpdateProductRequest is the PUT request body; the id travels in the URL.
type UpdateProductRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Logo         string `json:"logo"`
	DateRelease  string `json:"date_release"`
	DateRevision string `json:"date_revision"`
}

// ListProductsResponse is the GET /bp/products response envelope.
type ListProductsResponse struct {
	Data []WireProduct `json:"data"`
}

// MutationResponse is the envelope returned by create and update operations.
type MutationResponse struct {
	Message string      `json:"message"`
	Data    WireProduct `json:"data"`
}

// DeleteProductResponse is the envelope returned by the delete operation.
type DeleteProductResponse struct {
	Message string `json:"message"`
}
