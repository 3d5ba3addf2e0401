package client

import "strings"

// URLResources resolves the endpoints of the products API from its base URL.
type URLResources struct {
	base string
}

// NewURLResources creates URLResources for the given API base URL.
func NewURLResources(apiURL string) URLResources {
	return URLResources{base: strings.TrimRight(apiURL, "/")}
}

// GetAll is the endpoint listing every product.
func (u URLResources) GetAll() string {
	return u.base + "/bp/products"
}

// Create is the endpoint creating a product.
func (u URLResources) Create() string {
	return u.base + "/bp/products"
}

// Verify is the endpoint reporting whether a product id already exists.
func (u URLResources) Verify(id string) string {
	return u.base + "/bp/products/verification/" + id
}

// Update is the endpoint updating the product with the given id.
func (u URLResources) Update(id string) string {
	return u.base + "/bp/products/" + id
}

// Delete is the endpoint deleting the product with the given id.
func (u URLResources) Delete(id string) string {
	return u.base + "/bp/products/" + id
}
