package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/odelgado/product-catalog/internal/model"
	"github.com/odelgado/product-catalog/internal/repository"
	"github.com/odelgado/product-catalog/internal/service"
)

// ProductController handles HTTP requests for catalog operations.
type ProductController struct {
	productService *service.ProductService
}

// NewProductController creates a new ProductController with the given product service.
func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// ProductPayload represents a product in requests and responses. Dates are
// YYYY-MM-DD strings.
type ProductPayload struct {
	ID           string `json:"id" binding:"required,min=3,max=10"`
	Name         string `json:"name" binding:"required,min=5,max=100"`
	Description  string `json:"description" binding:"required,min=10,max=200"`
	Logo         string `json:"logo" binding:"required"`
	DateRelease  string `json:"date_release" binding:"required"`
	DateRevision string `json:"date_revision" binding:"required"`
}

// UpdateProductPayload is the PUT request body; the id travels in the URL.
type UpdateProductPayload struct {
	Name         string `json:"name" binding:"required,min=5,max=100"`
	Description  string `json:"description" binding:"required,min=10,max=200"`
	Logo         string `json:"logo" binding:"required"`
	DateRelease  string `json:"date_release" binding:"required"`
	DateRevision string `json:"date_revision" binding:"required"`
}

// ErrorResponse is one entry of the error envelope returned on failures.
type ErrorResponse struct {
	ErrorMessage string `json:"errorMessage"`
}

func errorEnvelope(message string) []ErrorResponse {
	return []ErrorResponse{{ErrorMessage: message}}
}

// ListProducts handles GET /bp/products.
func (pc *ProductController) ListProducts(c *gin.Context) {
	products, err := pc.productService.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorEnvelope("failed to list products"))
		return
	}

	payloads := make([]ProductPayload, 0, len(products))
	for _, product := range products {
		payloads = append(payloads, toProductPayload(&product))
	}

	c.JSON(http.StatusOK, gin.H{"data": payloads})
}

// CreateProduct handles POST /bp/products.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req ProductPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorEnvelope(err.Error()))
		return
	}

	product, err := fromProductPayload(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorEnvelope(err.Error()))
		return
	}

	if err := pc.productService.CreateProduct(c.Request.Context(), product); err != nil {
		var uniqueErr *repository.UniqueConstraintError
		if errors.As(err, &uniqueErr) {
			c.JSON(http.StatusBadRequest, errorEnvelope("Duplicate product ID found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorEnvelope("failed to create product"))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product added successfully",
		"data":    toProductPayload(product),
	})
}

// VerifyProductID handles GET /bp/products/verification/:id.
func (pc *ProductController) VerifyProductID(c *gin.Context) {
	exists, err := pc.productService.ExistsByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorEnvelope("failed to verify product id"))
		return
	}

	c.JSON(http.StatusOK, exists)
}

// UpdateProduct handles PUT /bp/products/:id.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	var req UpdateProductPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorEnvelope(err.Error()))
		return
	}

	product, err := fromProductPayload(ProductPayload{
		ID:           c.Param("id"),
		Name:         req.Name,
		Description:  req.Description,
		Logo:         req.Logo,
		DateRelease:  req.DateRelease,
		DateRevision: req.DateRevision,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, errorEnvelope(err.Error()))
		return
	}

	updated, err := pc.productService.UpdateProduct(c.Request.Context(), c.Param("id"), product)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorEnvelope("Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorEnvelope("failed to update product"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"data":    toProductPayload(updated),
	})
}

// DeleteProduct handles DELETE /bp/products/:id.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	if err := pc.productService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorEnvelope("Product not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, errorEnvelope("failed to delete product"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product removed successfully"})
}

func toProductPayload(product *model.Product) ProductPayload {
	return ProductPayload{
		ID:           product.ID,
		Name:         product.Name,
		Description:  product.Description,
		Logo:         product.Logo,
		DateRelease:  product.DateReleased.Format(model.WireDateLayout),
		DateRevision: product.DateRevision.Format(model.WireDateLayout),
	}
}

func fromProductPayload(payload ProductPayload) (*model.Product, error) {
	released, err := time.Parse(model.WireDateLayout, payload.DateRelease)
	if err != nil {
		return nil, errors.New("date_release must be a YYYY-MM-DD date")
	}
	revision, err := time.Parse(model.WireDateLayout, payload.DateRevision)
	if err != nil {
		return nil, errors.New("date_revision must be a YYYY-MM-DD date")
	}

	return &model.Product{
		ID:           payload.ID,
		Name:         payload.Name,
		Description:  payload.Description,
		Logo:         payload.Logo,
		DateReleased: released,
		DateRevision: revision,
	}, nil
}
