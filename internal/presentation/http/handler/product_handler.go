package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/freshbasket/storefront-api/internal/application/service"
	"github.com/freshbasket/storefront-api/internal/domain/repository"
	"github.com/freshbasket/storefront-api/internal/presentation/http/dto/request"
	"github.com/freshbasket/storefront-api/internal/presentation/http/dto/response"
	"github.com/freshbasket/storefront-api/pkg/pagination"
)

// ProductHandler handles catalog product HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles product listing with filters
// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var req request.ProductFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ProductFilterParams{
		Pagination:  &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:      req.Search,
		Featured:    req.Featured,
		Bestseller:  req.Bestseller,
		NewArrival:  req.NewArrival,
		MinPrice:    toCentsPtr(req.MinPrice),
		MaxPrice:    toCentsPtr(req.MaxPrice),
		InStockOnly: req.InStockOnly,
		SortBy:      req.SortBy,
		SortOrder:   req.SortOrder,
		// Staff listings may include inactive products
		IncludeInactive: IsStaff(c),
	}
	params.Pagination.Validate()

	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			response.BadRequest(c, "Invalid category ID")
			return
		}
		params.CategoryID = &categoryID
	}

	result, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved", result)
}

// GetBySlug handles the public product page lookup
// @Summary Get product by slug
// @Tags products
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} response.APIResponse
// @Router /products/{slug} [get]
func (h *ProductHandler) GetBySlug(c *gin.Context) {
	product, err := h.productService.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product retrieved", product)
}

// Get handles staff product lookup by ID
// @Summary Get product
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} response.APIResponse
// @Router /admin/products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product retrieved", product)
}

// GetRelated returns products related to a product
// @Summary Related products
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.APIResponse
// @Router /products/{id}/related [get]
func (h *ProductHandler) GetRelated(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	products, err := h.productService.GetRelatedProducts(c.Request.Context(), id, 8)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Related products retrieved", products)
}

// Create handles product creation
// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateProductRequest true "Product data"
// @Success 201 {object} response.APIResponse
// @Router /admin/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		CategoryID:        req.CategoryID,
		Name:              req.Name,
		SKU:               req.SKU,
		Description:       req.Description,
		ShortDescription:  req.ShortDescription,
		Brand:             req.Brand,
		Price:             toCents(req.Price),
		CompareAtPrice:    toCentsPtr(req.CompareAtPrice),
		Stock:             req.Stock,
		LowStockThreshold: req.LowStockThreshold,
		PrimaryImageURL:   req.PrimaryImageURL,
		IsActive:          req.IsActive,
		IsFeatured:        req.IsFeatured,
		IsBestseller:      req.IsBestseller,
		IsNewArrival:      req.IsNewArrival,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created", product)
}

// BulkImport handles bulk product creation
// @Summary Bulk import products
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.BulkImportProductsRequest true "Products to import"
// @Success 200 {object} response.APIResponse
// @Router /admin/products/bulk-import [post]
func (h *ProductHandler) BulkImport(c *gin.Context) {
	var req request.BulkImportProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	inputs := make([]*service.CreateProductInput, 0, len(req.Products))
	for _, p := range req.Products {
		inputs = append(inputs, &service.CreateProductInput{
			CategoryID:        p.CategoryID,
			Name:              p.Name,
			SKU:               p.SKU,
			Description:       p.Description,
			ShortDescription:  p.ShortDescription,
			Brand:             p.Brand,
			Price:             toCents(p.Price),
			CompareAtPrice:    toCentsPtr(p.CompareAtPrice),
			Stock:             p.Stock,
			LowStockThreshold: p.LowStockThreshold,
			PrimaryImageURL:   p.PrimaryImageURL,
			IsActive:          p.IsActive,
			IsFeatured:        p.IsFeatured,
			IsBestseller:      p.IsBestseller,
			IsNewArrival:      p.IsNewArrival,
		})
	}

	result, err := h.productService.BulkImportProducts(c.Request.Context(), inputs)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bulk import completed", result)
}

// Update handles product updates
// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body request.UpdateProductRequest true "Product data"
// @Success 200 {object} response.APIResponse
// @Router /admin/products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), &service.UpdateProductInput{
		ID:                id,
		CategoryID:        req.CategoryID,
		Name:              req.Name,
		Description:       req.Description,
		ShortDescription:  req.ShortDescription,
		Brand:             req.Brand,
		Price:             toCentsPtr(req.Price),
		CompareAtPrice:    toCentsPtr(req.CompareAtPrice),
		Stock:             req.Stock,
		LowStockThreshold: req.LowStockThreshold,
		PrimaryImageURL:   req.PrimaryImageURL,
		IsActive:          req.IsActive,
		IsFeatured:        req.IsFeatured,
		IsBestseller:      req.IsBestseller,
		IsNewArrival:      req.IsNewArrival,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated", product)
}

// Delete handles product deletion
// @Summary Delete product
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204
// @Router /admin/products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// LowStock lists products at or below their restock threshold
// @Summary Low stock products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.APIResponse
// @Router /admin/products/low-stock [get]
func (h *ProductHandler) LowStock(c *gin.Context) {
	products, err := h.productService.GetLowStockProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Low stock products retrieved", products)
}
